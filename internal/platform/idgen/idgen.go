package idgen

import (
	"sync/atomic"
	"time"
)

// Sequence genera ids enteros en el espacio de milisegundos Unix:
// cada id es max(ahora en ms, último+1). Dos altas en el mismo milisegundo
// no colisionan y un id nunca se repite ni retrocede, aunque el reloj lo haga.
type Sequence struct {
	last atomic.Int64
	now  func() time.Time
}

func NewSequence() *Sequence {
	return &Sequence{now: time.Now}
}

// NewSequenceWithClock permite fijar el reloj en tests.
func NewSequenceWithClock(now func() time.Time) *Sequence {
	return &Sequence{now: now}
}

func (s *Sequence) Next() int64 {
	for {
		last := s.last.Load()
		id := s.now().UnixMilli()
		if id <= last {
			id = last + 1
		}
		if s.last.CompareAndSwap(last, id) {
			return id
		}
	}
}
