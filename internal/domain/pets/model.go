package pets

import "time"

// Pet representa una mascota registrada en la sesión.
// Name y Type son texto libre y pueden venir vacíos: no se valida nada.
type Pet struct {
	ID int64

	Name string
	Type string // "Dog", "Cat", ... sin enumeración cerrada

	CreatedAt time.Time
}
