package activities

import "time"

// Activity es un evento de cuidado (paseo, juego, comida) asociado a una mascota.
// PetID no se valida contra las mascotas de la sesión.
type Activity struct {
	ID    int64
	PetID int64

	Type    Category
	Details string // "Walk", "Meal", ...

	Timestamp time.Time
}

// TimestampISO devuelve el timestamp en ISO-8601 UTC con milisegundos,
// el mismo formato que se expone en la API.
func (a Activity) TimestampISO() string {
	return a.Timestamp.UTC().Format(ISOLayout)
}

const ISOLayout = "2006-01-02T15:04:05.000Z07:00"
