package activities

import "sort"

// View es la proyección de solo lectura "actividades de una mascota":
// filtra por PetID (igualdad exacta) y ordena por Timestamp desc.
// Devuelve un slice nuevo; all no se modifica.
//
// Empates de timestamp: gana el id mayor (el alta más reciente).
func View(all []Activity, petID int64) []Activity {
	out := make([]Activity, 0)
	for _, a := range all {
		if a.PetID == petID {
			out = append(out, a)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})

	return out
}
