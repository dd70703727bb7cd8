package activities

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Resolver obtiene el Service de la sesión del request (lo inyecta el router).
type Resolver func(r *http.Request) (*Service, bool)

func RegisterRoutes(r chi.Router, resolve Resolver) {
	r.Route("/api/pets/{petID}/activities", func(ar chi.Router) {
		ar.Post("/", createActivityHandler(resolve))
		ar.Get("/", listPetActivitiesHandler(resolve))
	})

	// Store completo, en orden de alta (incluye actividades de mascotas inexistentes)
	r.Get("/api/activities", listAllActivitiesHandler(resolve))
}

// createActivityRequest acepta un preset (walk/play/meal) o un par type+details libre.
// Si viene preset, type y details se ignoran.
type createActivityRequest struct {
	Preset  PresetKey `json:"preset" enums:"walk,play,meal"`
	Type    Category  `json:"type"`
	Details string    `json:"details"`
}

// activityResponse representa una actividad devuelta por la API.
type activityResponse struct {
	ID        int64    `json:"id"`
	PetID     int64    `json:"pet_id"`
	Type      Category `json:"type"`
	Details   string   `json:"details"`
	Timestamp string   `json:"timestamp"` // ISO-8601 UTC
}

// createActivityHandler godoc
// @Summary Registrar actividad
// @Description Agrega una actividad para la mascota indicada. No se verifica que la mascota exista: la actividad se guarda igual y simplemente no aparece en ninguna tarjeta.
// @Tags activities
// @Accept json
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Param payload body createActivityRequest true "Preset o type+details"
// @Success 201 {object} activityResponse
// @Failure 400 {string} string "invalid json / invalid pet id / unknown preset"
// @Failure 500 {string} string "internal error"
// @Router /api/pets/{petID}/activities [post]
func createActivityHandler(resolve Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc, ok := resolve(r)
		if !ok {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}

		petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid pet id", http.StatusBadRequest)
			return
		}

		var req createActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var a Activity
		if p := PresetKey(strings.TrimSpace(string(req.Preset))); p != "" {
			a, err = svc.AddPreset(r.Context(), petID, p)
		} else {
			a, err = svc.AddActivity(r.Context(), petID, req.Type, req.Details)
		}
		if err != nil {
			if errors.Is(err, ErrUnknownPreset) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toActivityResponse(a))
	}
}

// listPetActivitiesHandler godoc
// @Summary Actividades recientes de una mascota
// @Description Devuelve las actividades de la mascota, la más reciente primero. Una mascota inexistente devuelve lista vacía.
// @Tags activities
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {array} activityResponse
// @Failure 400 {string} string "invalid pet id"
// @Failure 500 {string} string "internal error"
// @Router /api/pets/{petID}/activities [get]
func listPetActivitiesHandler(resolve Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc, ok := resolve(r)
		if !ok {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}

		petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid pet id", http.StatusBadRequest)
			return
		}

		items, err := svc.ViewFor(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toActivityResponses(items))
	}
}

// listAllActivitiesHandler godoc
// @Summary Listar todas las actividades
// @Description Devuelve el store completo de la sesión en orden de alta, sin filtrar ni ordenar.
// @Tags activities
// @Produce json
// @Success 200 {array} activityResponse
// @Failure 500 {string} string "internal error"
// @Router /api/activities [get]
func listAllActivitiesHandler(resolve Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc, ok := resolve(r)
		if !ok {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toActivityResponses(items))
	}
}

func toActivityResponses(items []Activity) []activityResponse {
	out := make([]activityResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toActivityResponse(a))
	}
	return out
}

func toActivityResponse(a Activity) activityResponse {
	return activityResponse{
		ID:        a.ID,
		PetID:     a.PetID,
		Type:      a.Type,
		Details:   a.Details,
		Timestamp: a.TimestampISO(),
	}
}

// writeJSON está duplicado intencionalmente (ver pets/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
