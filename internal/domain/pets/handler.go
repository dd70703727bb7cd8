package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// Resolver obtiene el Service de la sesión del request.
// Lo inyecta el router para no importar session/middleware desde el dominio (rompe ciclos).
type Resolver func(r *http.Request) (*Service, bool)

func RegisterRoutes(r chi.Router, resolve Resolver) {
	r.Route("/api/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(resolve))
		pr.Get("/", listPetsHandler(resolve))
		pr.Get("/{petID}", getPetHandler(resolve))
	})
}

// createPetRequest es el cuerpo para registrar una mascota. Ambos campos son opcionales.
type createPetRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// petResponse representa una mascota devuelta por la API.
type petResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Agrega una mascota a la sesión actual. No se valida nada: nombre y tipo vacíos se aceptan tal cual. La sesión se identifica por cookie.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Nombre y tipo de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json"
// @Failure 500 {string} string "internal error"
// @Router /api/pets [post]
func createPetHandler(resolve Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc, ok := resolve(r)
		if !ok {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.AddPet(r.Context(), req.Name, req.Type)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Lista las mascotas de la sesión en orden de alta.
// @Tags pets
// @Produce json
// @Success 200 {array} petResponse
// @Failure 500 {string} string "internal error"
// @Router /api/pets [get]
func listPetsHandler(resolve Resolver) http.HandlerFunc {
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

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 400 {string} string "invalid pet id"
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "internal error"
// @Router /api/pets/{petID} [get]
func getPetHandler(resolve Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc, ok := resolve(r)
		if !ok {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}

		petID, err := ParseID(chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "invalid pet id", http.StatusBadRequest)
			return
		}

		p, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// ParseID interpreta un id de mascota venido de la URL o de un form.
func ParseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		CreatedAt: p.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (pets/activities)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
