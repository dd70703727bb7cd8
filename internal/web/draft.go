package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-health-tracker/internal/middleware"
)

func RegisterDraftRoutes(r chi.Router) {
	r.Get("/api/session/draft", getDraftHandler())
	r.Put("/api/session/draft", putDraftHandler())
	r.Post("/api/session/draft/submit", submitDraftHandler())
}

// draftPayload son los inputs pendientes del form "nueva mascota".
type draftPayload struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// getDraftHandler godoc
// @Summary Ver draft de nueva mascota
// @Tags session
// @Produce json
// @Success 200 {object} draftPayload
// @Router /api/session/draft [get]
func getDraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := middleware.GetSession(r.Context())
		if !ok {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}
		d := s.Draft()
		writeJSON(w, http.StatusOK, draftPayload{Name: d.Name, Type: d.Type})
	}
}

// putDraftHandler godoc
// @Summary Guardar draft de nueva mascota
// @Tags session
// @Accept json
// @Produce json
// @Param payload body draftPayload true "Inputs pendientes"
// @Success 200 {object} draftPayload
// @Failure 400 {string} string "invalid json"
// @Router /api/session/draft [put]
func putDraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := middleware.GetSession(r.Context())
		if !ok {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}

		var req draftPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		s.SetDraft(req.Name, req.Type)
		writeJSON(w, http.StatusOK, req)
	}
}

// submitDraftHandler godoc
// @Summary Enviar draft como nueva mascota
// @Description Da de alta la mascota con los valores del draft y lo deja vacío.
// @Tags session
// @Produce json
// @Success 201 {object} submitDraftResponse
// @Failure 500 {string} string "internal error"
// @Router /api/session/draft/submit [post]
func submitDraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := middleware.GetSession(r.Context())
		if !ok {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}

		p, err := s.SubmitDraft(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		d := s.Draft()
		writeJSON(w, http.StatusCreated, submitDraftResponse{
			ID:    p.ID,
			Name:  p.Name,
			Type:  p.Type,
			Draft: draftPayload{Name: d.Name, Type: d.Type},
		})
	}
}

// submitDraftResponse es la mascota creada más el draft ya reseteado.
type submitDraftResponse struct {
	ID    int64        `json:"id"`
	Name  string       `json:"name"`
	Type  string       `json:"type"`
	Draft draftPayload `json:"draft"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
