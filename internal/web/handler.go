package web

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"pet-health-tracker/internal/domain/activities"
	"pet-health-tracker/internal/domain/pets"
	"pet-health-tracker/internal/middleware"
)

func RegisterRoutes(r chi.Router, rnd *Renderer) {
	r.Get("/", indexHandler(rnd))
	r.Post("/pets", addPetHandler())
	r.Post("/pets/{petID}/activities", addActivityHandler())
}

func indexHandler(rnd *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := middleware.GetSession(r.Context())
		if !ok {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}

		// La vista por mascota se recalcula en cada render
		cards, err := s.Cards(r.Context())
		if err != nil {
			hlog.FromRequest(r).Error().Stack().Err(err).Msg("load cards")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// Render a buffer: si el template falla no queda una página a medias
		var buf bytes.Buffer
		if err := rnd.Index(&buf, pageData{
			Draft:   s.Draft(),
			Cards:   cards,
			Presets: activities.Presets,
		}); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("render index")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}

// addPetHandler: da de alta con los inputs del form y deja el draft vacío.
func addPetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := middleware.GetSession(r.Context())
		if !ok {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		p, err := s.SubmitPet(r.Context(), r.PostForm.Get("name"), r.PostForm.Get("type"))
		if err != nil {
			hlog.FromRequest(r).Error().Stack().Err(err).Msg("add pet")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		hlog.FromRequest(r).Info().Int64("pet_id", p.ID).Msg("pet added")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// addActivityHandler acepta preset=walk|play|meal o type+details libres.
func addActivityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := middleware.GetSession(r.Context())
		if !ok {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}

		petID, err := pets.ParseID(chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "invalid pet id", http.StatusBadRequest)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		var a activities.Activity
		if preset := strings.TrimSpace(r.PostForm.Get("preset")); preset != "" {
			a, err = s.AddPreset(r.Context(), petID, activities.PresetKey(preset))
		} else {
			a, err = s.AddActivity(r.Context(), petID,
				activities.Category(r.PostForm.Get("type")), r.PostForm.Get("details"))
		}
		if err != nil {
			if errors.Is(err, activities.ErrUnknownPreset) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			hlog.FromRequest(r).Error().Stack().Err(err).Msg("add activity")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		hlog.FromRequest(r).Info().
			Int64("pet_id", petID).
			Int64("activity_id", a.ID).
			Str("type", string(a.Type)).
			Msg("activity added")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
