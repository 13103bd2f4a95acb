package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"jamesfarrell.me/youtube-summarizer/internal/models"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("error encoding response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg, details string) {
	writeJSON(w, r, status, models.ErrorResponse{Error: msg, Details: details})
}

// decode reads a JSON body into v. A body that cannot be decoded leaves v
// at its zero value, which the handlers then reject as a missing field.
func decode(r *http.Request, v interface{}) {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("could not decode request body")
	}
}
