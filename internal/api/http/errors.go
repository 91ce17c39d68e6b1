package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Nerotas/ToughNoseKarate-sub001/internal/assessment"
	"github.com/Nerotas/ToughNoseKarate-sub001/internal/curriculum"
	"github.com/Nerotas/ToughNoseKarate-sub001/internal/student"
)

// writeDomainErr maps domain errors onto HTTP status codes. Lifecycle
// violations are conflicts, validation failures are bad requests.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, assessment.ErrNotFound),
		errors.Is(err, curriculum.ErrNotFound),
		errors.Is(err, student.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, assessment.ErrInvalidTransition),
		errors.Is(err, assessment.ErrAssessmentOpen):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, assessment.ErrScoreOutOfRange),
		errors.Is(err, assessment.ErrUnknownField),
		errors.Is(err, curriculum.ErrInvalidCurriculum):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
