package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Nerotas/ToughNoseKarate-sub001/internal/assessment"
	"github.com/Nerotas/ToughNoseKarate-sub001/internal/student"
)

func CreateAssessmentHandler(store assessment.Store, students student.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			StudentID      string `json:"student_id"`
			TargetBeltRank string `json:"target_belt_rank"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.StudentID == "" {
			http.Error(w, "student_id required", 400)
			return
		}
		// default target to the student's current belt
		if req.TargetBeltRank == "" {
			s, err := students.Get(r.Context(), req.StudentID)
			if err != nil {
				writeDomainErr(w, err)
				return
			}
			req.TargetBeltRank = s.BeltRank
		}
		a, err := store.Create(r.Context(), req.StudentID, req.TargetBeltRank)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, a)
	}
}

func GetAssessmentHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := store.Get(r.Context(), chi.URLParam(r, "assessmentID"))
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, a)
	}
}

func ListAssessmentsHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := r.URL.Query().Get("student_id")
		if studentID == "" {
			http.Error(w, "student_id required", 400)
			return
		}
		list, err := store.ListByStudent(r.Context(), studentID)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, list)
	}
}

func SaveScoresHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "assessmentID")
		var updates map[string]*float64
		if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		a, err := store.SaveScores(r.Context(), id, updates)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, a)
	}
}

func CompleteAssessmentHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "assessmentID")
		var req struct {
			Passed       bool     `json:"passed"`
			OverallScore *float64 `json:"overall_score"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		a, err := store.Complete(r.Context(), id, req.Passed, req.OverallScore)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, a)
	}
}

func CancelAssessmentHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "assessmentID")
		var req struct {
			Reason string `json:"reason"`
		}
		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad json", 400)
				return
			}
		}
		a, err := store.Cancel(r.Context(), id, req.Reason)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, a)
	}
}

// EditableValuesHandler returns the form value set for an assessment: every
// score field present, ungraded fields null, date reduced to date-only.
func EditableValuesHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := store.Get(r.Context(), chi.URLParam(r, "assessmentID"))
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, assessment.ToEditableValues(&a, time.Now()))
	}
}

// BlankValuesHandler returns the value set for a not-yet-created assessment.
func BlankValuesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, assessment.ToEditableValues(nil, time.Now()))
	}
}
