package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Nerotas/ToughNoseKarate-sub001/internal/assessment"
	"github.com/Nerotas/ToughNoseKarate-sub001/internal/curriculum"
)

func ListRequirementsHandler(store curriculum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.List(r.Context())
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, list)
	}
}

func GetRequirementHandler(store curriculum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rank := chi.URLParam(r, "rank")
		req, err := store.Get(r.Context(), rank)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, req)
	}
}

func PutRequirementHandler(store curriculum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req curriculum.BeltRequirement
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.BeltRank == "" || req.BeltOrder <= 0 {
			http.Error(w, "beltRank and positive beltOrder required", 400)
			return
		}
		if err := store.Put(r.Context(), req); err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, req)
	}
}

func DeleteRequirementHandler(store curriculum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rank := chi.URLParam(r, "rank")
		if err := store.Delete(r.Context(), rank); err != nil {
			writeDomainErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// RelevanceHandler returns the per-field display flags for a target rank:
// which assessment score fields the curriculum requires at that belt. An
// unknown rank is not an error; every field is simply irrelevant.
func RelevanceHandler(store curriculum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rank := chi.URLParam(r, "rank")
		list, err := store.List(r.Context())
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		target := curriculum.Find(rank, list)
		writeJSON(w, map[string]any{
			"target_belt_rank": rank,
			"matched":          target != nil,
			"fields":           assessment.RelevantFields(target),
		})
	}
}
