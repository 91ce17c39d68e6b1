package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Nerotas/ToughNoseKarate-sub001/internal/curriculum"
	"github.com/Nerotas/ToughNoseKarate-sub001/internal/student"
)

// studentView decorates a student record with the resolved belt display
// colours for list/detail rendering.
type studentView struct {
	student.Student
	BeltColor     string `json:"beltColor"`
	BeltTextColor string `json:"beltTextColor"`
}

func viewOf(s student.Student, ladder []curriculum.BeltRequirement) studentView {
	return studentView{
		Student:       s,
		BeltColor:     curriculum.ResolveColor(s.BeltRank, ladder),
		BeltTextColor: curriculum.ResolveTextColor(s.BeltRank, ladder),
	}
}

func ListStudentsHandler(store student.Store, ranks curriculum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.List(r.Context())
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		ladder, err := ranks.List(r.Context())
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		out := make([]studentView, 0, len(list))
		for _, s := range list {
			out = append(out, viewOf(s, ladder))
		}
		writeJSON(w, out)
	}
}

func GetStudentHandler(store student.Store, ranks curriculum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := store.Get(r.Context(), chi.URLParam(r, "studentID"))
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		ladder, err := ranks.List(r.Context())
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, viewOf(s, ladder))
	}
}

func CreateStudentHandler(store student.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var s student.Student
		if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if s.FirstName == "" || s.LastName == "" {
			http.Error(w, "first_name and last_name required", 400)
			return
		}
		s.Active = true
		created, err := store.Create(r.Context(), s)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, created)
	}
}

func UpdateStudentHandler(store student.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var s student.Student
		if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		s.ID = chi.URLParam(r, "studentID")
		updated, err := store.Update(r.Context(), s)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, updated)
	}
}

func DeleteStudentHandler(store student.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(r.Context(), chi.URLParam(r, "studentID")); err != nil {
			writeDomainErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NextBeltHandler resolves the promotion target for a student's current
// belt against the stored curriculum. at_maximum is set when the student
// already holds the highest rank.
func NextBeltHandler(store student.Store, ranks curriculum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := store.Get(r.Context(), chi.URLParam(r, "studentID"))
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		ladder, err := ranks.List(r.Context())
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		next, err := curriculum.NextBeltRank(s.BeltRank, ladder)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, map[string]any{
			"current_belt_rank": s.BeltRank,
			"next_belt_rank":    next,
			"at_maximum":        next != "" && strings.EqualFold(next, s.BeltRank),
		})
	}
}
