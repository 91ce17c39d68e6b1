package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Nerotas/ToughNoseKarate-sub001/internal/assessment"
	"github.com/Nerotas/ToughNoseKarate-sub001/internal/student"
)

type fakeStudents struct {
	students map[string]student.Student
}

func (f *fakeStudents) Get(_ context.Context, id string) (student.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return student.Student{}, student.ErrNotFound
	}
	return s, nil
}
func (f *fakeStudents) Create(_ context.Context, s student.Student) (student.Student, error) {
	f.students[s.ID] = s
	return s, nil
}
func (f *fakeStudents) List(_ context.Context) ([]student.Student, error) { return nil, nil }
func (f *fakeStudents) Update(_ context.Context, s student.Student) (student.Student, error) {
	f.students[s.ID] = s
	return s, nil
}
func (f *fakeStudents) Delete(_ context.Context, id string) error {
	delete(f.students, id)
	return nil
}

func newTestRouter() (*chi.Mux, assessment.Store) {
	store := assessment.NewInMemoryStore()
	students := &fakeStudents{students: map[string]student.Student{
		"stu-1": {ID: "stu-1", FirstName: "Jo", LastName: "Kim", BeltRank: "Gold"},
	}}
	r := chi.NewRouter()
	r.Post("/assessments", CreateAssessmentHandler(store, students))
	r.Get("/assessments/{assessmentID}", GetAssessmentHandler(store))
	r.Patch("/assessments/{assessmentID}/scores", SaveScoresHandler(store))
	r.Post("/assessments/{assessmentID}/complete", CompleteAssessmentHandler(store))
	r.Post("/assessments/{assessmentID}/cancel", CancelAssessmentHandler(store))
	r.Get("/assessments/{assessmentID}/values", EditableValuesHandler(store))
	return r, store
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAssessmentFlow(t *testing.T) {
	r, _ := newTestRouter()

	// create, defaulting the target to the student's current belt
	w := doJSON(t, r, "POST", "/assessments", map[string]string{"student_id": "stu-1"})
	if w.Code != 200 {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	var a assessment.Assessment
	if err := json.Unmarshal(w.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.TargetBeltRank != "Gold" || a.Status != assessment.StatusInProgress {
		t.Fatalf("unexpected new assessment: %+v", a)
	}

	// a second open assessment for the same student is refused
	if w := doJSON(t, r, "POST", "/assessments", map[string]string{"student_id": "stu-1"}); w.Code != http.StatusConflict {
		t.Fatalf("second create: %d, want 409", w.Code)
	}

	// score a couple of techniques
	w = doJSON(t, r, "PATCH", "/assessments/"+a.ID+"/scores", map[string]float64{"front_kick": 8})
	if w.Code != 200 {
		t.Fatalf("save scores: %d %s", w.Code, w.Body.String())
	}

	// out-of-range score is a bad request
	if w := doJSON(t, r, "PATCH", "/assessments/"+a.ID+"/scores", map[string]float64{"front_kick": 15}); w.Code != 400 {
		t.Fatalf("out-of-range score: %d, want 400", w.Code)
	}

	// editable values carry the recorded score
	w = doJSON(t, r, "GET", "/assessments/"+a.ID+"/values", nil)
	if w.Code != 200 {
		t.Fatalf("values: %d", w.Code)
	}
	var v assessment.EditableValues
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode values: %v", err)
	}
	if v.Scores["front_kick"] == nil || *v.Scores["front_kick"] != 8 {
		t.Fatalf("values front_kick = %v", v.Scores["front_kick"])
	}

	// complete with default overall
	w = doJSON(t, r, "POST", "/assessments/"+a.ID+"/complete", map[string]any{"passed": true})
	if w.Code != 200 {
		t.Fatalf("complete: %d %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.Status != assessment.StatusCompleted || a.OverallScore == nil || *a.OverallScore != 80 {
		t.Fatalf("completed assessment: %+v", a)
	}

	// terminal: cancelling afterwards is a conflict
	if w := doJSON(t, r, "POST", "/assessments/"+a.ID+"/cancel", nil); w.Code != http.StatusConflict {
		t.Fatalf("cancel after complete: %d, want 409", w.Code)
	}
}

func TestCancelIsTerminal(t *testing.T) {
	r, _ := newTestRouter()
	w := doJSON(t, r, "POST", "/assessments", map[string]string{"student_id": "stu-1"})
	var a assessment.Assessment
	if err := json.Unmarshal(w.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w := doJSON(t, r, "POST", "/assessments/"+a.ID+"/cancel", map[string]string{"reason": "no-show"}); w.Code != 200 {
		t.Fatalf("cancel: %d", w.Code)
	}
	if w := doJSON(t, r, "POST", "/assessments/"+a.ID+"/complete", map[string]any{"passed": true}); w.Code != http.StatusConflict {
		t.Fatalf("complete after cancel: %d, want 409", w.Code)
	}
	// state unchanged
	w = doJSON(t, r, "GET", "/assessments/"+a.ID, nil)
	if err := json.Unmarshal(w.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.Status != assessment.StatusCancelled {
		t.Fatalf("status = %s, want cancelled", a.Status)
	}
}

func TestCreateAssessment_UnknownStudent(t *testing.T) {
	r, _ := newTestRouter()
	if w := doJSON(t, r, "POST", "/assessments", map[string]string{"student_id": "ghost"}); w.Code != 404 {
		t.Fatalf("unknown student: %d, want 404", w.Code)
	}
}
