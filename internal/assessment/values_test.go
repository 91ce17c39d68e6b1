package assessment

import "testing"

func TestToEditableValues_NoAssessment(t *testing.T) {
	v := ToEditableValues(nil, testNow)
	if v.AssessmentDate != "2025-06-01" {
		t.Fatalf("blank form date = %q, want today date-only", v.AssessmentDate)
	}
	if v.TargetBeltRank != "" {
		t.Fatalf("blank form target rank = %q, want empty", v.TargetBeltRank)
	}
	if len(v.Scores) != len(ScoreFields) {
		t.Fatalf("blank form must carry every field, got %d", len(v.Scores))
	}
	for name, s := range v.Scores {
		if s != nil {
			t.Fatalf("field %s should default to nil, not %v", name, *s)
		}
	}
}

func TestToEditableValues_DateReducedToDateOnly(t *testing.T) {
	a := New("stu-1", "Gold", testNow)
	a.AssessmentDate = "2025-03-09T18:30:00Z"
	v := ToEditableValues(a, testNow)
	if v.AssessmentDate != "2025-03-09" {
		t.Fatalf("date = %q, want time component stripped", v.AssessmentDate)
	}
}

func TestValues_RoundTripPreservesNonZeroScores(t *testing.T) {
	a := New("stu-1", "Gold", testNow)
	if err := a.RecordScores(map[string]*float64{
		"front_kick": f(8.5),
		"side_kick":  f(10),
		"jab":        f(1),
	}); err != nil {
		t.Fatalf("record: %v", err)
	}
	p := ToWirePayload(ToEditableValues(a, testNow))
	want := map[string]float64{"front_kick": 8.5, "side_kick": 10, "jab": 1}
	if len(p.Scores) != len(want) {
		t.Fatalf("payload scores = %v", p.Scores)
	}
	for name, s := range want {
		if p.Scores[name] != s {
			t.Fatalf("%s = %v, want %v", name, p.Scores[name], s)
		}
	}
	if p.AssessmentDate != "2025-06-01T00:00:00Z" {
		t.Fatalf("payload date = %q, want full timestamp", p.AssessmentDate)
	}
	if p.TargetBeltRank != "Gold" {
		t.Fatalf("payload target = %q", p.TargetBeltRank)
	}
}

func TestValues_ZeroScoresAreLossy(t *testing.T) {
	// A recorded 0 is indistinguishable from ungraded once mapped.
	// Consumers rely on zero-valued fields being dropped, so the lossy
	// rule is pinned here rather than corrected.
	a := New("stu-1", "Gold", testNow)
	if err := a.RecordScores(map[string]*float64{"front_kick": f(0)}); err != nil {
		t.Fatalf("record: %v", err)
	}
	v := ToEditableValues(a, testNow)
	if v.Scores["front_kick"] != nil {
		t.Fatalf("zero score must map to nil in editable values")
	}
	p := ToWirePayload(v)
	if _, ok := p.Scores["front_kick"]; ok {
		t.Fatalf("zero score must be omitted from the wire payload")
	}
}

func TestToEditableValues_OverallFollowsFalsyRule(t *testing.T) {
	a := New("stu-1", "Gold", testNow)
	zero := 0.0
	a.OverallScore = &zero
	if v := ToEditableValues(a, testNow); v.OverallScore != nil {
		t.Fatalf("zero overall must map to nil")
	}
	set := 76.0
	a.OverallScore = &set
	v := ToEditableValues(a, testNow)
	if v.OverallScore == nil || *v.OverallScore != 76 {
		t.Fatalf("overall = %v, want 76", v.OverallScore)
	}
	p := ToWirePayload(v)
	if p.OverallScore == nil || *p.OverallScore != 76 {
		t.Fatalf("payload overall = %v, want 76", p.OverallScore)
	}
}

func TestToEditableValues_UnparseableDateFallsBackToToday(t *testing.T) {
	a := New("stu-1", "Gold", testNow)
	a.AssessmentDate = "not-a-date"
	if v := ToEditableValues(a, testNow); v.AssessmentDate != "2025-06-01" {
		t.Fatalf("date = %q, want today", v.AssessmentDate)
	}
}
