package assessment

import "time"

// EditableValues is the value set backing the assessment entry form: every
// registry field is present, nil meaning ungraded. Zero is a valid earned
// score and must never default in as "ungraded"; see the mapping caveat on
// ToEditableValues.
type EditableValues struct {
	AssessmentDate string              `json:"assessment_date"` // date-only ISO
	TargetBeltRank string              `json:"target_belt_rank"`
	Scores         map[string]*float64 `json:"scores"`
	OverallScore   *float64            `json:"overall_score"`
	ExaminerNotes  string              `json:"examiner_notes"`
}

// WirePayload is the partial assessment update sent back to the store.
// Ungraded fields are omitted rather than sent as zero.
type WirePayload struct {
	AssessmentDate string             `json:"assessment_date,omitempty"` // full RFC3339 timestamp
	TargetBeltRank string             `json:"target_belt_rank,omitempty"`
	Scores         map[string]float64 `json:"scores,omitempty"`
	OverallScore   *float64           `json:"overall_score,omitempty"`
	ExaminerNotes  string             `json:"examiner_notes,omitempty"`
}

// ToEditableValues maps an assessment (or nil, for "no assessment yet") to
// an editable value set. With no assessment every field is nil, the date is
// today and the target rank is empty.
//
// Stored values copy across only when non-zero: a legitimately recorded 0
// score maps to ungraded. Existing consumers rely on zero-valued fields
// being dropped, so this lossy rule is kept rather than corrected.
func ToEditableValues(a *Assessment, now time.Time) EditableValues {
	v := EditableValues{
		AssessmentDate: now.UTC().Format("2006-01-02"),
		Scores:         make(map[string]*float64, len(ScoreFields)),
	}
	for _, f := range ScoreFields {
		v.Scores[f.Name] = nil
	}
	if a == nil {
		return v
	}
	v.AssessmentDate = dateOnly(a.AssessmentDate, now)
	v.TargetBeltRank = a.TargetBeltRank
	v.ExaminerNotes = a.ExaminerNotes
	for _, f := range ScoreFields {
		if s, ok := a.Scores[f.Name]; ok && s != 0 {
			sc := s
			v.Scores[f.Name] = &sc
		}
	}
	if a.OverallScore != nil && *a.OverallScore != 0 {
		sc := *a.OverallScore
		v.OverallScore = &sc
	}
	return v
}

// ToWirePayload is the inverse mapping: nil and zero scores are omitted and
// the date-only value is expanded back to a full UTC timestamp.
func ToWirePayload(v EditableValues) WirePayload {
	p := WirePayload{
		TargetBeltRank: v.TargetBeltRank,
		ExaminerNotes:  v.ExaminerNotes,
	}
	if v.AssessmentDate != "" {
		if t, err := time.Parse("2006-01-02", v.AssessmentDate); err == nil {
			p.AssessmentDate = t.UTC().Format(time.RFC3339)
		} else {
			p.AssessmentDate = v.AssessmentDate
		}
	}
	scores := make(map[string]float64)
	for name, s := range v.Scores {
		if s != nil && *s != 0 {
			scores[name] = *s
		}
	}
	if len(scores) > 0 {
		p.Scores = scores
	}
	if v.OverallScore != nil && *v.OverallScore != 0 {
		sc := *v.OverallScore
		p.OverallScore = &sc
	}
	return p
}

// dateOnly reduces a stored timestamp to its date component, falling back to
// today when the stored value is unparseable.
func dateOnly(s string, now time.Time) string {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Format("2006-01-02")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02")
	}
	return now.UTC().Format("2006-01-02")
}
