package assessment

// Status is the lifecycle state of an assessment. completed and cancelled
// are terminal: no further field mutation is permitted from either.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Assessment is a single graded testing event for one student against one
// target belt. Scores holds technique scores keyed by registry field name;
// a missing key means the technique has not been graded. Passed and
// OverallScore are authoritative only once Status is completed.
type Assessment struct {
	ID             string             `json:"assessment_id"`
	StudentID      string             `json:"student_id"`
	AssessmentDate string             `json:"assessment_date"` // RFC3339 timestamp
	TargetBeltRank string             `json:"target_belt_rank"`
	Scores         map[string]float64 `json:"scores"`
	OverallScore   *float64           `json:"overall_score,omitempty"`
	Passed         *bool              `json:"passed,omitempty"`
	ExaminerNotes  string             `json:"examiner_notes,omitempty"`
	CancelReason   string             `json:"cancel_reason,omitempty"`
	Status         Status             `json:"assessment_status"`
	CreatedAt      int64              `json:"created_at,omitempty"`
	ClosedAt       *int64             `json:"closed_at,omitempty"` // completion or cancellation time
}

// Result returns the pass flag and overall score for display. Both are nil
// unless the assessment is completed: an in-progress or cancelled assessment
// must present them as unset even if values linger on the record.
func (a *Assessment) Result() (passed *bool, overall *float64) {
	if a == nil || a.Status != StatusCompleted {
		return nil, nil
	}
	return a.Passed, a.OverallScore
}
