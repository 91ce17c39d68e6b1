package assessment

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when an assessment id has no record.
	ErrNotFound = errors.New("assessment: not found")
	// ErrAssessmentOpen is returned by Create while the student already has
	// an in-progress assessment. The pure lifecycle does not enforce this
	// invariant; the backing store does.
	ErrAssessmentOpen = errors.New("assessment: student already has an assessment in progress")
)

// Store is the persistence boundary for assessments. Lifecycle rules live on
// the Assessment value itself; implementations load the record, apply the
// transition and persist the result.
type Store interface {
	Create(ctx context.Context, studentID, targetBeltRank string) (Assessment, error)
	Get(ctx context.Context, id string) (Assessment, error)
	ListByStudent(ctx context.Context, studentID string) ([]Assessment, error)
	SaveScores(ctx context.Context, id string, updates map[string]*float64) (Assessment, error)
	Complete(ctx context.Context, id string, passed bool, overall *float64) (Assessment, error)
	Cancel(ctx context.Context, id, reason string) (Assessment, error)
}
