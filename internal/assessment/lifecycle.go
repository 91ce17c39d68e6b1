package assessment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidTransition is returned when a lifecycle mutation is
	// attempted from a terminal or otherwise incompatible state.
	ErrInvalidTransition = errors.New("assessment: invalid status transition")
	// ErrScoreOutOfRange is returned when a supplied score falls outside
	// its valid bound.
	ErrScoreOutOfRange = errors.New("assessment: score out of range")
	// ErrUnknownField is returned when a score update names a field that is
	// not in the registry.
	ErrUnknownField = errors.New("assessment: unknown score field")
)

// Score bounds and scoring policy constants.
const (
	TechniqueScoreMax = 10
	OverallScoreMax   = 100

	// PassingThreshold is a display convention used to colour summaries; it
	// is independent from the authoritative Passed flag set at completion.
	PassingThreshold = 70

	// Placeholder overall scores substituted when Complete is called
	// without one. Not meaningful grading logic.
	defaultPassOverall = 80
	defaultFailOverall = 60
)

// OverallScoreField is the reserved update key for the overall score, which
// is bounded [0,100] rather than [0,10].
const OverallScoreField = "overall_score"

// New creates an in-progress assessment for a student testing toward
// targetBeltRank, dated now.
func New(studentID, targetBeltRank string, now time.Time) *Assessment {
	return &Assessment{
		ID:             uuid.NewString(),
		StudentID:      studentID,
		AssessmentDate: now.UTC().Format(time.RFC3339),
		TargetBeltRank: targetBeltRank,
		Scores:         map[string]float64{},
		Status:         StatusInProgress,
		CreatedAt:      now.Unix(),
	}
}

// RecordScores merges score updates into the assessment. A nil value clears
// the field back to ungraded. Permitted only while in progress; every update
// is validated before any is applied, so a rejected batch leaves the
// assessment untouched.
func (a *Assessment) RecordScores(updates map[string]*float64) error {
	if a.Status != StatusInProgress {
		return fmt.Errorf("%w: record scores on %s assessment", ErrInvalidTransition, a.Status)
	}
	for name, v := range updates {
		if name == OverallScoreField {
			if v != nil && (*v < 0 || *v > OverallScoreMax) {
				return fmt.Errorf("%w: %s=%v", ErrScoreOutOfRange, name, *v)
			}
			continue
		}
		if _, ok := FieldByName(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		if v != nil && (*v < 0 || *v > TechniqueScoreMax) {
			return fmt.Errorf("%w: %s=%v", ErrScoreOutOfRange, name, *v)
		}
	}
	if a.Scores == nil {
		a.Scores = map[string]float64{}
	}
	for name, v := range updates {
		if name == OverallScoreField {
			if v == nil {
				a.OverallScore = nil
			} else {
				s := *v
				a.OverallScore = &s
			}
			continue
		}
		if v == nil {
			delete(a.Scores, name)
		} else {
			a.Scores[name] = *v
		}
	}
	return nil
}

// Complete transitions an in-progress assessment to completed, recording the
// authoritative pass decision. When overall is nil a placeholder score is
// substituted: 80 when passed, 60 otherwise.
func (a *Assessment) Complete(passed bool, overall *float64, now time.Time) error {
	if a.Status != StatusInProgress {
		return fmt.Errorf("%w: complete %s assessment", ErrInvalidTransition, a.Status)
	}
	score := float64(defaultFailOverall)
	if passed {
		score = defaultPassOverall
	}
	if overall != nil {
		if *overall < 0 || *overall > OverallScoreMax {
			return fmt.Errorf("%w: %s=%v", ErrScoreOutOfRange, OverallScoreField, *overall)
		}
		score = *overall
	}
	a.Status = StatusCompleted
	a.Passed = &passed
	a.OverallScore = &score
	t := now.Unix()
	a.ClosedAt = &t
	return nil
}

// Cancel transitions an in-progress assessment to cancelled. Irreversible.
func (a *Assessment) Cancel(reason string, now time.Time) error {
	if a.Status != StatusInProgress {
		return fmt.Errorf("%w: cancel %s assessment", ErrInvalidTransition, a.Status)
	}
	a.Status = StatusCancelled
	a.CancelReason = reason
	t := now.Unix()
	a.ClosedAt = &t
	return nil
}

// IsPassing reports whether an overall score is displayed as passing.
func IsPassing(overall float64) bool { return overall >= PassingThreshold }
