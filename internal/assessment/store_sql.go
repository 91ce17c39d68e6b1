package assessment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Nerotas/ToughNoseKarate-sub001/internal/eventlog"
)

type SQLStore struct {
	db     *sql.DB
	events *eventlog.Repo // optional; nil disables transition logging
	now    func() time.Time
}

func NewSQLStore(db *sql.DB, events *eventlog.Repo) *SQLStore {
	return &SQLStore{db: db, events: events, now: time.Now}
}

func (s *SQLStore) Create(ctx context.Context, studentID, targetBeltRank string) (Assessment, error) {
	var open int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM assessments WHERE student_id=$1 AND status=$2`,
		studentID, string(StatusInProgress)).Scan(&open)
	if err != nil {
		return Assessment{}, err
	}
	if open > 0 {
		return Assessment{}, ErrAssessmentOpen
	}

	a := New(studentID, targetBeltRank, s.now())
	sj, err := json.Marshal(a.Scores)
	if err != nil {
		return Assessment{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO assessments (id,student_id,assessment_date,target_belt_rank,scores_json,status,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		a.ID, a.StudentID, a.AssessmentDate, a.TargetBeltRank, string(sj), string(a.Status), a.CreatedAt)
	if err != nil {
		return Assessment{}, err
	}
	s.logEvent(ctx, eventlog.TypeAssessmentCreated, *a)
	return *a, nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (Assessment, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+assessmentCols+` FROM assessments WHERE id=$1`, id)
	return scanAssessment(row)
}

func (s *SQLStore) ListByStudent(ctx context.Context, studentID string) ([]Assessment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+assessmentCols+` FROM assessments WHERE student_id=$1 ORDER BY created_at DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLStore) SaveScores(ctx context.Context, id string, updates map[string]*float64) (Assessment, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return Assessment{}, err
	}
	if err := a.RecordScores(updates); err != nil {
		return Assessment{}, err
	}
	sj, err := json.Marshal(a.Scores)
	if err != nil {
		return Assessment{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE assessments SET scores_json=$1, overall_score=$2 WHERE id=$3`,
		string(sj), a.OverallScore, id)
	if err != nil {
		return Assessment{}, err
	}
	return a, nil
}

func (s *SQLStore) Complete(ctx context.Context, id string, passed bool, overall *float64) (Assessment, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return Assessment{}, err
	}
	if err := a.Complete(passed, overall, s.now()); err != nil {
		return Assessment{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE assessments SET status=$1, passed=$2, overall_score=$3, closed_at=$4 WHERE id=$5`,
		string(a.Status), a.Passed, a.OverallScore, a.ClosedAt, id)
	if err != nil {
		return Assessment{}, err
	}
	s.logEvent(ctx, eventlog.TypeAssessmentCompleted, a)
	return a, nil
}

func (s *SQLStore) Cancel(ctx context.Context, id, reason string) (Assessment, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return Assessment{}, err
	}
	if err := a.Cancel(reason, s.now()); err != nil {
		return Assessment{}, err
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE assessments SET status=$1, cancel_reason=$2, closed_at=$3 WHERE id=$4`,
		string(a.Status), a.CancelReason, a.ClosedAt, id)
	if err != nil {
		return Assessment{}, err
	}
	s.logEvent(ctx, eventlog.TypeAssessmentCancelled, a)
	return a, nil
}

func (s *SQLStore) logEvent(ctx context.Context, typ string, a Assessment) {
	if s.events == nil {
		return
	}
	data, _ := json.Marshal(a)
	// best-effort: a failed audit append must not fail the transition
	_ = s.events.Append(ctx, eventlog.Event{Type: typ, Key: a.ID, DataJSON: string(data)})
}

const assessmentCols = `id,student_id,assessment_date,target_belt_rank,scores_json,overall_score,passed,examiner_notes,cancel_reason,status,created_at,closed_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (Assessment, error) {
	var a Assessment
	var sj string
	var notes, reason sql.NullString
	var status string
	if err := row.Scan(&a.ID, &a.StudentID, &a.AssessmentDate, &a.TargetBeltRank, &sj,
		&a.OverallScore, &a.Passed, &notes, &reason, &status, &a.CreatedAt, &a.ClosedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, ErrNotFound
		}
		return Assessment{}, err
	}
	a.Status = Status(status)
	a.ExaminerNotes = notes.String
	a.CancelReason = reason.String
	if err := json.Unmarshal([]byte(sj), &a.Scores); err != nil {
		return Assessment{}, fmt.Errorf("decode scores for %s: %w", a.ID, err)
	}
	if a.Scores == nil {
		a.Scores = map[string]float64{}
	}
	return a, nil
}
