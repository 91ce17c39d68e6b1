package eventlog

import (
	"context"
	"database/sql"
	"time"
)

// Event types appended by the assessment store.
const (
	TypeAssessmentCreated   = "AssessmentCreated"
	TypeAssessmentCompleted = "AssessmentCompleted"
	TypeAssessmentCancelled = "AssessmentCancelled"
)

type Event struct {
	Offset    int64
	SiteID    string
	Type      string
	Key       string // natural key: assessmentID
	DataJSON  string
	CreatedAt int64
}

// Repo is an append-only log of lifecycle transitions, kept for audit and
// offline sync.
type Repo struct{ db *sql.DB }

func NewRepo(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Append(ctx context.Context, e Event) error {
	site := e.SiteID
	if site == "" {
		site = "local"
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		site, e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}

// Since returns events after offset, oldest first.
func (r *Repo) Since(ctx context.Context, offset int64, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT "offset", site_id, typ, key, data, created_at FROM event_log
		 WHERE "offset" > $1 ORDER BY "offset" ASC LIMIT $2`, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Offset, &e.SiteID, &e.Type, &e.Key, &e.DataJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
