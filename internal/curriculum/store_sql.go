package curriculum

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when a rank has no stored requirement.
var ErrNotFound = errors.New("curriculum: belt requirement not found")

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

type categoryLists struct {
	Forms       []string `json:"forms"`
	Stances     []string `json:"stances"`
	Blocks      []string `json:"blocks"`
	Punches     []string `json:"punches"`
	Kicks       []string `json:"kicks"`
	Jumps       []string `json:"jumps"`
	Falling     []string `json:"falling"`
	OneSteps    []string `json:"oneSteps"`
	SelfDefense []string `json:"selfDefense"`
}

func (s *SQLStore) Put(ctx context.Context, r BeltRequirement) error {
	lists := categoryLists{
		Forms: r.Forms, Stances: r.Stances, Blocks: r.Blocks, Punches: r.Punches,
		Kicks: r.Kicks, Jumps: r.Jumps, Falling: r.Falling, OneSteps: r.OneSteps,
		SelfDefense: r.SelfDefense,
	}
	lj, err := json.Marshal(lists)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO belt_requirements (belt_order,belt_rank,categories_json,color,text_color,comments)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (belt_order) DO UPDATE SET belt_rank=EXCLUDED.belt_rank, categories_json=EXCLUDED.categories_json,
			color=EXCLUDED.color, text_color=EXCLUDED.text_color, comments=EXCLUDED.comments`,
		r.BeltOrder, r.BeltRank, string(lj), r.Color, r.TextColor, r.Comments)
	return err
}

func (s *SQLStore) Get(ctx context.Context, rank string) (BeltRequirement, error) {
	row := s.db.QueryRowContext(ctx, `SELECT belt_order,belt_rank,categories_json,color,text_color,comments
		FROM belt_requirements WHERE LOWER(belt_rank)=LOWER($1)`, rank)
	return scanRequirement(row)
}

func (s *SQLStore) List(ctx context.Context) ([]BeltRequirement, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT belt_order,belt_rank,categories_json,color,text_color,comments
		FROM belt_requirements ORDER BY belt_order ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []BeltRequirement
	for rows.Next() {
		r, err := scanRequirement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) Delete(ctx context.Context, rank string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM belt_requirements WHERE LOWER(belt_rank)=LOWER($1)`, rank)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequirement(row rowScanner) (BeltRequirement, error) {
	var r BeltRequirement
	var lj string
	if err := row.Scan(&r.BeltOrder, &r.BeltRank, &lj, &r.Color, &r.TextColor, &r.Comments); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BeltRequirement{}, ErrNotFound
		}
		return BeltRequirement{}, err
	}
	var lists categoryLists
	if err := json.Unmarshal([]byte(lj), &lists); err != nil {
		return BeltRequirement{}, err
	}
	r.Forms, r.Stances, r.Blocks, r.Punches = lists.Forms, lists.Stances, lists.Blocks, lists.Punches
	r.Kicks, r.Jumps, r.Falling, r.OneSteps = lists.Kicks, lists.Jumps, lists.Falling, lists.OneSteps
	r.SelfDefense = lists.SelfDefense
	return r, nil
}
