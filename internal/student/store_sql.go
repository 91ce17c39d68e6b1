package student

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("student: not found")

type Store interface {
	Create(ctx context.Context, s Student) (Student, error)
	Get(ctx context.Context, id string) (Student, error)
	List(ctx context.Context) ([]Student, error)
	Update(ctx context.Context, s Student) (Student, error)
	Delete(ctx context.Context, id string) error
}

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (st *SQLStore) Create(ctx context.Context, s Student) (Student, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = time.Now().Unix()
	_, err := st.db.ExecContext(ctx,
		`INSERT INTO students (id,first_name,last_name,email,belt_rank,active,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		s.ID, s.FirstName, s.LastName, s.Email, s.BeltRank, s.Active, s.CreatedAt)
	if err != nil {
		return Student{}, err
	}
	return s, nil
}

func (st *SQLStore) Get(ctx context.Context, id string) (Student, error) {
	row := st.db.QueryRowContext(ctx,
		`SELECT id,first_name,last_name,email,belt_rank,active,created_at FROM students WHERE id=$1`, id)
	return scanStudent(row)
}

func (st *SQLStore) List(ctx context.Context) ([]Student, error) {
	rows, err := st.db.QueryContext(ctx,
		`SELECT id,first_name,last_name,email,belt_rank,active,created_at FROM students
		 ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (st *SQLStore) Update(ctx context.Context, s Student) (Student, error) {
	res, err := st.db.ExecContext(ctx,
		`UPDATE students SET first_name=$1, last_name=$2, email=$3, belt_rank=$4, active=$5 WHERE id=$6`,
		s.FirstName, s.LastName, s.Email, s.BeltRank, s.Active, s.ID)
	if err != nil {
		return Student{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Student{}, ErrNotFound
	}
	return st.Get(ctx, s.ID)
}

func (st *SQLStore) Delete(ctx context.Context, id string) error {
	res, err := st.db.ExecContext(ctx, `DELETE FROM students WHERE id=$1`, id)
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

func scanStudent(row rowScanner) (Student, error) {
	var s Student
	var email sql.NullString
	if err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &email, &s.BeltRank, &s.Active, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Student{}, ErrNotFound
		}
		return Student{}, err
	}
	s.Email = email.String
	return s, nil
}
