package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userRow struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Password string `json:"password,omitempty"` // accepted on create only, never returned
}

// CreateUserHandler provisions an instructor or admin account with a bcrypt
// password hash. Admin-only.
func CreateUserHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var u userRow
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		u.Username = strings.TrimSpace(u.Username)
		if u.Username == "" || u.Password == "" {
			http.Error(w, "username and password required", 400)
			return
		}
		if u.Role != "admin" {
			u.Role = "instructor"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			http.Error(w, "hash password", 500)
			return
		}
		u.ID = uuid.NewString()
		_, err = db.ExecContext(r.Context(),
			`INSERT INTO users (id, username, password_hash, role) VALUES ($1,$2,$3,$4)`,
			u.ID, u.Username, string(hash), u.Role)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		u.Password = ""
		writeJSON(w, u)
	}
}

func ListUsersHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.QueryContext(r.Context(), `SELECT id, username, role FROM users ORDER BY username`)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		defer rows.Close()
		out := []userRow{}
		for rows.Next() {
			var u userRow
			if err := rows.Scan(&u.ID, &u.Username, &u.Role); err != nil {
				http.Error(w, err.Error(), 500)
				return
			}
			out = append(out, u)
		}
		if err := rows.Err(); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, out)
	}
}
