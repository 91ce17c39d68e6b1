package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/Nerotas/ToughNoseKarate-sub001/internal/api/http"
	"github.com/Nerotas/ToughNoseKarate-sub001/internal/assessment"
	auth "github.com/Nerotas/ToughNoseKarate-sub001/internal/auth/middleware"
	"github.com/Nerotas/ToughNoseKarate-sub001/internal/config"
	"github.com/Nerotas/ToughNoseKarate-sub001/internal/curriculum"
	"github.com/Nerotas/ToughNoseKarate-sub001/internal/db"
	"github.com/Nerotas/ToughNoseKarate-sub001/internal/eventlog"
	"github.com/Nerotas/ToughNoseKarate-sub001/internal/rbac"
	"github.com/Nerotas/ToughNoseKarate-sub001/internal/student"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	config.LoadEnv()
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	ranks := curriculum.NewSQLStore(dbh)
	students := student.NewSQLStore(dbh)
	assessments := assessment.NewSQLStore(dbh, eventlog.NewRepo(dbh))

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, dbh, cfg.AdminUser, cfg.AdminPassHash))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		// Curriculum reference data: admin edits, instructors read
		pr.With(rbac.Require("requirement:view")).
			Get("/belt-requirements", api.ListRequirementsHandler(ranks))
		pr.With(rbac.Require("requirement:view")).
			Get("/belt-requirements/{rank}", api.GetRequirementHandler(ranks))
		pr.With(rbac.Require("requirement:view")).
			Get("/belt-requirements/{rank}/relevance", api.RelevanceHandler(ranks))
		pr.With(rbac.Require("requirement:edit")).
			Put("/belt-requirements", api.PutRequirementHandler(ranks))
		pr.With(rbac.Require("requirement:edit")).
			Delete("/belt-requirements/{rank}", api.DeleteRequirementHandler(ranks))

		// Students
		pr.With(rbac.Require("student:view")).
			Get("/students", api.ListStudentsHandler(students, ranks))
		pr.With(rbac.Require("student:view")).
			Get("/students/{studentID}", api.GetStudentHandler(students, ranks))
		pr.With(rbac.Require("student:view")).
			Get("/students/{studentID}/next-belt", api.NextBeltHandler(students, ranks))
		pr.With(rbac.Require("student:edit")).
			Post("/students", api.CreateStudentHandler(students))
		pr.With(rbac.Require("student:edit")).
			Put("/students/{studentID}", api.UpdateStudentHandler(students))
		pr.With(rbac.Require("student:edit")).
			Delete("/students/{studentID}", api.DeleteStudentHandler(students))

		// Assessment flow
		pr.With(rbac.Require("assessment:create")).
			Post("/assessments", api.CreateAssessmentHandler(assessments, students))
		pr.With(rbac.Require("assessment:view")).
			Get("/assessments", api.ListAssessmentsHandler(assessments))
		pr.With(rbac.Require("assessment:view")).
			Get("/assessments/blank-values", api.BlankValuesHandler())
		pr.With(rbac.Require("assessment:view")).
			Get("/assessments/{assessmentID}", api.GetAssessmentHandler(assessments))
		pr.With(rbac.Require("assessment:view")).
			Get("/assessments/{assessmentID}/values", api.EditableValuesHandler(assessments))
		pr.With(rbac.Require("assessment:score")).
			Patch("/assessments/{assessmentID}/scores", api.SaveScoresHandler(assessments))
		pr.With(rbac.Require("assessment:complete")).
			Post("/assessments/{assessmentID}/complete", api.CompleteAssessmentHandler(assessments))
		pr.With(rbac.Require("assessment:cancel")).
			Post("/assessments/{assessmentID}/cancel", api.CancelAssessmentHandler(assessments))

		// Accounts (admin)
		pr.With(rbac.Require("users:create")).
			Post("/users", api.CreateUserHandler(dbh))
		pr.With(rbac.Require("users:list")).
			Get("/users", api.ListUsersHandler(dbh))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
