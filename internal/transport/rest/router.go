package rest

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/department"
	"github.com/frahmantamala/hr-management/internal/employee"
	"github.com/frahmantamala/hr-management/internal/transport/middleware"
	"github.com/frahmantamala/hr-management/internal/transport/swagger"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes wires the full API surface: public auth endpoints,
// authenticated read endpoints, and manage-gated mutation endpoints.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	roleAuth *auth.RoleAuthorization,
	departmentHandler *department.Handler,
	employeeHandler *employee.Handler,
	allowedOrigins string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes: signup and login are public, create-user is admin-only
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/signup", authHandler.Signup)
			sr.Post("/login", authHandler.Login)

			sr.Group(func(ar chi.Router) {
				ar.Use(authHandler.AuthMiddleware)
				ar.Use(roleAuth.RequireAdmin())
				ar.Post("/create-user", authHandler.CreateUser)
			})
		})

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Route("/departments", func(dr chi.Router) {
				dr.Get("/", departmentHandler.GetDepartments)

				dr.Group(func(mr chi.Router) {
					mr.Use(roleAuth.RequireManage())
					mr.Post("/", departmentHandler.CreateDepartment)
					mr.Put("/{id}", departmentHandler.UpdateDepartment)
					mr.Delete("/{id}", departmentHandler.DeleteDepartment)
				})
			})

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/", employeeHandler.GetEmployees)

				er.Group(func(mr chi.Router) {
					mr.Use(roleAuth.RequireManage())
					mr.Get("/unlinked-users", employeeHandler.GetUnlinkedUsers)
					mr.Post("/", employeeHandler.CreateEmployee)
					mr.Put("/{id}", employeeHandler.UpdateEmployee)
					mr.Delete("/{id}", employeeHandler.DeleteEmployee)
				})
			})
		})
	})

	router.NotFound(notFoundHandler)
}

// notFoundHandler keeps the error shape browser clients already rely on.
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "fail",
		"message": fmt.Sprintf("Can't find %s on this server!", r.URL.Path),
	})
}
