package employee_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/frahmantamala/hr-management/internal/auth"
	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
	"github.com/frahmantamala/hr-management/internal/employee"
	employeePostgres "github.com/frahmantamala/hr-management/internal/employee/postgres"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Employee Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    employee.RepositoryAPI
		service *employee.Service
		handler *employee.Handler
		router  chi.Router
	)

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&employeeDatamodel.Employee{}, &userDatamodel.User{})
		Expect(err).NotTo(HaveOccurred())

		repo = employeePostgres.NewEmployeeRepository(db)
		service = employee.NewService(repo, slogger)
		handler = employee.NewHandler(service)

		router = chi.NewRouter()
		router.Get("/employees", handler.GetEmployees)
		router.Get("/employees/unlinked-users", handler.GetUnlinkedUsers)
		router.Post("/employees", handler.CreateEmployee)
		router.Put("/employees/{id}", handler.UpdateEmployee)
		router.Delete("/employees/{id}", handler.DeleteEmployee)
	})

	createEmployee := func(name, email string, departmentID int64) employee.EmployeeResponse {
		payload := fmt.Sprintf(
			`{"name":%q,"email":%q,"role":"employee","department_id":%d,"joining_date":"2024-01-15"}`,
			name, email, departmentID)
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(payload))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusCreated))

		var resp employee.EmployeeResponse
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		return resp
	}

	It("should create an employee via POST /employees", func() {
		resp := createEmployee("Jane Doe", "jane@example.com", 1)

		Expect(resp.ID).To(BeNumerically(">", 0))
		Expect(resp.JoiningDate).To(Equal("2024-01-15"))
	})

	It("should return 400 for a duplicate email", func() {
		createEmployee("Jane Doe", "jane@example.com", 1)

		payload := `{"name":"Other","email":"jane@example.com","role":"employee","department_id":2,"joining_date":"2024-02-01"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(payload))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("Duplicate employee email"))
	})

	It("should return 400 for a missing joining date", func() {
		payload := `{"name":"Jane","email":"jane@example.com","role":"employee","department_id":1}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(payload))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	Describe("GET /employees", func() {
		BeforeEach(func() {
			createEmployee("Alice Smith", "alice@example.com", 1)
			createEmployee("Bob Jones", "bob@example.com", 2)
			createEmployee("Carol Smith", "carol@other.org", 1)
		})

		It("should list all employees", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp []employee.EmployeeResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp).To(HaveLen(3))
		})

		It("should apply the search query parameter", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees?search=smith", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			var resp []employee.EmployeeResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp).To(HaveLen(2))
		})

		It("should apply the department_id query parameter", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees?department_id=2", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			var resp []employee.EmployeeResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp).To(HaveLen(1))
			Expect(resp[0].Name).To(Equal("Bob Jones"))
		})

		It("should combine both query parameters", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees?search=smith&department_id=1", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			var resp []employee.EmployeeResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp).To(HaveLen(2))
		})

		It("should return 400 for a non-numeric department_id", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees?department_id=abc", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /employees/unlinked-users", func() {
		BeforeEach(func() {
			users := []*userDatamodel.User{
				{Email: "free@example.com", PasswordHash: "x", Role: auth.RoleEmployee},
				{Email: "taken@example.com", PasswordHash: "x", Role: auth.RoleEmployee},
			}
			for _, u := range users {
				Expect(db.Create(u).Error).NotTo(HaveOccurred())
			}

			var taken userDatamodel.User
			Expect(db.Where("email = ?", "taken@example.com").First(&taken).Error).NotTo(HaveOccurred())

			payload := fmt.Sprintf(
				`{"name":"Linked","email":"linked@example.com","role":"employee","department_id":1,"user_id":%d,"joining_date":"2024-01-15"}`,
				taken.ID)
			req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(payload))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusCreated))
		})

		It("should list only credentials without a profile", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees/unlinked-users", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp []employee.UnlinkedUserResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp).To(HaveLen(1))
			Expect(resp[0].Email).To(Equal("free@example.com"))
		})
	})

	Describe("PUT /employees/{id}", func() {
		It("should update an existing employee", func() {
			created := createEmployee("Jane Doe", "jane@example.com", 1)

			payload := `{"name":"Jane Updated","email":"jane@example.com","role":"HR","department_id":3,"joining_date":"2024-01-15"}`
			req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/employees/%d", created.ID), strings.NewReader(payload))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Jane Updated"))
		})

		It("should return 404 for a missing employee", func() {
			payload := `{"name":"Ghost","email":"ghost@example.com","role":"employee","department_id":1,"joining_date":"2024-01-15"}`
			req := httptest.NewRequest(http.MethodPut, "/employees/999", strings.NewReader(payload))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(ContainSubstring("Employee not found"))
		})
	})

	Describe("DELETE /employees/{id}", func() {
		It("should delete an existing employee", func() {
			created := createEmployee("Jane Doe", "jane@example.com", 1)

			req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/employees/%d", created.ID), nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNoContent))
		})

		It("should return 404 for a missing employee", func() {
			req := httptest.NewRequest(http.MethodDelete, "/employees/999", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
