package auth

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	internal "github.com/frahmantamala/hr-management/internal"
	coreuser "github.com/frahmantamala/hr-management/internal/core/user"
	"github.com/frahmantamala/hr-management/internal/transport"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = ginkgo.Describe("Auth Handler", func() {
	var (
		handler  *Handler
		service  *Service
		mockRepo *mockUserRepository
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen := NewJWTTokenGenerator("test-secret-key-at-least-32-chars!!", 24*time.Hour)
		service = NewService(mockRepo, tokenGen, bcrypt.MinCost)
		handler = NewHandler(service)
	})

	ginkgo.Describe("Login", func() {
		ginkgo.It("should return 200 with token for valid credentials", func() {
			body := strings.NewReader(`{"email":"employee@example.com","password":"correct_password"}`)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring(`"token"`))
		})

		ginkgo.It("should return 401 for wrong password", func() {
			body := strings.NewReader(`{"email":"employee@example.com","password":"wrong"}`)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("invalid credentials"))
		})

		ginkgo.It("should return 401 for unknown email with the same message", func() {
			body := strings.NewReader(`{"email":"ghost@example.com","password":"whatever"}`)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("invalid credentials"))
		})

		ginkgo.It("should return 400 for a malformed body", func() {
			body := strings.NewReader(`{not json`)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("Signup", func() {
		ginkgo.It("should return 201 and ignore any submitted role", func() {
			body := strings.NewReader(`{"email":"new@example.com","password":"secret123","role":"admin"}`)
			req := httptest.NewRequest(http.MethodPost, "/auth/signup", body)
			w := httptest.NewRecorder()

			handler.Signup(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring(`"role":"employee"`))
		})

		ginkgo.It("should return 400 for a duplicate email", func() {
			body := strings.NewReader(`{"email":"employee@example.com","password":"secret123"}`)
			req := httptest.NewRequest(http.MethodPost, "/auth/signup", body)
			w := httptest.NewRecorder()

			handler.Signup(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("already registered"))
		})

		ginkgo.It("should return 400 for a short password", func() {
			body := strings.NewReader(`{"email":"new@example.com","password":"abc"}`)
			req := httptest.NewRequest(http.MethodPost, "/auth/signup", body)
			w := httptest.NewRecorder()

			handler.Signup(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("CreateUser", func() {
		ginkgo.It("should return 201 with the created credential", func() {
			body := strings.NewReader(`{"email":"newhr@example.com","password":"secret123","role":"HR"}`)
			req := httptest.NewRequest(http.MethodPost, "/auth/create-user", body)
			w := httptest.NewRecorder()

			handler.CreateUser(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring(`"user"`))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring(`"role":"HR"`))
		})

		ginkgo.It("should return 400 for role employee", func() {
			body := strings.NewReader(`{"email":"x@example.com","password":"secret123","role":"employee"}`)
			req := httptest.NewRequest(http.MethodPost, "/auth/create-user", body)
			w := httptest.NewRecorder()

			handler.CreateUser(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("AuthMiddleware", func() {
		var (
			next      http.Handler
			seenUser  *coreuser.User
			nextCalls int
		)

		ginkgo.BeforeEach(func() {
			nextCalls = 0
			seenUser = nil
			next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalls++
				if u, ok := internal.UserFromContext(r.Context()); ok {
					seenUser = u
				}
				w.WriteHeader(http.StatusOK)
			})
		})

		ginkgo.It("should return 401 when the header is missing", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
			w := httptest.NewRecorder()

			handler.AuthMiddleware(next).ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(nextCalls).To(gomega.Equal(0))
		})

		ginkgo.It("should return 401 for a garbage token", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
			req.Header.Set("Authorization", "Bearer garbage")
			w := httptest.NewRecorder()

			handler.AuthMiddleware(next).ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("invalid token"))
		})

		ginkgo.It("should return 401 with a dedicated message for an expired token", func() {
			expiredGen := NewJWTTokenGenerator("test-secret-key-at-least-32-chars!!", -time.Hour)
			token, err := expiredGen.GenerateToken("1", "employee@example.com", RoleEmployee)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			handler.AuthMiddleware(next).ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("token expired"))
		})

		ginkgo.It("should attach the identity from claims and call next", func() {
			resp, err := service.Authenticate(LoginDTO{Email: "hr@example.com", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
			req.Header.Set("Authorization", "Bearer "+resp.Token)
			w := httptest.NewRecorder()

			handler.AuthMiddleware(next).ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(nextCalls).To(gomega.Equal(1))
			gomega.Expect(seenUser).ToNot(gomega.BeNil())
			gomega.Expect(seenUser.ID).To(gomega.Equal(int64(2)))
			gomega.Expect(seenUser.Email).To(gomega.Equal("hr@example.com"))
			gomega.Expect(seenUser.Role).To(gomega.Equal(RoleHR))
		})
	})
})

var _ = ginkgo.Describe("RoleAuthorization", func() {
	var (
		roleAuth  *RoleAuthorization
		next      http.Handler
		nextCalls int
	)

	withUser := func(req *http.Request, role string) *http.Request {
		user := &coreuser.User{ID: 1, Email: "someone@example.com", Role: role}
		return req.WithContext(internal.ContextWithUser(req.Context(), user))
	}

	ginkgo.BeforeEach(func() {
		lg := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		roleAuth = NewRoleAuthorization(transport.NewBaseHandler(lg), lg)
		nextCalls = 0
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalls++
			w.WriteHeader(http.StatusOK)
		})
	})

	ginkgo.Describe("RequireManage", func() {
		ginkgo.It("should return 401 when no user is in context", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/departments", nil)
			w := httptest.NewRecorder()

			roleAuth.RequireManage()(next).ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(nextCalls).To(gomega.Equal(0))
		})

		ginkgo.It("should return 403 for an employee", func() {
			req := withUser(httptest.NewRequest(http.MethodPost, "/api/departments", nil), RoleEmployee)
			w := httptest.NewRecorder()

			roleAuth.RequireManage()(next).ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("insufficient role"))
		})

		ginkgo.It("should pass HR through", func() {
			req := withUser(httptest.NewRequest(http.MethodPost, "/api/departments", nil), RoleHR)
			w := httptest.NewRecorder()

			roleAuth.RequireManage()(next).ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(nextCalls).To(gomega.Equal(1))
		})

		ginkgo.It("should pass admin through", func() {
			req := withUser(httptest.NewRequest(http.MethodPost, "/api/departments", nil), RoleAdmin)
			w := httptest.NewRecorder()

			roleAuth.RequireManage()(next).ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
		})
	})

	ginkgo.Describe("RequireAdmin", func() {
		ginkgo.It("should return 403 for HR", func() {
			req := withUser(httptest.NewRequest(http.MethodPost, "/auth/create-user", nil), RoleHR)
			w := httptest.NewRecorder()

			roleAuth.RequireAdmin()(next).ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))
			gomega.Expect(nextCalls).To(gomega.Equal(0))
		})

		ginkgo.It("should pass admin through", func() {
			req := withUser(httptest.NewRequest(http.MethodPost, "/auth/create-user", nil), RoleAdmin)
			w := httptest.NewRecorder()

			roleAuth.RequireAdmin()(next).ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
		})
	})
})
