package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"miniattic-api/internal/service"
)

type stubVerifier struct {
	viewer service.Viewer
	err    error
	got    string
}

func (s *stubVerifier) Verify(token string) (service.Viewer, error) {
	s.got = token
	return s.viewer, s.err
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(zap.NewNop()), RequestLogger(zap.NewNop()))
	r.GET("/x", append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, ViewerFrom(c).Account)
	})...)
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	return r
}

func serve(r *gin.Engine, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	v := &stubVerifier{viewer: service.Viewer{Account: "u1", Role: service.RoleCustomer}}
	r := newEngine(AuthMiddleware(v, zap.NewNop()))

	rec := serve(r, "/x", "Bearer tok")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())
	assert.Equal(t, "tok", v.got)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	// Sin prefijo también se acepta
	serve(r, "/x", "raw-token")
	assert.Equal(t, "raw-token", v.got)
}

func TestAuthMiddlewareErrors(t *testing.T) {
	rec := serve(newEngine(AuthMiddleware(&stubVerifier{err: service.ErrAuthExpired}, zap.NewNop())), "/x", "Bearer t")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(newEngine(AuthMiddleware(&stubVerifier{viewer: service.Viewer{Account: "x"}}, zap.NewNop())), "/x", "Bearer t")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoleGuards(t *testing.T) {
	tests := []struct {
		role      service.Role
		admin     int
		staffOnly int
	}{
		{service.RoleCustomer, http.StatusForbidden, http.StatusForbidden},
		{service.RoleEditor, http.StatusForbidden, http.StatusOK},
		{service.RoleAdmin, http.StatusOK, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			auth := AuthMiddleware(&stubVerifier{viewer: service.Viewer{Account: "a", Role: tt.role}}, zap.NewNop())

			assert.Equal(t, tt.admin, serve(newEngine(auth, AdminOnly()), "/x", "Bearer t").Code)
			assert.Equal(t, tt.staffOnly, serve(newEngine(auth, StaffOnly()), "/x", "Bearer t").Code)
		})
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	r := newEngine()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
}

func TestRecovery(t *testing.T) {
	rec := serve(newEngine(), "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"伺服器錯誤"}`, rec.Body.String())
}
