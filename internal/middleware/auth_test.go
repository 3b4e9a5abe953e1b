package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alencarrgabriel/GeradorRecibos/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func adminRouter(claims *middleware.JWTClaims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin",
		func(c *gin.Context) { c.Set(middleware.ClaimsKey, claims) },
		middleware.RequireAdmin(),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func TestRequireAdminPermiteAdmin(t *testing.T) {
	r := adminRouter(&middleware.JWTClaims{UserID: "1", Username: "chefe", IsAdmin: true})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminRejeitaNaoAdmin(t *testing.T) {
	r := adminRouter(&middleware.JWTClaims{UserID: "2", Username: "operador"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
