package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"recruithub/config"
	"recruithub/internal/core"
	"recruithub/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRoleGuardRouter(t *testing.T, principal *core.Principal, required ...core.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf := &config.Configuration{}
	trace, err := telemetry.NewTrace(conf)
	require.NoError(t, err)

	recovery := NewRecovery(zap.NewNop(), conf)
	roleGuard := NewRoleGuard(trace)

	router := gin.New()
	router.Use(recovery.ErrorHandler())
	router.GET("/guarded",
		func(c *gin.Context) {
			if principal != nil {
				c.Set(core.ContextPrincipalKey, *principal)
			}
			c.Next()
		},
		roleGuard.Require(required...),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		},
	)
	return router
}

func TestRoleGuard_AllowsMatchingRole(t *testing.T) {
	router := newRoleGuardRouter(t, &core.Principal{UserID: "u1", Role: core.RoleHR}, core.RoleAdmin, core.RoleHR)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleGuard_RejectsWrongRole(t *testing.T) {
	router := newRoleGuardRouter(t, &core.Principal{UserID: "u1", Role: core.RoleHR}, core.RoleAdmin)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleGuard_RejectsMissingPrincipal(t *testing.T) {
	router := newRoleGuardRouter(t, nil, core.RoleAdmin)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
