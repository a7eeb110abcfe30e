package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-booking/models"
	"hotel-booking/utils"
)

func protectedRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetUint(ContextUserID),
			"role":   c.GetString(ContextRole),
		})
	})
	r.GET("/protected", chain...)
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := protectedRouter(RequireAuth())

	token, err := utils.GenerateToken(5, models.RoleCustomer, time.Hour)
	require.NoError(t, err)

	w := doGet(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"CUSTOMER"`)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r := protectedRouter(RequireAuth())

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_BadToken(t *testing.T) {
	r := protectedRouter(RequireAuth())

	w := doGet(r, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	r := protectedRouter(RequireAuth(), RequireRole(models.RoleAdmin))

	adminToken, err := utils.GenerateToken(1, models.RoleAdmin, time.Hour)
	require.NoError(t, err)
	customerToken, err := utils.GenerateToken(2, models.RoleCustomer, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doGet(r, adminToken).Code)
	assert.Equal(t, http.StatusForbidden, doGet(r, customerToken).Code)
}
