package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate-cms/helper"
	"estate-cms/logger"
	"estate-cms/models"
	"estate-cms/services"
	"estate-cms/testutil"
)

var testCookie = SessionCookie{Name: "token"}

func newTestRouter(t *testing.T) (*gin.Engine, services.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := helper.NewHTTPHelper(logger.Nop())
	tokens := services.NewTokenService([]byte(testutil.JWTSecret), time.Hour)
	guard := NewGuard(tokens, testCookie, APIResponder{Helper: h}, HeaderCarrier{}, CookieCarrier{Cookie: testCookie})
	policy := NewPolicy(APIAccess, guard)

	router := gin.New()
	handler := func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok, "user_id": identity.UserID})
	}
	projects := router.Group("/api/projects", policy.Authorize("projects"))
	projects.GET("", handler)
	projects.POST("", handler)
	router.GET("/api/settings", policy.Authorize("settings"), handler)
	return router, tokens
}

func issue(t *testing.T, tokens services.TokenService, role models.UserRole) string {
	t.Helper()
	token, _, err := tokens.Issue(&models.User{ID: 7, Role: role})
	require.NoError(t, err)
	return token
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func codeType(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	s, _ := body["code_type"].(string)
	return s
}

func TestGuardWithoutTokenIsUnauthorized(t *testing.T) {
	router, _ := newTestRouter(t)

	w := serve(router, httptest.NewRequest(http.MethodPost, "/api/projects", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, models.CodeUnauthorized, codeType(t, w))
}

func TestGuardInvalidTokenIsForbiddenAndClearsCookie(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "not-a-token"})
	w := serve(router, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, models.CodeInvalidToken, codeType(t, w))
	cleared := w.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, "token", cleared[0].Name)
	assert.True(t, cleared[0].MaxAge < 0)
}

func TestGuardNonAdminIsForbidden(t *testing.T) {
	router, tokens := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, tokens, models.RoleEditor))
	w := serve(router, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, models.CodeForbidden, codeType(t, w))
	assert.Empty(t, w.Result().Cookies())
}

func TestGuardAdmitsAdminFromEitherCarrier(t *testing.T) {
	router, tokens := newTestRouter(t)
	token := issue(t, tokens, models.RoleAdmin)

	byHeader := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	byHeader.Header.Set("Authorization", "Bearer "+token)
	byCookie := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	byCookie.AddCookie(&http.Cookie{Name: "token", Value: token})

	for _, req := range []*http.Request{byHeader, byCookie} {
		w := serve(router, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authenticated":true,"user_id":7}`, w.Body.String())
	}
}

func TestGuardPrefersHeaderOverCookie(t *testing.T) {
	router, tokens := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	req.AddCookie(&http.Cookie{Name: "token", Value: issue(t, tokens, models.RoleAdmin)})

	assert.Equal(t, http.StatusForbidden, serve(router, req).Code)
}

func TestPublicReadsSkipTheGuard(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Authorization", "Bearer malformed")
	w := serve(router, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":false,"user_id":0}`, w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}

func TestAccessTableDefaultsToAdminOnly(t *testing.T) {
	assert.Equal(t, Public, APIAccess.Lookup("projects", http.MethodGet))
	assert.Equal(t, Public, APIAccess.Lookup("pages", http.MethodHead))
	assert.Equal(t, AdminOnly, APIAccess.Lookup("projects", http.MethodPatch))
	assert.Equal(t, AdminOnly, APIAccess.Lookup("media", http.MethodGet))
	assert.Equal(t, AdminOnly, APIAccess.Lookup("unknown", http.MethodGet))
}

func TestHeaderCarrier(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := HeaderCarrier{}.Token(c)
	assert.False(t, ok)

	c.Request.Header.Set("Authorization", "Basic abc")
	_, ok = HeaderCarrier{}.Token(c)
	assert.False(t, ok)

	c.Request.Header.Set("Authorization", "bearer abc")
	token, ok := HeaderCarrier{}.Token(c)
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
}
