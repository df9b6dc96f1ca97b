package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worqely/internal/i18n"
	"worqely/internal/models"
	"worqely/internal/services"
)

func testContext(t *testing.T, req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestCurrentLang_UsesConfiguredFallback(t *testing.T) {
	translator, err := i18n.New("hi")
	require.NoError(t, err)
	c, _ := testContext(t, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "hi", currentLang(c, translator))

	c.Set(langKey, "ta")
	assert.Equal(t, "ta", currentLang(c, translator))
}

func TestSessionTokens_CookieThenHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "from-cookie"})
	req.Header.Set(SessionHeader, "from-header")
	c, _ := testContext(t, req)

	assert.Equal(t, []string{"from-cookie", "from-header"}, sessionTokens(c))
}

func TestRequireSession_SkipsStaleCookie(t *testing.T) {
	sessions := services.NewSessionService(services.NewCartService())
	session, err := sessions.Login(models.LoginRequest{Type: models.UserTypeCustomer, Mobile: "1"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "expired"})
	req.Header.Set(SessionHeader, session.Token)
	c, w := testContext(t, req)

	RequireSession(sessions)(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, session.Token, sessionToken(c))
}

func TestRequireSession_RejectsUnknownTokens(t *testing.T) {
	sessions := services.NewSessionService(services.NewCartService())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, "unknown")
	c, w := testContext(t, req)

	RequireSession(sessions)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, sessionToken(c))
}
