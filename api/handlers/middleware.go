package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"worqely/internal/i18n"
	"worqely/internal/models"
	"worqely/internal/services"
)

const (
	SessionCookie = "worqely_session"
	SessionHeader = "X-Session-ID"

	sessionKey = "session"
	langKey    = "lang"
)

// Locale resolves the response language from ?lang= or Accept-Language.
func Locale(translator *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := translator.Resolve(c.Query("lang"), c.GetHeader("Accept-Language"))
		c.Set(langKey, lang)
		c.Header("Content-Language", lang)
		c.Next()
	}
}

// RequireSession aborts with 401 unless the request carries a live session.
// The cookie is tried first, then the X-Session-ID header.
func RequireSession(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokens := sessionTokens(c)
		if len(tokens) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			return
		}
		for _, token := range tokens {
			if session, err := sessions.Current(token); err == nil {
				c.Set(sessionKey, session)
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please login again"})
	}
}

// RequireUserType must run after RequireSession.
func RequireUserType(types ...models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := currentSession(c)
		for _, t := range types {
			if session != nil && session.User.Type == t {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not allowed for this account type"})
	}
}

func sessionTokens(c *gin.Context) []string {
	var tokens []string
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		tokens = append(tokens, token)
	}
	if token := c.GetHeader(SessionHeader); token != "" {
		tokens = append(tokens, token)
	}
	return tokens
}

// sessionToken is the token of the session resolved by RequireSession.
func sessionToken(c *gin.Context) string {
	if session := currentSession(c); session != nil {
		return session.Token
	}
	return ""
}

func currentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*models.Session)
	return session
}

// currentLang is the language chosen by Locale, or the translator's
// configured fallback when Locale did not run.
func currentLang(c *gin.Context, translator *i18n.Translator) string {
	if lang := c.GetString(langKey); lang != "" {
		return lang
	}
	return translator.Fallback()
}

// respondError maps service errors to status codes.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrLineNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrUnknownCategory),
		errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrEmptyCart):
		status = http.StatusConflict
	case errors.Is(err, services.ErrSessionNotFound):
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
