package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worqely/internal/models"
	"worqely/internal/services"
)

const sessionMaxAge = 24 * 60 * 60

type SessionHandler struct {
	sessionService *services.SessionService
	cartService    *services.CartService
}

func NewSessionHandler(sessionService *services.SessionService, cartService *services.CartService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		cartService:    cartService,
	}
}

// POST /api/session/login
func (h *SessionHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.start(c, http.StatusOK, session)
}

// POST /api/session/signup
func (h *SessionHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.Signup(req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.start(c, http.StatusCreated, session)
}

// GET /api/session
func (h *SessionHandler) Me(c *gin.Context) {
	session := currentSession(c)

	c.JSON(http.StatusOK, gin.H{
		"data":       session,
		"cart_count": h.cartService.ItemCount(session.Token),
	})
}

// DELETE /api/session
func (h *SessionHandler) Logout(c *gin.Context) {
	page, err := h.sessionService.Logout(currentSession(c).Token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message":      "Logged out",
		"landing_page": page,
	})
}

func (h *SessionHandler) start(c *gin.Context, status int, session *models.Session) {
	c.SetCookie(SessionCookie, session.Token, sessionMaxAge, "/", "", false, true)
	c.JSON(status, gin.H{
		"data": session,
	})
}
