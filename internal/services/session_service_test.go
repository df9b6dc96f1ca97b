package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worqely/internal/models"
)

func TestLandingPage(t *testing.T) {
	assert.Equal(t, models.PageCustomerDashboard, LandingPage(models.UserTypeCustomer))
	assert.Equal(t, models.PageWorkerDashboard, LandingPage(models.UserTypeWorker))
	assert.Equal(t, models.PageAdminPanel, LandingPage(models.UserTypeAdmin))
	assert.Equal(t, models.PageHome, LandingPage("guest"))
}

func TestSessionService_Login(t *testing.T) {
	s := NewSessionService(NewCartService())

	session, err := s.Login(models.LoginRequest{Type: models.UserTypeWorker, Mobile: " 9876543210 "})

	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.NotEmpty(t, session.User.ID)
	assert.Equal(t, "9876543210", session.User.Mobile)
	assert.Equal(t, "Worker", session.User.FullName)
	assert.Equal(t, models.PageWorkerDashboard, session.LandingPage)

	current, err := s.Current(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, current.User.ID)
}

func TestSessionService_Login_RequiresMobile(t *testing.T) {
	s := NewSessionService(NewCartService())

	_, err := s.Login(models.LoginRequest{Type: models.UserTypeCustomer})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionService_Signup(t *testing.T) {
	s := NewSessionService(NewCartService())

	session, err := s.Signup(models.SignupRequest{
		Type:         models.UserTypeWorker,
		FullName:     "Ramesh Kumar",
		Mobile:       "9000000001",
		WorkCategory: "electrical",
		ShiftType:    "full-time",
		HourlyRate:   250,
		Skills:       []string{"wiring"},
	})

	require.NoError(t, err)
	assert.Equal(t, "self", session.User.SignupMethod)
	assert.Equal(t, "electrical", session.User.WorkCategory)
	assert.Equal(t, "available", session.User.Availability)
	assert.Equal(t, models.PageWorkerDashboard, session.LandingPage)
}

func TestSessionService_Signup_CustomerIgnoresWorkerFields(t *testing.T) {
	s := NewSessionService(NewCartService())

	session, err := s.Signup(models.SignupRequest{
		Type:         models.UserTypeCustomer,
		FullName:     "Asha",
		Mobile:       "9000000002",
		SignupMethod: "cyber-cafe",
		WorkCategory: "plumbing",
	})

	require.NoError(t, err)
	assert.Empty(t, session.User.WorkCategory)
	assert.Equal(t, "cyber-cafe", session.User.SignupMethod)
	assert.Equal(t, models.PageCustomerDashboard, session.LandingPage)
}

func TestSessionService_Signup_RequiresName(t *testing.T) {
	s := NewSessionService(NewCartService())

	_, err := s.Signup(models.SignupRequest{Type: models.UserTypeCustomer, Mobile: "1"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionService_Logout_ResetsCart(t *testing.T) {
	carts := NewCartService()
	s := NewSessionService(carts)
	session, err := s.Login(models.LoginRequest{Type: models.UserTypeCustomer, Mobile: "1"})
	require.NoError(t, err)
	carts.AddItem(session.Token, product(t, "hammer-1"), models.ModePurchase, 0)

	page, err := s.Logout(session.Token)

	require.NoError(t, err)
	assert.Equal(t, models.PageHome, page)
	assert.Zero(t, carts.ItemCount(session.Token))
	_, err = s.Current(session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = s.Logout(session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
