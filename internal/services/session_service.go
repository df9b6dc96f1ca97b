package services

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"worqely/internal/models"
)

// SessionService issues session tokens for trusted users. Login and signup do
// no identity verification: the submitted details become the user record.
type SessionService struct {
	mu          sync.RWMutex
	sessions    map[string]*models.Session // token -> session
	cartService *CartService
}

func NewSessionService(cartService *CartService) *SessionService {
	return &SessionService{
		sessions:    make(map[string]*models.Session),
		cartService: cartService,
	}
}

// LandingPage maps a user type to the page shown after login.
func LandingPage(t models.UserType) models.Page {
	switch t {
	case models.UserTypeCustomer:
		return models.PageCustomerDashboard
	case models.UserTypeWorker:
		return models.PageWorkerDashboard
	case models.UserTypeAdmin:
		return models.PageAdminPanel
	default:
		return models.PageHome
	}
}

func (s *SessionService) Login(req models.LoginRequest) (*models.Session, error) {
	mobile := strings.TrimSpace(req.Mobile)
	if req.Type == "" || mobile == "" {
		return nil, fmt.Errorf("%w: type and mobile are required", ErrInvalidCredentials)
	}

	name := strings.TrimSpace(req.FullName)
	if name == "" {
		name = defaultName(req.Type)
	}

	user := &models.User{
		ID:            uuid.NewString(),
		FullName:      name,
		Mobile:        mobile,
		Type:          req.Type,
		AadhaarNumber: req.AadhaarNumber,
		CreatedAt:     time.Now(),
	}
	return s.open(user), nil
}

func (s *SessionService) Signup(req models.SignupRequest) (*models.Session, error) {
	name := strings.TrimSpace(req.FullName)
	mobile := strings.TrimSpace(req.Mobile)
	if req.Type == "" || name == "" || mobile == "" {
		return nil, fmt.Errorf("%w: type, full name and mobile are required", ErrInvalidCredentials)
	}

	signupMethod := req.SignupMethod
	if signupMethod == "" {
		signupMethod = "self"
	}

	user := &models.User{
		ID:            uuid.NewString(),
		FullName:      name,
		Email:         req.Email,
		Mobile:        mobile,
		Type:          req.Type,
		AadhaarNumber: req.AadhaarNumber,
		Address:       req.Address,
		DateOfBirth:   req.DateOfBirth,
		SignupMethod:  signupMethod,
		CreatedAt:     time.Now(),
	}
	if req.Type == models.UserTypeWorker {
		user.WorkCategory = req.WorkCategory
		user.Experience = req.Experience
		user.ShiftType = req.ShiftType
		user.HourlyRate = req.HourlyRate
		user.Skills = req.Skills
		user.Availability = "available"
	}
	return s.open(user), nil
}

// Current returns the session for token.
func (s *SessionService) Current(token string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[token]
	if !exists {
		return nil, ErrSessionNotFound
	}
	c := *session
	return &c, nil
}

// Logout ends the session and drops its cart. The client returns home.
func (s *SessionService) Logout(token string) (models.Page, error) {
	s.mu.Lock()
	_, exists := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()

	if !exists {
		return models.PageHome, ErrSessionNotFound
	}
	s.cartService.Reset(token)
	log.Printf("SessionService.Logout - session closed")
	return models.PageHome, nil
}

func (s *SessionService) open(user *models.User) *models.Session {
	session := &models.Session{
		Token:       uuid.NewString(),
		User:        user,
		LandingPage: LandingPage(user.Type),
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	log.Printf("SessionService - %s %s signed in, landing on %s", user.Type, user.ID, session.LandingPage)
	c := *session
	return &c
}

func defaultName(t models.UserType) string {
	switch t {
	case models.UserTypeWorker:
		return "Worker"
	case models.UserTypeAdmin:
		return "Admin"
	default:
		return "Customer"
	}
}
