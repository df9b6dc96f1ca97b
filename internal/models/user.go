package models

import "time"

type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeWorker   UserType = "worker"
	UserTypeAdmin    UserType = "admin"
)

// Page names the client view a user lands on.
type Page string

const (
	PageHome              Page = "home"
	PageCustomerDashboard Page = "customer-dashboard"
	PageWorkerDashboard   Page = "worker-dashboard"
	PageAdminPanel        Page = "admin-panel"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Pincode string `json:"pincode"`
}

type User struct {
	ID            string   `json:"id"`
	FullName      string   `json:"full_name"`
	Email         string   `json:"email,omitempty"`
	Mobile        string   `json:"mobile"`
	Type          UserType `json:"type"`
	AadhaarNumber string   `json:"aadhaar_number"`
	ProfilePhoto  string   `json:"profile_photo,omitempty"`
	Address       *Address `json:"address,omitempty"`
	DateOfBirth   string   `json:"date_of_birth,omitempty"`
	SignupMethod  string   `json:"signup_method,omitempty"`

	// Worker profile
	WorkCategory string   `json:"work_category,omitempty"`
	Experience   string   `json:"experience,omitempty"`
	ShiftType    string   `json:"shift_type,omitempty"`
	IsPremium    bool     `json:"is_premium,omitempty"`
	HourlyRate   float64  `json:"hourly_rate,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Availability string   `json:"availability,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	Token       string    `json:"token"`
	User        *User     `json:"user"`
	LandingPage Page      `json:"landing_page"`
	CreatedAt   time.Time `json:"created_at"`
}

type LoginRequest struct {
	Type          UserType `json:"type" binding:"required,oneof=customer worker admin"`
	Mobile        string   `json:"mobile" binding:"required"`
	FullName      string   `json:"full_name"`
	AadhaarNumber string   `json:"aadhaar_number"`
}

type SignupRequest struct {
	Type          UserType `json:"type" binding:"required,oneof=customer worker"`
	FullName      string   `json:"full_name" binding:"required"`
	Mobile        string   `json:"mobile" binding:"required"`
	Email         string   `json:"email" binding:"omitempty,email"`
	AadhaarNumber string   `json:"aadhaar_number"`
	Address       *Address `json:"address"`
	DateOfBirth   string   `json:"date_of_birth"`
	SignupMethod  string   `json:"signup_method" binding:"omitempty,oneof=self cyber-cafe"`
	WorkCategory  string   `json:"work_category"`
	Experience    string   `json:"experience"`
	ShiftType     string   `json:"shift_type" binding:"omitempty,oneof=full-time half-time part-time task-based"`
	HourlyRate    float64  `json:"hourly_rate" binding:"gte=0"`
	Skills        []string `json:"skills"`
}
