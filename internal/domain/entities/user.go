package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole classifies a user account
type UserRole string

const (
	UserRoleClient     UserRole = "client"
	UserRoleApplicant  UserRole = "applicant"
	UserRoleSpecialist UserRole = "specialist"
	UserRoleAdmin      UserRole = "admin"
)

// User represents a platform user. Applicants are created by the
// intake workflow; promotion to specialist happens through the
// approval workflow.
type User struct {
	ID             uuid.UUID   `json:"id"`
	Email          string      `json:"email"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	PasswordHash   string      `json:"-"`
	Role           UserRole    `json:"role"`
	Status         bool        `json:"status"`
	PhoneNumber    null.String `json:"phone_number,omitempty"`
	DocumentNumber null.String `json:"document_number,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// LoginInput is the credential pair supplied on /auth/cliente
type LoginInput struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ClientProfile is the response payload for a successful client login
type ClientProfile struct {
	ID             uuid.UUID   `json:"id"`
	Email          string      `json:"email"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	Role           UserRole    `json:"role"`
	PhoneNumber    null.String `json:"phone_number"`
	DocumentNumber null.String `json:"document_number"`
	AccessToken    string      `json:"access_token,omitempty"`
	SessionID      string      `json:"session_id,omitempty"`
}

// AdminUser is the row returned by the admin user listing
type AdminUser struct {
	ID             uuid.UUID   `json:"id"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	Email          string      `json:"email"`
	Status         bool        `json:"status"`
	Role           UserRole    `json:"role"`
	PhoneNumber    null.String `json:"phone_number"`
	DocumentNumber null.String `json:"document_number"`
}
