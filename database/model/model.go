// Package model defines the persisted data structures of volunteer-hub.
package model

// Roles a user account can hold. The role is fixed at signup and never
// changes afterwards.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// Account and volunteer record statuses. A volunteer record is pending
// until a teacher decides it; approved and rejected are terminal.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// User is one entry of the users document, keyed by username.
type User struct {
	PasswordHash string `json:"password"`
	Role         string `json:"role"`
	Status       string `json:"status"`
}

// Users is the full users document.
type Users map[string]User

// VolunteerRecord is one submitted volunteer activity. Id is assigned
// at submission and is the only stable way to address a record. Hours
// is kept as free text, exactly as submitted.
type VolunteerRecord struct {
	Id          string `json:"id"`
	Student     string `json:"student"`
	Activity    string `json:"activity"`
	Hours       string `json:"hours"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
