package service

import (
	"errors"
	"sort"

	"github.com/openschool/volunteer-hub/database"
	"github.com/openschool/volunteer-hub/database/model"
	"github.com/openschool/volunteer-hub/util/crypto"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords, deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPendingApproval    = errors.New("account is pending approval")
	ErrRoleMismatch       = errors.New("account role does not match this login page")
	ErrUsernameTaken      = errors.New("username already exists")
)

// UserService implements signup, login checks and the admin account
// workflow on top of the users document.
type UserService struct{}

// Authenticate verifies the credentials against the stored bcrypt hash
// and enforces the login rules: pending accounts cannot log in even
// with correct credentials, and the stored role must match the login
// page the request came from.
func (s *UserService) Authenticate(username, password, portalRole string) (*model.User, error) {
	users := database.GetStore().LoadUsers()

	user, ok := users[username]
	if !ok || !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if user.Status == model.StatusPending {
		return nil, ErrPendingApproval
	}
	if user.Role != portalRole {
		return nil, ErrRoleMismatch
	}
	return &user, nil
}

// Register creates a new account. Students are approved immediately,
// teacher and admin accounts start pending until an admin decides.
// A taken username leaves the existing record untouched.
func (s *UserService) Register(username, password, role string) error {
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	status := model.StatusPending
	if role == model.RoleStudent {
		status = model.StatusApproved
	}

	return database.GetStore().UpdateUsers(func(users model.Users) error {
		if _, exists := users[username]; exists {
			return ErrUsernameTaken
		}
		users[username] = model.User{
			PasswordHash: hash,
			Role:         role,
			Status:       status,
		}
		return nil
	})
}

// UserView is one row of the flattened user list the admin dashboard
// renders.
type UserView struct {
	Username string
	Role     string
	Status   string
}

// AllUsers returns every account as a flattened list sorted by
// username. The on-disk document is a map, so sorting keeps the view
// stable across requests.
func (s *UserService) AllUsers() []UserView {
	users := database.GetStore().LoadUsers()

	views := make([]UserView, 0, len(users))
	for username, user := range users {
		views = append(views, UserView{
			Username: username,
			Role:     user.Role,
			Status:   user.Status,
		})
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].Username < views[j].Username
	})
	return views
}

// PendingByRole returns the sorted usernames of pending accounts with
// the given role.
func (s *UserService) PendingByRole(role string) []string {
	users := database.GetStore().LoadUsers()

	var pending []string
	for username, user := range users {
		if user.Role == role && user.Status == model.StatusPending {
			pending = append(pending, username)
		}
	}
	sort.Strings(pending)
	return pending
}

// Approve marks the account approved if it exists and holds the given
// role. Anything else is a no-op.
func (s *UserService) Approve(username, role string) error {
	return database.GetStore().UpdateUsers(func(users model.Users) error {
		user, ok := users[username]
		if !ok || user.Role != role {
			return nil
		}
		user.Status = model.StatusApproved
		users[username] = user
		return nil
	})
}

// Reject deletes the account if it exists and holds the given role.
// Anything else is a no-op.
func (s *UserService) Reject(username, role string) error {
	return database.GetStore().UpdateUsers(func(users model.Users) error {
		user, ok := users[username]
		if !ok || user.Role != role {
			return nil
		}
		delete(users, username)
		return nil
	})
}
