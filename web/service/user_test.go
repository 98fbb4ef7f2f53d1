package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openschool/volunteer-hub/database"
	"github.com/openschool/volunteer-hub/database/model"
	"github.com/openschool/volunteer-hub/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("VH_LOG_FOLDER", filepath.Join(os.TempDir(), "volunteer-hub-test"))
	logger.InitLogger(logging.ERROR)
	os.Exit(m.Run())
}

func setup(t *testing.T) {
	t.Helper()
	require.NoError(t, database.InitStore(t.TempDir()))
}

func TestRegisterStatusByRole(t *testing.T) {
	setup(t)
	service := UserService{}

	tests := []struct {
		username string
		role     string
		expected string
	}{
		{"newstudent", model.RoleStudent, model.StatusApproved},
		{"newteacher", model.RoleTeacher, model.StatusPending},
		{"newadmin", model.RoleAdmin, model.StatusPending},
	}

	for _, tc := range tests {
		t.Run(tc.role, func(t *testing.T) {
			require.NoError(t, service.Register(tc.username, "secret", tc.role))

			user, ok := database.GetStore().LoadUsers()[tc.username]
			require.True(t, ok)
			assert.Equal(t, tc.role, user.Role)
			assert.Equal(t, tc.expected, user.Status)
			assert.NotEqual(t, "secret", user.PasswordHash)
		})
	}
}

func TestRegisterDuplicateLeavesRecordUntouched(t *testing.T) {
	setup(t)
	service := UserService{}

	before := database.GetStore().LoadUsers()["student1"]

	err := service.Register("student1", "other", model.RoleTeacher)
	require.ErrorIs(t, err, ErrUsernameTaken)

	assert.Equal(t, before, database.GetStore().LoadUsers()["student1"])
}

func TestAuthenticate(t *testing.T) {
	setup(t)
	service := UserService{}

	tests := []struct {
		name     string
		username string
		password string
		portal   string
		wantErr  error
	}{
		{"admin ok", "admin", "admin123", model.RoleAdmin, nil},
		{"student ok", "student1", "pass123", model.RoleStudent, nil},
		{"wrong password", "admin", "nope", model.RoleAdmin, ErrInvalidCredentials},
		{"unknown user", "nobody", "admin123", model.RoleAdmin, ErrInvalidCredentials},
		{"pending beats correct credentials", "teacher1", "teach123", model.RoleTeacher, ErrPendingApproval},
		{"wrong login page", "student1", "pass123", model.RoleTeacher, ErrRoleMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user, err := service.Authenticate(tc.username, tc.password, tc.portal)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.portal, user.Role)
		})
	}
}

func TestApproveAccount(t *testing.T) {
	setup(t)
	service := UserService{}

	require.NoError(t, service.Approve("teacher1", model.RoleTeacher))
	assert.Equal(t, model.StatusApproved, database.GetStore().LoadUsers()["teacher1"].Status)

	// pending check no longer blocks the login
	_, err := service.Authenticate("teacher1", "teach123", model.RoleTeacher)
	assert.NoError(t, err)
}

func TestApproveRoleMismatchIsNoOp(t *testing.T) {
	setup(t)
	service := UserService{}

	require.NoError(t, service.Approve("teacher1", model.RoleStudent))
	assert.Equal(t, model.StatusPending, database.GetStore().LoadUsers()["teacher1"].Status)
}

func TestRejectDeletesExactlyThatAccount(t *testing.T) {
	setup(t)
	service := UserService{}

	require.NoError(t, service.Reject("teacher1", model.RoleTeacher))

	users := database.GetStore().LoadUsers()
	assert.NotContains(t, users, "teacher1")
	assert.Contains(t, users, "admin")
	assert.Contains(t, users, "student1")
}

func TestRejectUnknownUserIsNoOp(t *testing.T) {
	setup(t)
	service := UserService{}

	require.NoError(t, service.Reject("nobody", model.RoleStudent))
	assert.Len(t, database.GetStore().LoadUsers(), 3)
}

func TestPendingByRole(t *testing.T) {
	setup(t)
	service := UserService{}

	require.NoError(t, service.Register("zz_teacher", "x", model.RoleTeacher))
	require.NoError(t, service.Register("aa_teacher", "x", model.RoleTeacher))
	require.NoError(t, service.Register("pending_student", "x", model.RoleStudent))

	assert.Equal(t, []string{"aa_teacher", "teacher1", "zz_teacher"}, service.PendingByRole(model.RoleTeacher))
	// students are auto-approved at signup
	assert.Empty(t, service.PendingByRole(model.RoleStudent))
}

func TestAllUsersIsSortedAndFlattened(t *testing.T) {
	setup(t)
	service := UserService{}

	views := service.AllUsers()
	require.Len(t, views, 3)
	assert.Equal(t, "admin", views[0].Username)
	assert.Equal(t, "student1", views[1].Username)
	assert.Equal(t, "teacher1", views[2].Username)
	assert.Equal(t, model.StatusPending, views[2].Status)
}
