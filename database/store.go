// Package database persists the two JSON documents of volunteer-hub:
// the users document (map of username to account) and the volunteers
// document (ordered array of submitted activities). Each document is
// written as a whole; mutation goes through update closures so there is
// exactly one writer per document at a time.
package database

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/openschool/volunteer-hub/database/model"
	"github.com/openschool/volunteer-hub/logger"
	"github.com/openschool/volunteer-hub/util/crypto"

	"github.com/goccy/go-json"
)

const (
	usersFileName      = "users.json"
	volunteersFileName = "volunteers.json"
)

var store *Store

// Store holds both documents under a single folder.
type Store struct {
	folder string

	usersMu      sync.Mutex
	volunteersMu sync.Mutex
}

// InitStore creates the data folder, seeds missing documents and makes
// the store available through GetStore.
func InitStore(folder string) error {
	if err := os.MkdirAll(folder, 0o750); err != nil {
		return err
	}
	s := &Store{folder: folder}
	if err := s.seed(); err != nil {
		return err
	}
	store = s
	return nil
}

// GetStore returns the store initialized by InitStore.
func GetStore() *Store {
	return store
}

// UsersPath returns the path of the users document.
func (s *Store) UsersPath() string {
	return filepath.Join(s.folder, usersFileName)
}

// VolunteersPath returns the path of the volunteers document.
func (s *Store) VolunteersPath() string {
	return filepath.Join(s.folder, volunteersFileName)
}

// seed writes the default documents for any backing file that does not
// exist yet. The users document starts with three well-known accounts,
// the volunteers document starts empty.
func (s *Store) seed() error {
	if _, err := os.Stat(s.UsersPath()); os.IsNotExist(err) {
		users, err := defaultUsers()
		if err != nil {
			return err
		}
		if err := writeDocument(s.UsersPath(), users); err != nil {
			return err
		}
		logger.Info("seeded users document with default accounts")
	}
	if _, err := os.Stat(s.VolunteersPath()); os.IsNotExist(err) {
		if err := writeDocument(s.VolunteersPath(), []model.VolunteerRecord{}); err != nil {
			return err
		}
	}
	return nil
}

func defaultUsers() (model.Users, error) {
	seeds := []struct {
		username string
		password string
		role     string
		status   string
	}{
		{"admin", "admin123", model.RoleAdmin, model.StatusApproved},
		{"student1", "pass123", model.RoleStudent, model.StatusApproved},
		{"teacher1", "teach123", model.RoleTeacher, model.StatusPending},
	}

	users := make(model.Users, len(seeds))
	for _, seed := range seeds {
		hash, err := crypto.HashPasswordAsBcrypt(seed.password)
		if err != nil {
			return nil, err
		}
		users[seed.username] = model.User{
			PasswordHash: hash,
			Role:         seed.role,
			Status:       seed.status,
		}
	}
	return users, nil
}

// LoadUsers returns the current users document. A missing or malformed
// document yields an empty map.
func (s *Store) LoadUsers() model.Users {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	return s.readUsers()
}

// UpdateUsers runs fn against the current users document and persists
// the result. If fn returns an error nothing is written.
func (s *Store) UpdateUsers(fn func(users model.Users) error) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users := s.readUsers()
	if err := fn(users); err != nil {
		return err
	}
	return writeDocument(s.UsersPath(), users)
}

// LoadVolunteers returns the current volunteers document in insertion
// order. A missing or malformed document yields an empty slice.
func (s *Store) LoadVolunteers() []model.VolunteerRecord {
	s.volunteersMu.Lock()
	defer s.volunteersMu.Unlock()
	return s.readVolunteers()
}

// UpdateVolunteers runs fn against the current volunteers document and
// persists the slice fn returns. If fn returns an error nothing is
// written.
func (s *Store) UpdateVolunteers(fn func(records []model.VolunteerRecord) ([]model.VolunteerRecord, error)) error {
	s.volunteersMu.Lock()
	defer s.volunteersMu.Unlock()

	records, err := fn(s.readVolunteers())
	if err != nil {
		return err
	}
	return writeDocument(s.VolunteersPath(), records)
}

func (s *Store) readUsers() model.Users {
	data, err := os.ReadFile(s.UsersPath())
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warning("read users document:", err)
		}
		return model.Users{}
	}

	var users model.Users
	if err := json.Unmarshal(data, &users); err != nil {
		logger.Warningf("malformed users document %s, starting empty: %v", s.UsersPath(), err)
		return model.Users{}
	}
	if users == nil {
		users = model.Users{}
	}
	return users
}

func (s *Store) readVolunteers() []model.VolunteerRecord {
	data, err := os.ReadFile(s.VolunteersPath())
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warning("read volunteers document:", err)
		}
		return []model.VolunteerRecord{}
	}

	var records []model.VolunteerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warningf("malformed volunteers document %s, starting empty: %v", s.VolunteersPath(), err)
		return []model.VolunteerRecord{}
	}
	if records == nil {
		records = []model.VolunteerRecord{}
	}
	return records
}

// writeDocument serializes v and replaces the target file atomically,
// so readers never observe a half-written document.
func writeDocument(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o640); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
