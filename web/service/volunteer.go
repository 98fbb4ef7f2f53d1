package service

import (
	"github.com/openschool/volunteer-hub/database"
	"github.com/openschool/volunteer-hub/database/model"

	"github.com/google/uuid"
)

// VolunteerService implements submission and the teacher decision
// workflow on top of the volunteers document.
type VolunteerService struct{}

// All returns every volunteer record in insertion order.
func (s *VolunteerService) All() []model.VolunteerRecord {
	return database.GetStore().LoadVolunteers()
}

// Pending returns all pending records across students, in insertion
// order.
func (s *VolunteerService) Pending() []model.VolunteerRecord {
	var pending []model.VolunteerRecord
	for _, record := range database.GetStore().LoadVolunteers() {
		if record.Status == model.StatusPending {
			pending = append(pending, record)
		}
	}
	return pending
}

// ForStudent partitions the student's own records into pending and
// approved. Rejected records are neither returned nor surfaced
// anywhere in the student view.
func (s *VolunteerService) ForStudent(username string) (pending, approved []model.VolunteerRecord) {
	for _, record := range database.GetStore().LoadVolunteers() {
		if record.Student != username {
			continue
		}
		switch record.Status {
		case model.StatusPending:
			pending = append(pending, record)
		case model.StatusApproved:
			approved = append(approved, record)
		}
	}
	return pending, approved
}

// Submit appends a new pending record for the student and returns it.
// Hours is stored verbatim, it is not parsed as a number.
func (s *VolunteerService) Submit(student, activity, hours, description string) (model.VolunteerRecord, error) {
	record := model.VolunteerRecord{
		Id:          uuid.NewString(),
		Student:     student,
		Activity:    activity,
		Hours:       hours,
		Description: description,
		Status:      model.StatusPending,
	}

	err := database.GetStore().UpdateVolunteers(func(records []model.VolunteerRecord) ([]model.VolunteerRecord, error) {
		return append(records, record), nil
	})
	if err != nil {
		return model.VolunteerRecord{}, err
	}
	return record, nil
}

// SetStatus sets the status of the record with the given id. An
// unknown id is a no-op. Re-deciding an already decided record simply
// overwrites the status.
func (s *VolunteerService) SetStatus(id, status string) error {
	return database.GetStore().UpdateVolunteers(func(records []model.VolunteerRecord) ([]model.VolunteerRecord, error) {
		for i := range records {
			if records[i].Id == id {
				records[i].Status = status
				break
			}
		}
		return records, nil
	})
}
