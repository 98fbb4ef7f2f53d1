package service

import (
	"os"
	"testing"

	"github.com/openschool/volunteer-hub/database"
	"github.com/openschool/volunteer-hub/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitStartsPending(t *testing.T) {
	setup(t)
	service := VolunteerService{}

	record, err := service.Submit("student1", "Beach Cleanup", "3", "Cleaned shoreline")
	require.NoError(t, err)
	assert.NotEmpty(t, record.Id)
	assert.Equal(t, model.StatusPending, record.Status)

	pending, approved := service.ForStudent("student1")
	require.Len(t, pending, 1)
	assert.Equal(t, "Beach Cleanup", pending[0].Activity)
	assert.Empty(t, approved)

	// visible to teachers across students
	require.Len(t, service.Pending(), 1)
	assert.Equal(t, record.Id, service.Pending()[0].Id)
}

func TestForStudentFiltersByUsername(t *testing.T) {
	setup(t)
	service := VolunteerService{}

	_, err := service.Submit("student1", "Beach Cleanup", "3", "Cleaned shoreline")
	require.NoError(t, err)
	_, err = service.Submit("student2", "Food Drive", "2", "Sorted donations")
	require.NoError(t, err)

	pending, _ := service.ForStudent("student1")
	require.Len(t, pending, 1)
	assert.Equal(t, "student1", pending[0].Student)

	assert.Len(t, service.All(), 2)
}

func TestSetStatusMutatesOnlyTargetRecord(t *testing.T) {
	setup(t)
	service := VolunteerService{}

	first, err := service.Submit("student1", "Beach Cleanup", "3", "Cleaned shoreline")
	require.NoError(t, err)
	second, err := service.Submit("student1", "Food Drive", "2", "Sorted donations")
	require.NoError(t, err)

	require.NoError(t, service.SetStatus(second.Id, model.StatusApproved))

	records := service.All()
	require.Len(t, records, 2)
	assert.Equal(t, model.StatusPending, records[0].Status)
	assert.Equal(t, model.StatusApproved, records[1].Status)

	// only the status field changed
	second.Status = model.StatusApproved
	assert.Equal(t, first, records[0])
	assert.Equal(t, second, records[1])
}

func TestSetStatusUnknownIdLeavesDocumentUnchanged(t *testing.T) {
	setup(t)
	service := VolunteerService{}

	_, err := service.Submit("student1", "Beach Cleanup", "3", "Cleaned shoreline")
	require.NoError(t, err)

	path := database.GetStore().VolunteersPath()
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, service.SetStatus("no-such-id", model.StatusApproved))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDecisionOverwriteIsIdempotent(t *testing.T) {
	setup(t)
	service := VolunteerService{}

	record, err := service.Submit("student1", "Beach Cleanup", "3", "Cleaned shoreline")
	require.NoError(t, err)

	require.NoError(t, service.SetStatus(record.Id, model.StatusApproved))
	require.NoError(t, service.SetStatus(record.Id, model.StatusRejected))

	records := service.All()
	require.Len(t, records, 1)
	assert.Equal(t, model.StatusRejected, records[0].Status)
}

func TestRejectedRecordsHiddenFromStudent(t *testing.T) {
	setup(t)
	service := VolunteerService{}

	record, err := service.Submit("student1", "Beach Cleanup", "3", "Cleaned shoreline")
	require.NoError(t, err)
	require.NoError(t, service.SetStatus(record.Id, model.StatusRejected))

	pending, approved := service.ForStudent("student1")
	assert.Empty(t, pending)
	assert.Empty(t, approved)

	// still present in the full list
	assert.Len(t, service.All(), 1)
}
