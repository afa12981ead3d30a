package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitylens/ledger/internal/domain"
	"github.com/communitylens/ledger/internal/repository"
	"github.com/communitylens/ledger/internal/repository/dao"
	"github.com/communitylens/ledger/internal/service"
)

func newVolunteerFixture(t *testing.T) (*service.VolunteerService, *service.EventService, *repository.CatalogRepository) {
	t.Helper()

	db := newTestDB(t)
	volunteerRepo := repository.NewVolunteerRepository(dao.NewVolunteerDAO(db))
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))

	return service.NewVolunteerService(volunteerRepo), service.NewEventService(eventRepo, catalogRepo), catalogRepo
}

func TestVolunteerDetail_AggregatesHoursAndDonations(t *testing.T) {
	volunteerSvc, eventSvc, catalogRepo := newVolunteerFixture(t)
	ctx := context.Background()

	volunteer, err := volunteerSvc.CreateVolunteer(ctx, domain.Volunteer{Name: "Pat Jones", Phone: "555-0101"})
	require.NoError(t, err)

	event, err := eventSvc.CreateEvent(ctx, domain.Event{Name: "Park Cleanup", Date: date(2024, time.June, 15)})
	require.NoError(t, err)

	laborID := costTypeID(t, catalogRepo, "Labor")
	_, err = eventSvc.AddCostEntry(ctx, domain.CostEntry{
		EventID:       event.ID,
		CostTypeID:    &laborID,
		Hours:         5,
		VolunteerID:   &volunteer.ID,
		VolunteerName: volunteer.Name,
	}, nil)
	require.NoError(t, err)

	_, err = eventSvc.AddCostEntry(ctx, domain.CostEntry{
		EventID:       event.ID,
		Amount:        40,
		IsIncome:      true,
		VolunteerID:   &volunteer.ID,
		VolunteerName: volunteer.Name,
	}, nil)
	require.NoError(t, err)

	detail, err := volunteerSvc.GetVolunteerDetail(ctx, volunteer.ID)
	require.NoError(t, err)

	assert.Equal(t, 5.0, detail.TotalHours)
	assert.Equal(t, 40.0, detail.TotalDonations)
	require.Len(t, detail.Entries, 2)
	assert.Equal(t, "Park Cleanup", detail.Entries[0].EventName)

	summaries, err := volunteerSvc.ListVolunteers(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 5.0, summaries[0].TotalHours)
	assert.Equal(t, 40.0, summaries[0].TotalDonations)
	assert.Equal(t, 1, summaries[0].EventCount)
}

func TestDeleteVolunteer_PreservesEntrySnapshots(t *testing.T) {
	volunteerSvc, eventSvc, _ := newVolunteerFixture(t)
	ctx := context.Background()

	volunteer, err := volunteerSvc.CreateVolunteer(ctx, domain.Volunteer{Name: "Sam Lee"})
	require.NoError(t, err)

	event, err := eventSvc.CreateEvent(ctx, domain.Event{Name: "Blood Drive", Date: date(2024, time.August, 3)})
	require.NoError(t, err)

	entry, err := eventSvc.AddCostEntry(ctx, domain.CostEntry{
		EventID:          event.ID,
		Amount:           25,
		VolunteerID:      &volunteer.ID,
		VolunteerName:    "Sam Lee",
		VolunteerContact: "sam@example.com",
	}, nil)
	require.NoError(t, err)

	require.NoError(t, volunteerSvc.DeleteVolunteer(ctx, volunteer.ID))

	_, err = volunteerSvc.GetVolunteerDetail(ctx, volunteer.ID)
	assert.ErrorIs(t, err, service.ErrVolunteerNotFound)

	// The entry outlives the volunteer with its snapshots intact.
	detail, err := eventSvc.GetEventDetail(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, detail.CostEntries, 1)
	assert.Equal(t, entry.ID, detail.CostEntries[0].ID)
	assert.Nil(t, detail.CostEntries[0].VolunteerID)
	assert.Equal(t, "Sam Lee", detail.CostEntries[0].VolunteerName)
	assert.Equal(t, "sam@example.com", detail.CostEntries[0].VolunteerContact)
}
