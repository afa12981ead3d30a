package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/communitylens/ledger/internal/domain"
	"github.com/communitylens/ledger/internal/repository"
	"github.com/communitylens/ledger/internal/repository/dao"
	"github.com/communitylens/ledger/internal/service"
)

func newEventService(t *testing.T) (*service.EventService, *repository.CatalogRepository, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	repo := repository.NewEventRepository(dao.NewEventDAO(db))
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))

	return service.NewEventService(repo, catalogRepo), catalogRepo, db
}

func costTypeID(t *testing.T, catalogRepo *repository.CatalogRepository, name string) uint {
	t.Helper()

	types, err := catalogRepo.ListCostTypes(context.Background())
	require.NoError(t, err)

	for _, ct := range types {
		if ct.Name == name {
			return ct.ID
		}
	}

	t.Fatalf("cost type %q not seeded", name)
	return 0
}

func TestCreateEvent_StampsPeriodAndStatus(t *testing.T) {
	svc, _, _ := newEventService(t)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, domain.Event{
		Name: "Spring Cleanup",
		Date: date(2024, time.August, 15),
	})
	require.NoError(t, err)

	assert.Equal(t, "2024Q3", created.Quarter)
	assert.Equal(t, 2024, created.Year)
	assert.Equal(t, domain.DefaultStatus, created.Status)
	assert.NotZero(t, created.ID)
}

func TestAddCostEntry_DerivesAmountAndRecomputesTotals(t *testing.T) {
	svc, catalogRepo, _ := newEventService(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, domain.Event{Name: "Bake Sale", Date: date(2024, time.May, 4)})
	require.NoError(t, err)

	laborID := costTypeID(t, catalogRepo, "Labor")

	// 3 hours at the seeded Labor default rate of 15.
	entry, err := svc.AddCostEntry(ctx, domain.CostEntry{
		EventID:    event.ID,
		CostTypeID: &laborID,
		Hours:      3,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Labor", entry.CostTypeName)
	assert.Equal(t, 15.0, entry.RatePerHour)
	assert.Equal(t, 45.0, entry.Amount)

	donationsID := costTypeID(t, catalogRepo, "Donations")
	_, err = svc.AddCostEntry(ctx, domain.CostEntry{
		EventID:    event.ID,
		CostTypeID: &donationsID,
		Amount:     50,
		IsIncome:   true,
	}, nil)
	require.NoError(t, err)

	detail, err := svc.GetEventDetail(ctx, event.ID)
	require.NoError(t, err)

	assert.Equal(t, 50.0, detail.Event.TotalIncome)
	assert.Equal(t, 45.0, detail.Event.TotalExpense)
	assert.Equal(t, 5.0, detail.Event.NetProfit)
	assert.Len(t, detail.CostEntries, 2)
	assert.Len(t, detail.Expenses, 1)
	assert.Len(t, detail.Income, 1)
}

func TestAddCostEntry_ExplicitZeroRateKeepsAmount(t *testing.T) {
	svc, catalogRepo, _ := newEventService(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, domain.Event{Name: "Food Drive", Date: date(2024, time.June, 1)})
	require.NoError(t, err)

	laborID := costTypeID(t, catalogRepo, "Labor")

	// A zero rate submitted on purpose must not fall back to the default,
	// so the flat amount stands.
	entry, err := svc.AddCostEntry(ctx, domain.CostEntry{
		EventID:    event.ID,
		CostTypeID: &laborID,
		Hours:      3,
		Amount:     20,
	}, ptr(0.0))
	require.NoError(t, err)

	assert.Equal(t, 0.0, entry.RatePerHour)
	assert.Equal(t, 20.0, entry.Amount)
}

func TestAddCostEntry_MissingCostTypeSnapshotsOther(t *testing.T) {
	svc, _, _ := newEventService(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, domain.Event{Name: "Yard Sale", Date: date(2024, time.June, 8)})
	require.NoError(t, err)

	missing := uint(9999)
	entry, err := svc.AddCostEntry(ctx, domain.CostEntry{
		EventID:    event.ID,
		CostTypeID: &missing,
		Amount:     10,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Other", entry.CostTypeName)
	assert.Nil(t, entry.CostTypeID)
}

func TestAddCostEntry_EventNotFound(t *testing.T) {
	svc, _, _ := newEventService(t)

	_, err := svc.AddCostEntry(context.Background(), domain.CostEntry{EventID: 777, Amount: 5}, nil)
	assert.ErrorIs(t, err, service.ErrEventNotFound)
}

func TestDeleteCostEntry_RecomputesTotals(t *testing.T) {
	svc, _, _ := newEventService(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, domain.Event{Name: "Car Wash", Date: date(2024, time.July, 20)})
	require.NoError(t, err)

	entry, err := svc.AddCostEntry(ctx, domain.CostEntry{EventID: event.ID, Amount: 30}, nil)
	require.NoError(t, err)

	eventID, err := svc.DeleteCostEntry(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, eventID)

	detail, err := svc.GetEventDetail(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, detail.Event.TotalExpense)
	assert.Empty(t, detail.CostEntries)
}

func TestRecomputeEventTotals_Idempotent(t *testing.T) {
	svc, _, _ := newEventService(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, domain.Event{Name: "Raffle", Date: date(2024, time.March, 10)})
	require.NoError(t, err)

	_, err = svc.AddCostEntry(ctx, domain.CostEntry{EventID: event.ID, Amount: 100, IsIncome: true}, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		income, expense, err := svc.RecomputeEventTotals(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, 100.0, income)
		assert.Equal(t, 0.0, expense)
	}
}

func TestAddDistribution_SnapshotsAmount(t *testing.T) {
	svc, _, _ := newEventService(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, domain.Event{Name: "Gala", Date: date(2024, time.September, 14)})
	require.NoError(t, err)

	_, err = svc.AddCostEntry(ctx, domain.CostEntry{EventID: event.ID, Amount: 100, IsIncome: true}, nil)
	require.NoError(t, err)

	dist, err := svc.AddDistribution(ctx, domain.ProfitDistribution{
		EventID:    event.ID,
		TargetType: "organization",
		TargetName: "Food Bank",
		Percentage: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, dist.Amount)

	// Later income must not touch the recorded amount.
	_, err = svc.AddCostEntry(ctx, domain.CostEntry{EventID: event.ID, Amount: 300, IsIncome: true}, nil)
	require.NoError(t, err)

	detail, err := svc.GetEventDetail(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, detail.Distributions, 1)
	assert.Equal(t, 25.0, detail.Distributions[0].Amount)
	assert.Equal(t, 400.0, detail.Event.TotalIncome)
}

func TestDeleteDistribution(t *testing.T) {
	svc, _, _ := newEventService(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, domain.Event{Name: "Concert", Date: date(2024, time.October, 5)})
	require.NoError(t, err)

	dist, err := svc.AddDistribution(ctx, domain.ProfitDistribution{
		EventID:    event.ID,
		TargetName: "Scholarship Fund",
		Percentage: 10,
	})
	require.NoError(t, err)

	eventID, err := svc.DeleteDistribution(ctx, dist.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, eventID)

	_, err = svc.DeleteDistribution(ctx, dist.ID)
	assert.ErrorIs(t, err, service.ErrDistributionNotFound)
}

func TestDeleteEvent_CascadesEntriesAndDistributions(t *testing.T) {
	svc, _, db := newEventService(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, domain.Event{Name: "Picnic", Date: date(2024, time.July, 4)})
	require.NoError(t, err)

	entry, err := svc.AddCostEntry(ctx, domain.CostEntry{EventID: event.ID, Amount: 40}, nil)
	require.NoError(t, err)

	dist, err := svc.AddDistribution(ctx, domain.ProfitDistribution{
		EventID:    event.ID,
		TargetName: "Shelter",
		Percentage: 50,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(ctx, event.ID))

	_, err = svc.GetEventDetail(ctx, event.ID)
	assert.ErrorIs(t, err, service.ErrEventNotFound)

	var entryCount, distCount int64
	require.NoError(t, db.Model(&dao.CostEntry{}).Where("id = ?", entry.ID).Count(&entryCount).Error)
	require.NoError(t, db.Model(&dao.ProfitDistribution{}).Where("id = ?", dist.ID).Count(&distCount).Error)
	assert.Zero(t, entryCount)
	assert.Zero(t, distCount)
}

func TestUpdateEvent_RestampsPeriodAndKeepsTotals(t *testing.T) {
	svc, _, _ := newEventService(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, domain.Event{Name: "Walkathon", Date: date(2024, time.February, 3)})
	require.NoError(t, err)

	_, err = svc.AddCostEntry(ctx, domain.CostEntry{EventID: event.ID, Amount: 60, IsIncome: true}, nil)
	require.NoError(t, err)

	event.Name = "Fall Walkathon"
	event.Date = date(2024, time.November, 2)
	updated, err := svc.UpdateEvent(ctx, event)
	require.NoError(t, err)

	assert.Equal(t, "Fall Walkathon", updated.Name)
	assert.Equal(t, "2024Q4", updated.Quarter)
	assert.Equal(t, 60.0, updated.TotalIncome)
}
