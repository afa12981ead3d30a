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

func newDashboardFixture(t *testing.T) (*service.DashboardService, *service.EventService, *service.OrganizationService, *repository.CatalogRepository) {
	t.Helper()

	db := newTestDB(t)
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	orgRepo := repository.NewOrganizationRepository(dao.NewOrganizationDAO(db))

	eventSvc := service.NewEventService(eventRepo, catalogRepo)
	orgSvc := service.NewOrganizationService(orgRepo)
	dashSvc := service.NewDashboardService(eventRepo, orgRepo)

	return dashSvc, eventSvc, orgSvc, catalogRepo
}

func TestDashboardOverview_ToDate(t *testing.T) {
	dashSvc, eventSvc, orgSvc, catalogRepo := newDashboardFixture(t)
	ctx := context.Background()

	org, err := orgSvc.CreateOrganization(ctx, domain.Organization{Name: "Rotary Club"})
	require.NoError(t, err)

	event, err := eventSvc.CreateEvent(ctx, domain.Event{
		Name:           "Book Sale",
		Date:           date(2024, time.May, 18),
		OrganizationID: &org.ID,
	})
	require.NoError(t, err)

	laborID := costTypeID(t, catalogRepo, "Labor")
	_, err = eventSvc.AddCostEntry(ctx, domain.CostEntry{
		EventID:    event.ID,
		CostTypeID: &laborID,
		Hours:      4,
	}, nil)
	require.NoError(t, err)
	_, err = eventSvc.AddCostEntry(ctx, domain.CostEntry{
		EventID:  event.ID,
		Amount:   90,
		IsIncome: true,
	}, nil)
	require.NoError(t, err)

	dashboard, err := dashSvc.Overview(ctx, "", 0, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.PeriodToDate, dashboard.Period)
	assert.Equal(t, 1, dashboard.Summary.EventCount)
	// 4 hours at the Labor default rate of 15.
	assert.Equal(t, 60.0, dashboard.Summary.LaborValue)
	assert.Equal(t, 90.0, dashboard.Summary.Income)
	assert.Equal(t, 60.0, dashboard.Summary.Expense)
	assert.Equal(t, 30.0, dashboard.NetProfit)
	require.Len(t, dashboard.RecentEvents, 1)
	assert.Equal(t, "Rotary Club", dashboard.RecentEvents[0].OrganizationName)
	require.Len(t, dashboard.Organizations, 1)
	assert.Contains(t, dashboard.Years, 2024)
}

func TestDashboardOverview_QuarterFilter(t *testing.T) {
	dashSvc, eventSvc, _, _ := newDashboardFixture(t)
	ctx := context.Background()

	q2, err := eventSvc.CreateEvent(ctx, domain.Event{Name: "Plant Sale", Date: date(2024, time.April, 20)})
	require.NoError(t, err)
	_, err = eventSvc.CreateEvent(ctx, domain.Event{Name: "Toy Drive", Date: date(2024, time.December, 7)})
	require.NoError(t, err)

	_, err = eventSvc.AddCostEntry(ctx, domain.CostEntry{EventID: q2.ID, Amount: 75, IsIncome: true}, nil)
	require.NoError(t, err)

	dashboard, err := dashSvc.Overview(ctx, domain.PeriodQuarterly, 2024, 2, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, dashboard.Summary.EventCount)
	assert.Equal(t, 75.0, dashboard.Summary.Income)
	require.Len(t, dashboard.RecentEvents, 1)
	assert.Equal(t, "Plant Sale", dashboard.RecentEvents[0].Name)
}

func TestDashboardOverview_OrganizationFilter(t *testing.T) {
	dashSvc, eventSvc, orgSvc, _ := newDashboardFixture(t)
	ctx := context.Background()

	org, err := orgSvc.CreateOrganization(ctx, domain.Organization{Name: "Lions Club"})
	require.NoError(t, err)

	_, err = eventSvc.CreateEvent(ctx, domain.Event{Name: "Pancake Breakfast", Date: date(2024, time.March, 9), OrganizationID: &org.ID})
	require.NoError(t, err)
	_, err = eventSvc.CreateEvent(ctx, domain.Event{Name: "Unaffiliated Meetup", Date: date(2024, time.March, 16)})
	require.NoError(t, err)

	dashboard, err := dashSvc.Overview(ctx, "", 0, 0, &org.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, dashboard.Summary.EventCount)
	require.Len(t, dashboard.RecentEvents, 1)
	assert.Equal(t, "Pancake Breakfast", dashboard.RecentEvents[0].Name)
}
