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

// seedReportData creates two Q2 events and one Q3 event in 2024, plus one
// event in 2023, with enough entries to exercise totals and breakdowns.
func seedReportData(t *testing.T) (*service.ReportService, *service.EventService) {
	t.Helper()

	db := newTestDB(t)
	repo := repository.NewEventRepository(dao.NewEventDAO(db))
	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(db))
	eventSvc := service.NewEventService(repo, catalogRepo)
	reportSvc := service.NewReportService(repo)

	ctx := context.Background()

	fair, err := eventSvc.CreateEvent(ctx, domain.Event{Name: "Spring Fair", Date: date(2024, time.April, 6), ActualParticipants: 120})
	require.NoError(t, err)
	cleanup, err := eventSvc.CreateEvent(ctx, domain.Event{Name: "Creek Cleanup", Date: date(2024, time.May, 11), ActualParticipants: 30})
	require.NoError(t, err)
	_, err = eventSvc.CreateEvent(ctx, domain.Event{Name: "Harvest Dinner", Date: date(2024, time.September, 21), ActualParticipants: 80})
	require.NoError(t, err)
	_, err = eventSvc.CreateEvent(ctx, domain.Event{Name: "Winter Coat Drive", Date: date(2023, time.December, 2), ActualParticipants: 15})
	require.NoError(t, err)

	_, err = eventSvc.AddCostEntry(ctx, domain.CostEntry{EventID: fair.ID, Amount: 500, IsIncome: true}, nil)
	require.NoError(t, err)
	_, err = eventSvc.AddCostEntry(ctx, domain.CostEntry{EventID: fair.ID, Amount: 200}, nil)
	require.NoError(t, err)
	_, err = eventSvc.AddCostEntry(ctx, domain.CostEntry{EventID: cleanup.ID, Amount: 50}, nil)
	require.NoError(t, err)

	return reportSvc, eventSvc
}

func TestReportMeta(t *testing.T) {
	svc, _ := seedReportData(t)

	meta, err := svc.Meta(context.Background())
	require.NoError(t, err)

	assert.Contains(t, meta.Quarters, "2024Q2")
	assert.Contains(t, meta.Quarters, "2024Q3")
	assert.Contains(t, meta.Quarters, "2023Q4")
	assert.Contains(t, meta.Years, 2024)
	assert.Contains(t, meta.Years, 2023)
}

func TestGenerateReport_Quarterly(t *testing.T) {
	svc, _ := seedReportData(t)

	report, err := svc.Generate(context.Background(), "quarterly", "2024Q2", 0)
	require.NoError(t, err)

	assert.Equal(t, "2024Q2 Report", report.Title)
	assert.Equal(t, 2, report.EventCount)
	assert.Len(t, report.Events, 2)
	assert.Equal(t, 500.0, report.TotalIncome)
	assert.Equal(t, 250.0, report.TotalExpense)
	assert.Equal(t, 250.0, report.NetProfit)
	assert.Equal(t, 150, report.TotalParticipants)

	// Untyped events bucket under a nil event type name.
	require.Len(t, report.ByEventType, 1)
	assert.Nil(t, report.ByEventType[0].EventTypeName)
	assert.Equal(t, 2, report.ByEventType[0].Count)

	require.Len(t, report.CostBreakdown, 1)
	assert.Equal(t, "Other", report.CostBreakdown[0].CostTypeName)
	assert.Equal(t, 250.0, report.CostBreakdown[0].Amount)
}

func TestGenerateReport_Annual(t *testing.T) {
	svc, _ := seedReportData(t)

	report, err := svc.Generate(context.Background(), "annual", "", 2024)
	require.NoError(t, err)

	assert.Equal(t, "2024 Annual Report", report.Title)
	assert.Equal(t, 3, report.EventCount)
	assert.Equal(t, 250.0, report.NetProfit)
}

func TestGenerateReport_AllTime(t *testing.T) {
	svc, _ := seedReportData(t)

	report, err := svc.Generate(context.Background(), "all_time", "", 0)
	require.NoError(t, err)

	assert.Equal(t, "All Time Report", report.Title)
	assert.Equal(t, 4, report.EventCount)
	assert.Equal(t, 245, report.TotalParticipants)
}

func TestGenerateReport_EmptyScope(t *testing.T) {
	svc, _ := seedReportData(t)

	report, err := svc.Generate(context.Background(), "quarterly", "2019Q1", 0)
	require.NoError(t, err)

	assert.Equal(t, "2019Q1 Report", report.Title)
	assert.Zero(t, report.EventCount)
	assert.Empty(t, report.Events)
	assert.Zero(t, report.NetProfit)
}
