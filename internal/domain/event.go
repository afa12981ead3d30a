package domain

import "time"

// Event is a single community activity tracked financially. TotalIncome,
// TotalExpense and NetProfit are derived from the event's cost entries and
// recomputed whenever the entries change; Quarter ("YYYYQn") and Year are
// derived from Date.
type Event struct {
	ID                   uint      `json:"id"`
	Name                 string    `json:"event_name"`
	Date                 time.Time `json:"event_date"`
	EventTypeID          *uint     `json:"event_type_id,omitempty"`
	EventTypeName        string    `json:"event_type_name,omitempty"`
	OrganizationID       *uint     `json:"organization_id,omitempty"`
	OrganizationName     string    `json:"organization_name,omitempty"`
	LensCategoryID       *uint     `json:"lens_category_id,omitempty"`
	LensSubcategoryID    *uint     `json:"lens_subcategory_id,omitempty"`
	Location             string    `json:"location"`
	Description          string    `json:"description"`
	CoordinatorName      string    `json:"coordinator_name"`
	CoordinatorPhone     string    `json:"coordinator_phone"`
	CoordinatorEmail     string    `json:"coordinator_email"`
	ExpectedParticipants int       `json:"expected_participants"`
	ActualParticipants   int       `json:"actual_participants"`
	TotalIncome          float64   `json:"total_income"`
	TotalExpense         float64   `json:"total_expense"`
	NetProfit            float64   `json:"net_profit"`
	Notes                string    `json:"notes"`
	Status               string    `json:"status"`
	Quarter              string    `json:"quarter"`
	Year                 int       `json:"year"`
	EntryDate            time.Time `json:"entry_date"`
}

// DefaultStatus is a conventional default, not an enforced enumeration.
const DefaultStatus = "In Progress"

// StampPeriod derives Quarter and Year from the event date.
func (e *Event) StampPeriod() {
	e.Quarter, e.Year, _ = QuarterOf(e.Date)
}

// CostEntry is one expense or income line item belonging to an event.
// CostTypeName, VolunteerName and VolunteerContact are snapshots taken at
// creation and deliberately not kept in sync with later renames, so that
// historical reports stay stable.
type CostEntry struct {
	ID               uint      `json:"id"`
	EventID          uint      `json:"event_id"`
	CostTypeID       *uint     `json:"cost_type_id,omitempty"`
	CostTypeName     string    `json:"cost_type_name"`
	Description      string    `json:"description"`
	Hours            float64   `json:"hours"`
	RatePerHour      float64   `json:"rate_per_hour"`
	Amount           float64   `json:"amount"`
	VolunteerID      *uint     `json:"volunteer_id,omitempty"`
	VolunteerName    string    `json:"volunteer_name"`
	VolunteerContact string    `json:"volunteer_contact"`
	IsIncome         bool      `json:"is_income"`
	CreatedAt        time.Time `json:"created_at"`
}

// DeriveAmount sets Amount to Hours x RatePerHour when both are positive;
// otherwise the amount given on input stands.
func (c *CostEntry) DeriveAmount() {
	if c.Hours > 0 && c.RatePerHour > 0 {
		c.Amount = c.Hours * c.RatePerHour
	}
}

// EventDetail is an event with everything its detail page shows: the raw
// cost entries, the expense and income breakdowns grouped by cost type
// name, and the profit distributions.
type EventDetail struct {
	Event         Event                `json:"event"`
	CostEntries   []CostEntry          `json:"cost_entries"`
	Expenses      []CostBreakdown      `json:"expenses"`
	Income        []CostBreakdown      `json:"income"`
	Distributions []ProfitDistribution `json:"distributions"`
}

// ProfitDistribution allocates a share of an event's net profit to a named
// recipient. Amount is computed from the event's net profit at creation time
// and is not adjusted when the event's totals later change.
type ProfitDistribution struct {
	ID                   uint    `json:"id"`
	EventID              uint    `json:"event_id"`
	TargetType           string  `json:"target_type"`
	TargetName           string  `json:"target_name"`
	TargetOrganizationID *uint   `json:"target_organization_id,omitempty"`
	Percentage           float64 `json:"percentage"`
	Amount               float64 `json:"amount"`
	Notes                string  `json:"notes"`
}
