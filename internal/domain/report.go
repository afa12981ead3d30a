package domain

// Summary holds the dashboard aggregates for a date range. LaborValue sums
// hours x rate over entries whose snapshotted cost type name is exactly
// "Labor"; net profit is income minus expense, computed by the caller.
type Summary struct {
	EventCount int     `json:"total_events"`
	LaborValue float64 `json:"total_labor_value"`
	Income     float64 `json:"total_income"`
	Expense    float64 `json:"total_expense"`
}

// ReportScope selects the events a report covers: a specific quarter label,
// a specific year, or (both zero) all records.
type ReportScope struct {
	Quarter string
	Year    int
}

// All reports whether the scope covers every record.
func (s ReportScope) All() bool {
	return s.Quarter == "" && s.Year == 0
}

// TypeBreakdown is one report row per distinct event type. Events without a
// type group under a nil name.
type TypeBreakdown struct {
	EventTypeName *string `json:"event_type_name"`
	Count         int     `json:"count"`
	Participants  int     `json:"participants"`
	NetProfit     float64 `json:"net_profit"`
}

// CostBreakdown is one report row per distinct cost type name among
// expense entries.
type CostBreakdown struct {
	CostTypeName string  `json:"cost_type_name"`
	Amount       float64 `json:"total"`
	Hours        float64 `json:"total_hours"`
}

// ReportMeta lists the periods a report can be generated for, taken from
// the quarters and years that actually hold events.
type ReportMeta struct {
	Quarters []string `json:"quarters"`
	Years    []int    `json:"years"`
}

// Report is the full period report.
type Report struct {
	Title             string          `json:"title"`
	Events            []Event         `json:"events"`
	EventCount        int             `json:"total_events"`
	TotalIncome       float64         `json:"total_income"`
	TotalExpense      float64         `json:"total_expense"`
	NetProfit         float64         `json:"net_profit"`
	TotalParticipants int             `json:"total_participants"`
	ByEventType       []TypeBreakdown `json:"by_type"`
	CostBreakdown     []CostBreakdown `json:"cost_breakdown"`
}

// Dashboard is the landing-page payload: aggregates for the selected
// period plus the lists the filter controls are built from.
type Dashboard struct {
	Period        string         `json:"period"`
	Year          int            `json:"year,omitempty"`
	Quarter       int            `json:"quarter,omitempty"`
	Summary       Summary        `json:"summary"`
	NetProfit     float64        `json:"net_profit"`
	RecentEvents  []Event        `json:"recent_events"`
	Organizations []Organization `json:"organizations"`
	Years         []int          `json:"years"`
}
