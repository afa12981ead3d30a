package domain

import "time"

// Volunteer is an individual who logs hours or gives donations.
type Volunteer struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// VolunteerSummary is a volunteer with totals aggregated from their
// cost entries.
type VolunteerSummary struct {
	Volunteer
	TotalHours     float64 `json:"total_hours"`
	TotalDonations float64 `json:"total_donations"`
	EventCount     int     `json:"event_count"`
}

// VolunteerEntry is a cost entry annotated with the event it belongs to,
// as shown on a volunteer's history.
type VolunteerEntry struct {
	CostEntry
	EventName string    `json:"event_name"`
	EventDate time.Time `json:"event_date"`
}

// VolunteerDetail is a volunteer with their full entry history and
// lifetime totals.
type VolunteerDetail struct {
	Volunteer
	Entries        []VolunteerEntry `json:"entries"`
	TotalHours     float64          `json:"total_hours"`
	TotalDonations float64          `json:"total_donations"`
}
