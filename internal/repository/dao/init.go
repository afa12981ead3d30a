package dao

import (
	"errors"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// InitTables migrates the schema and seeds the reference data the
// application ships with. Seeding is idempotent; existing rows are left
// untouched.
func InitTables(db *gorm.DB) error {
	err := db.AutoMigrate(
		&EventType{},
		&Organization{},
		&Volunteer{},
		&CostType{},
		&LensCategory{},
		&LensSubcategory{},
		&EventProfile{},
		&CostEntry{},
		&ProfitDistribution{},
	)
	if err != nil {
		return err
	}

	return seedDefaults(db)
}

func seedDefaults(db *gorm.DB) error {
	defaultEventTypes := []EventType{
		{Name: "School", Description: "School related activities"},
		{Name: "Church", Description: "Church related activities"},
		{Name: "Community", Description: "Community related activities"},
		{Name: "Other", Description: "Other activities"},
	}
	for _, et := range defaultEventTypes {
		if err := db.Where(EventType{Name: et.Name}).FirstOrCreate(&et).Error; err != nil {
			return err
		}
	}

	defaultCostTypes := []CostType{
		{Name: "Labor", DefaultRate: 15.00, Description: "Volunteer labor hours"},
		{Name: "Facility", DefaultRate: 25.00, Description: "Facility rental/usage"},
		{Name: "In-Kind", Description: "In-kind donations"},
		{Name: "Donations", Description: "Cash donations received"},
		{Name: "Food", Description: "Food costs"},
		{Name: "Supply", Description: "Supply costs"},
		{Name: "Other", Description: "Other costs"},
	}
	for _, ct := range defaultCostTypes {
		if err := db.Where(CostType{Name: ct.Name}).FirstOrCreate(&ct).Error; err != nil {
			return err
		}
	}

	lensTaxonomy := []struct {
		category      string
		subcategories []string
	}{
		{"CALENDAR", []string{"Event", "Event - Heartness", "School"}},
		{"ACCOUNTABILITY", []string{"Observation Budget", "Issues - Community", "Education", "Land Use / Development", "Environment", "Judiciary", "Safety", "Taxes", "Public Policy"}},
		{"COMMUNICATIONS", []string{"Application - Medical", "Application - Dental", "Effectiveness", "Lens Stats", "Content"}},
		{"FELLOWSHIP", []string{"Advocacy", "Announcements", "Entertainment", "Events", "Recognition", "Statistics"}},
		{"SERVICE", []string{"Community Needs (Religion)", "Social Programs", "Statistics", "Celebrations", "Lectures", "Meetings", "Sports hosting fishing too", "Calendar"}},
		{"LEADERSHIP", []string{"Contacts", "Neighborhoods", "Education", "Licensing", "Permits", "Zoning", "Landscaping", "AI", "Broadband", "Elections / neighborhood", "Public Engagement", "Regional Policies / Initiatives"}},
		{"VIABILITY", []string{"Qshere", "e-Commerce", "Real Estate", "Employment", "Apprenticeships", "Internships", "Gig Work", "History", "Workforce", "Wearing / Animal Audit", "Community Coordinating System", "Organizational Chart"}},
	}
	for _, entry := range lensTaxonomy {
		category := LensCategory{Name: entry.category}
		if err := db.Where(LensCategory{Name: entry.category}).FirstOrCreate(&category).Error; err != nil {
			return err
		}
		for _, name := range entry.subcategories {
			sub := LensSubcategory{CategoryID: category.ID, Name: name}
			err := db.Where(LensSubcategory{CategoryID: category.ID, Name: name}).FirstOrCreate(&sub).Error
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// isUniqueViolation reports whether err is a sqlite unique-constraint
// failure. Only this failure maps to the user-facing "already exists"
// message; anything else propagates untouched.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}
