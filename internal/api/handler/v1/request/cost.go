package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// AddCostEntryRequest records one expense or income line item.
// RatePerHour is a pointer so an omitted rate can fall back to the cost
// type's default while an explicit zero stays zero.
type AddCostEntryRequest struct {
	CostTypeID       *uint    `json:"cost_type_id"`
	Description      string   `json:"description"`
	Hours            float64  `json:"hours"`
	RatePerHour      *float64 `json:"rate_per_hour"`
	Amount           float64  `json:"amount"`
	VolunteerID      *uint    `json:"volunteer_id"`
	VolunteerName    string   `json:"volunteer_name"`
	VolunteerContact string   `json:"volunteer_contact"`
	IsIncome         bool     `json:"is_income"`
}

func (req *AddCostEntryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Hours, validation.Min(0.0)),
		validation.Field(&req.Amount, validation.Min(0.0)),
	)
}

type AddDistributionRequest struct {
	TargetType           string  `json:"target_type"`
	TargetName           string  `json:"target_name"`
	TargetOrganizationID *uint   `json:"target_organization_id"`
	Percentage           float64 `json:"percentage"`
	Notes                string  `json:"notes"`
}

func (req *AddDistributionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TargetName, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Percentage, validation.Required, validation.Min(0.0), validation.Max(100.0)),
	)
}
