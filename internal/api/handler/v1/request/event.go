package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// DateFormat is the wire format for all date fields.
const DateFormat = "2006-01-02"

type CreateEventRequest struct {
	EventName            string `json:"event_name"`
	EventDate            string `json:"event_date" format:"YYYY-MM-DD"`
	EventTypeID          *uint  `json:"event_type_id"`
	OrganizationID       *uint  `json:"organization_id"`
	LensCategoryID       *uint  `json:"lens_category_id"`
	LensSubcategoryID    *uint  `json:"lens_subcategory_id"`
	Location             string `json:"location"`
	Description          string `json:"description"`
	CoordinatorName      string `json:"coordinator_name"`
	CoordinatorPhone     string `json:"coordinator_phone"`
	CoordinatorEmail     string `json:"coordinator_email"`
	ExpectedParticipants int    `json:"expected_participants"`
	ActualParticipants   int    `json:"actual_participants"`
	Notes                string `json:"notes"`
	Status               string `json:"status"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventName, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.EventDate, validation.Required, validation.Date(DateFormat)),
		validation.Field(&req.CoordinatorEmail, is.Email),
		validation.Field(&req.ExpectedParticipants, validation.Min(0)),
		validation.Field(&req.ActualParticipants, validation.Min(0)),
	)
}

type UpdateEventRequest struct {
	CreateEventRequest
}
