package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// GenerateReportRequest selects a reporting scope. A quarterly report
// needs a quarter label like "2024Q3", an annual one needs a year, and
// anything else covers all records.
type GenerateReportRequest struct {
	ReportType string `json:"report_type"`
	Quarter    string `json:"quarter"`
	Year       int    `json:"year"`
}

func (req *GenerateReportRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.ReportType, validation.Required, validation.In("quarterly", "annual", "all_time")),
	)
	if err != nil {
		return err
	}

	switch req.ReportType {
	case "quarterly":
		return validation.Validate(req.Quarter, validation.Required)
	case "annual":
		return validation.Validate(req.Year, validation.Required)
	}

	return nil
}
