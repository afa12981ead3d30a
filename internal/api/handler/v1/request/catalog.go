package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateEventTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (req *CreateEventTypeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type CreateCostTypeRequest struct {
	Name        string  `json:"name"`
	DefaultRate float64 `json:"default_rate"`
	Description string  `json:"description"`
}

func (req *CreateCostTypeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.DefaultRate, validation.Min(0.0)),
	)
}

type CreateLensCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

func (req *CreateLensCategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type CreateLensSubcategoryRequest struct {
	CategoryID  uint   `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

func (req *CreateLensSubcategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CategoryID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}
