package transaction

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	errors "github.com/brunacaffaro/cashflowcontrol-backend/internal"
	"github.com/brunacaffaro/cashflowcontrol-backend/internal/core/validation"
)

// CreateTransactionDTO carries the form-encoded payload accepted when
// recording a new transaction. The id is never client-supplied.
type CreateTransactionDTO struct {
	Name     string    `json:"name"`
	Date     time.Time `json:"t_date"`
	Amount   float64   `json:"amount"`
	Type     string    `json:"t_type"`
	Category string    `json:"category"`
	Status   bool      `json:"t_status"`
	Comment  *string   `json:"comment,omitempty"`
}

// ParseCreateForm decodes the create payload from form values, converting
// malformed primitives into field-level validation errors before the
// handler's service call runs.
func ParseCreateForm(form url.Values) (*CreateTransactionDTO, *errors.AppError) {
	dto := &CreateTransactionDTO{
		Name:     form.Get("name"),
		Type:     form.Get("t_type"),
		Category: form.Get("category"),
	}

	if raw := form.Get("t_date"); raw != "" {
		parsed, err := time.Parse(DateLayout, raw)
		if err != nil {
			return nil, errors.NewValidationFieldError("t_date",
				fmt.Sprintf("t_date must be a calendar date in %s format", DateLayout),
				errors.ErrCodeInvalidDate)
		}
		dto.Date = parsed
	}

	if raw := form.Get("amount"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.NewValidationFieldError("amount",
				"amount must be a number", errors.ErrCodeInvalidAmount)
		}
		dto.Amount = parsed
	} else {
		return nil, errors.NewValidationFieldError("amount",
			"amount is required", errors.ErrCodeInvalidAmount)
	}

	if raw := form.Get("t_status"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.NewValidationFieldError("t_status",
				"t_status must be a boolean", errors.ErrCodeInvalidStatus)
		}
		dto.Status = parsed
	}

	if raw := form.Get("comment"); raw != "" {
		dto.Comment = &raw
	}

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	return dto, nil
}

// Validate enforces the declared schema: required fields plus the column
// length limits of the storage model.
func (dto *CreateTransactionDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(50)
	v.Field("t_date", dto.Date).Required()
	v.Field("t_type", dto.Type).Required().MaxLength(20)
	v.Field("category", dto.Category).Required().MaxLength(30)
	v.Field("comment", dto.Comment).MaxLength(50)
	return v.Validate()
}

// UpdateStatusDTO is the payload for toggling a transaction's reconciled
// flag. Both directions of the toggle are always legal.
type UpdateStatusDTO struct {
	Name   string `json:"name"`
	Status bool   `json:"t_status"`
}

func (dto *UpdateStatusDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(50)
	return v.Validate()
}
