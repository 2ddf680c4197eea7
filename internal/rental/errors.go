package rental

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDiscount     = errors.New("invalid discount percent")
	ErrInvalidRentalPeriod = errors.New("invalid rental period")
	ErrUnknownTool         = errors.New("unknown tool")
)

// InvalidDiscountError is returned when the discount is outside 0-100
type InvalidDiscountError struct {
	Percent int
}

func (e *InvalidDiscountError) Error() string {
	return "The discount percent must be a whole number between 0-100."
}

func (e *InvalidDiscountError) Unwrap() error { return ErrInvalidDiscount }

// InvalidRentalPeriodError is returned when fewer than one rental day is requested
type InvalidRentalPeriodError struct {
	Days int
}

func (e *InvalidRentalPeriodError) Error() string {
	return "The minimum rental period for a tool is 1 day."
}

func (e *InvalidRentalPeriodError) Unwrap() error { return ErrInvalidRentalPeriod }

// UnknownToolError is returned when a tool code is not in the catalog
type UnknownToolError struct {
	Code string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool code: %s", e.Code)
}

func (e *UnknownToolError) Unwrap() error { return ErrUnknownTool }
