package rental

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request is the customer's rental intent
type Request struct {
	ToolCode        string
	RentalDays      int
	DiscountPercent int
	CheckoutDate    time.Time
}

// Agreement is the computed rental agreement.
// Monetary fields are rounded to the cent.
type Agreement struct {
	Tool              ToolSpec        `json:"tool"`
	CheckoutDate      time.Time       `json:"checkout_date"`
	DueDate           time.Time       `json:"due_date"`
	RentalDays        int             `json:"rental_days"`
	ChargeDays        int             `json:"charge_days"`
	DiscountPercent   int             `json:"discount_percent"`
	PreDiscountCharge decimal.Decimal `json:"pre_discount_charge"`
	DiscountAmount    decimal.Decimal `json:"discount_amount"`
	FinalCharge       decimal.Decimal `json:"final_charge"`
}
