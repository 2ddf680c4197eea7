package rental

import (
	"github.com/toolrental/tool-rental/internal/pricing"
	"github.com/toolrental/tool-rental/pkg/dateutil"
	"go.uber.org/zap"
)

// Builder validates rental requests and assembles agreements
type Builder struct {
	catalog    *Catalog
	chargeDays *ChargeDayCalculator
	logger     *zap.Logger
}

// NewBuilder creates a builder over catalog.
// A nil catalog uses DefaultCatalog, a nil logger discards output.
func NewBuilder(catalog *Catalog, chargeDays *ChargeDayCalculator, logger *zap.Logger) *Builder {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if chargeDays == nil {
		chargeDays = NewChargeDayCalculator(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		catalog:    catalog,
		chargeDays: chargeDays,
		logger:     logger,
	}
}

// Catalog returns the tool catalog the builder resolves codes against
func (b *Builder) Catalog() *Catalog {
	return b.catalog
}

// Build validates req and computes its agreement.
// Checks run in order: discount, rental period, tool code.
func (b *Builder) Build(req Request) (*Agreement, error) {
	if err := b.validate(req); err != nil {
		b.logger.Warn("Rental request rejected",
			zap.String("tool_code", req.ToolCode),
			zap.Int("rental_days", req.RentalDays),
			zap.Int("discount_percent", req.DiscountPercent),
			zap.Error(err))
		return nil, err
	}

	tool, _ := b.catalog.Lookup(req.ToolCode)
	checkoutDate := dateutil.StartOfDay(req.CheckoutDate)
	dueDate := dateutil.AddDays(checkoutDate, req.RentalDays)

	chargeDays := b.chargeDays.ChargeDays(req.RentalDays, tool, checkoutDate, dueDate)
	charges := pricing.Compute(tool.DailyCharge, chargeDays, req.DiscountPercent)

	b.logger.Debug("Rental agreement computed",
		zap.String("tool_code", tool.Code),
		zap.String("checkout_date", checkoutDate.Format("2006-01-02")),
		zap.String("due_date", dueDate.Format("2006-01-02")),
		zap.Int("rental_days", req.RentalDays),
		zap.Int("charge_days", chargeDays),
		zap.String("final_charge", charges.Final.StringFixed(2)))

	return &Agreement{
		Tool:              tool,
		CheckoutDate:      checkoutDate,
		DueDate:           dueDate,
		RentalDays:        req.RentalDays,
		ChargeDays:        chargeDays,
		DiscountPercent:   req.DiscountPercent,
		PreDiscountCharge: charges.PreDiscount,
		DiscountAmount:    charges.Discount,
		FinalCharge:       charges.Final,
	}, nil
}

func (b *Builder) validate(req Request) error {
	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		return &InvalidDiscountError{Percent: req.DiscountPercent}
	}
	if req.RentalDays < 1 {
		return &InvalidRentalPeriodError{Days: req.RentalDays}
	}
	if _, ok := b.catalog.Lookup(req.ToolCode); !ok {
		return &UnknownToolError{Code: req.ToolCode}
	}
	return nil
}
