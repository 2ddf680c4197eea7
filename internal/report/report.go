package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/toolrental/tool-rental/internal/rental"
	"github.com/toolrental/tool-rental/pkg/dateutil"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formatter renders agreements and catalogs for people
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter grouping currency digits per tag
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// FormatCurrency renders amount as dollars, e.g. $1,234.50
func (f *Formatter) FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	return sign + "$" + f.printer.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}

// FormatPercent renders a whole percent, e.g. 25%
func (f *Formatter) FormatPercent(percent int) string {
	return fmt.Sprintf("%d%%", percent)
}

// WriteAgreement prints the agreement in the rental counter layout
func (f *Formatter) WriteAgreement(w io.Writer, a *rental.Agreement) error {
	lines := []struct {
		label string
		value string
	}{
		{"Tool code", a.Tool.Code},
		{"Tool type", a.Tool.Type},
		{"Tool brand", a.Tool.Brand},
		{"Rental days", fmt.Sprintf("%d", a.RentalDays)},
		{"Checkout date", dateutil.FormatUS(a.CheckoutDate)},
		{"Due date", dateutil.FormatUS(a.DueDate)},
		{"Daily rental charge", f.FormatCurrency(a.Tool.DailyCharge)},
		{"Charge days", fmt.Sprintf("%d", a.ChargeDays)},
		{"Pre-discount charge", f.FormatCurrency(a.PreDiscountCharge)},
		{"Discount percent", f.FormatPercent(a.DiscountPercent)},
		{"Discount amount", f.FormatCurrency(a.DiscountAmount)},
		{"Final charge", f.FormatCurrency(a.FinalCharge)},
	}

	if _, err := fmt.Fprintln(w, "RENTAL AGREEMENT"); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s: %s\n", line.label, line.value); err != nil {
			return err
		}
	}
	return nil
}

// Render writes the agreement in format: "text" (default) or "json"
func (f *Formatter) Render(w io.Writer, a *rental.Agreement, format string) error {
	switch format {
	case "", FormatText:
		return f.WriteAgreement(w, a)
	case FormatJSON:
		return WriteAgreementJSON(w, a)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// agreementJSON is the machine-readable agreement
type agreementJSON struct {
	ToolCode          string `json:"tool_code"`
	ToolType          string `json:"tool_type"`
	ToolBrand         string `json:"tool_brand"`
	RentalDays        int    `json:"rental_days"`
	CheckoutDate      string `json:"checkout_date"`
	DueDate           string `json:"due_date"`
	DailyRentalCharge string `json:"daily_rental_charge"`
	ChargeDays        int    `json:"charge_days"`
	PreDiscountCharge string `json:"pre_discount_charge"`
	DiscountPercent   int    `json:"discount_percent"`
	DiscountAmount    string `json:"discount_amount"`
	FinalCharge       string `json:"final_charge"`
}

// WriteAgreementJSON prints the agreement as indented JSON.
// Dates are YYYY-MM-DD, amounts are fixed two-decimal strings.
func WriteAgreementJSON(w io.Writer, a *rental.Agreement) error {
	out := agreementJSON{
		ToolCode:          a.Tool.Code,
		ToolType:          a.Tool.Type,
		ToolBrand:         a.Tool.Brand,
		RentalDays:        a.RentalDays,
		CheckoutDate:      a.CheckoutDate.Format("2006-01-02"),
		DueDate:           a.DueDate.Format("2006-01-02"),
		DailyRentalCharge: a.Tool.DailyCharge.StringFixed(2),
		ChargeDays:        a.ChargeDays,
		PreDiscountCharge: a.PreDiscountCharge.StringFixed(2),
		DiscountPercent:   a.DiscountPercent,
		DiscountAmount:    a.DiscountAmount.StringFixed(2),
		FinalCharge:       a.FinalCharge.StringFixed(2),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode agreement: %w", err)
	}
	return nil
}

// WriteCatalog prints the tools as an aligned table
func (f *Formatter) WriteCatalog(w io.Writer, tools []rental.ToolSpec) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tTYPE\tBRAND\tDAILY CHARGE\tWEEKEND CHARGE\tHOLIDAY CHARGE")
	for _, tool := range tools {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			tool.Code,
			tool.Type,
			tool.Brand,
			f.FormatCurrency(tool.DailyCharge),
			yesNo(tool.WeekendCharge),
			yesNo(tool.HolidayCharge))
	}
	return tw.Flush()
}

// ToolEntry is a catalog entry in the shape of the config file's tools block
type ToolEntry struct {
	Code          string `yaml:"code"`
	Type          string `yaml:"type"`
	Brand         string `yaml:"brand"`
	DailyCharge   string `yaml:"daily_charge"`
	WeekendCharge bool   `yaml:"weekend_charge"`
	HolidayCharge bool   `yaml:"holiday_charge"`
}

// WriteCatalogYAML prints the tools as a `tools:` block that can be pasted into config.yaml
func WriteCatalogYAML(w io.Writer, tools []rental.ToolSpec) error {
	entries := make([]ToolEntry, 0, len(tools))
	for _, tool := range tools {
		entries = append(entries, ToolEntry{
			Code:          tool.Code,
			Type:          tool.Type,
			Brand:         tool.Brand,
			DailyCharge:   tool.DailyCharge.StringFixed(2),
			WeekendCharge: tool.WeekendCharge,
			HolidayCharge: tool.HolidayCharge,
		})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(map[string][]ToolEntry{"tools": entries}); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return encoder.Close()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
