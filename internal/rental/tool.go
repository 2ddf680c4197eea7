package rental

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ToolSpec describes a rentable tool category
type ToolSpec struct {
	Code          string          `json:"code"`
	Type          string          `json:"type"`
	Brand         string          `json:"brand"`
	DailyCharge   decimal.Decimal `json:"daily_charge"`
	WeekendCharge bool            `json:"weekend_charge"`
	HolidayCharge bool            `json:"holiday_charge"`
}

// Catalog is a fixed lookup table of tools keyed by upper-case code
type Catalog struct {
	tools map[string]ToolSpec
}

// DefaultTools returns the standard rental catalog
func DefaultTools() []ToolSpec {
	return []ToolSpec{
		{Code: "CHNS", Type: "Chainsaw", Brand: "Stihl", DailyCharge: decimal.RequireFromString("1.49"), WeekendCharge: false, HolidayCharge: true},
		{Code: "LADW", Type: "Ladder", Brand: "Werner", DailyCharge: decimal.RequireFromString("1.99"), WeekendCharge: true, HolidayCharge: false},
		{Code: "JAKD", Type: "Jackhammer", Brand: "DeWalt", DailyCharge: decimal.RequireFromString("2.99"), WeekendCharge: false, HolidayCharge: false},
		{Code: "JAKR", Type: "Jackhammer", Brand: "Ridgid", DailyCharge: decimal.RequireFromString("2.99"), WeekendCharge: false, HolidayCharge: false},
	}
}

// DefaultCatalog returns a catalog holding DefaultTools
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog(DefaultTools()...)
	if err != nil {
		panic(fmt.Sprintf("default catalog is invalid: %v", err))
	}
	return catalog
}

// NewCatalog builds a catalog from tools. Codes are matched case-insensitively
// and must be unique.
func NewCatalog(tools ...ToolSpec) (*Catalog, error) {
	c := &Catalog{tools: make(map[string]ToolSpec, len(tools))}
	for _, tool := range tools {
		if err := validateTool(tool); err != nil {
			return nil, err
		}
		code := normalizeCode(tool.Code)
		if _, exists := c.tools[code]; exists {
			return nil, fmt.Errorf("duplicate tool code: %s", code)
		}
		tool.Code = code
		c.tools[code] = tool
	}
	return c, nil
}

// WithOverrides returns a new catalog where tools replace entries with the
// same code and add any new codes. The receiver is left untouched.
func (c *Catalog) WithOverrides(tools ...ToolSpec) (*Catalog, error) {
	merged := make(map[string]ToolSpec, len(c.tools)+len(tools))
	for code, tool := range c.tools {
		merged[code] = tool
	}

	seen := make(map[string]bool, len(tools))
	for _, tool := range tools {
		if err := validateTool(tool); err != nil {
			return nil, err
		}
		code := normalizeCode(tool.Code)
		if seen[code] {
			return nil, fmt.Errorf("duplicate tool code: %s", code)
		}
		seen[code] = true
		tool.Code = code
		merged[code] = tool
	}

	return &Catalog{tools: merged}, nil
}

// Lookup resolves a tool code
func (c *Catalog) Lookup(code string) (ToolSpec, bool) {
	tool, ok := c.tools[normalizeCode(code)]
	return tool, ok
}

// Tools returns every tool sorted by code
func (c *Catalog) Tools() []ToolSpec {
	tools := make([]ToolSpec, 0, len(c.tools))
	for _, tool := range c.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Code < tools[j].Code })
	return tools
}

// Codes returns every tool code in sorted order
func (c *Catalog) Codes() []string {
	tools := c.Tools()
	codes := make([]string, len(tools))
	for i, tool := range tools {
		codes[i] = tool.Code
	}
	return codes
}

func validateTool(tool ToolSpec) error {
	if normalizeCode(tool.Code) == "" {
		return fmt.Errorf("tool code is required")
	}
	if tool.DailyCharge.IsNegative() {
		return fmt.Errorf("tool %s: daily charge must not be negative", tool.Code)
	}
	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
