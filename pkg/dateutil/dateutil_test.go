package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestStartOfDay_KeepsWallClockDate(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	input := time.Date(2020, 7, 2, 23, 0, 0, 0, loc) // already 07/03 in UTC

	result := StartOfDay(input)

	if !result.Equal(Date(2020, time.July, 2)) {
		t.Errorf("StartOfDay(%v) = %v, want 2020-07-02", input, result)
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		days     int
		expected time.Time
	}{
		{"Same month", Date(2020, 7, 2), 3, Date(2020, 7, 5)},
		{"Month boundary", Date(2015, 7, 2), 30, Date(2015, 8, 1)},
		{"Year boundary", Date(2024, 12, 30), 5, Date(2025, 1, 4)},
		{"Leap day", Date(2024, 2, 28), 1, Date(2024, 2, 29)},
		{"Zero days", Date(2024, 2, 28), 0, Date(2024, 2, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AddDays(tt.input, tt.days)

			if !result.Equal(tt.expected) {
				t.Errorf("AddDays(%v, %d) = %v, want %v",
					tt.input.Format("2006-01-02"), tt.days,
					result.Format("2006-01-02"),
					tt.expected.Format("2006-01-02"))
			}
		})
	}
}

func TestISOWeekday(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  int
	}{
		{"Monday is 1", Date(2025, 1, 13), 1},
		{"Thursday is 4", Date(2025, 1, 16), 4},
		{"Friday is 5", Date(2025, 1, 17), 5},
		{"Saturday is 6", Date(2025, 1, 18), 6},
		{"Sunday is 7", Date(2025, 1, 19), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ISOWeekday(tt.input); got != tt.want {
				t.Errorf("ISOWeekday(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), got, tt.want)
			}
		})
	}
}

func TestIsWeekday(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Monday is weekday", Date(2025, 1, 13), true},
		{"Wednesday is weekday", Date(2025, 1, 15), true},
		{"Friday is weekday", Date(2025, 1, 17), true},
		{"Saturday is not weekday", Date(2025, 1, 18), false},
		{"Sunday is not weekday", Date(2025, 1, 19), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekday(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekday(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Saturday is weekend", Date(2025, 1, 18), true},
		{"Sunday is weekend", Date(2025, 1, 19), true},
		{"Monday is not weekend", Date(2025, 1, 13), false},
		{"Friday is not weekend", Date(2025, 1, 17), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekend(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
		})
	}
}

func TestIsSameDay(t *testing.T) {
	tests := []struct {
		name  string
		date1 time.Time
		date2 time.Time
		want  bool
	}{
		{
			"Same date different time",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC),
			true,
		},
		{
			"Different date",
			time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsSameDay(tt.date1, tt.date2)

			if result != tt.want {
				t.Errorf("IsSameDay(%v, %v) = %v, want %v",
					tt.date1, tt.date2, result, tt.want)
			}
		})
	}
}

func TestFormatUS(t *testing.T) {
	input := Date(2015, 7, 2)
	result := FormatUS(input)

	expected := "07/02/2015"
	if result != expected {
		t.Errorf("FormatUS(%v) = %v, want %v", input, result, expected)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"US format MM/DD/YYYY", "07/02/2020", Date(2020, 7, 2), false},
		{"US format without padding", "9/3/2015", Date(2015, 9, 3), false},
		{"ISO format YYYY-MM-DD", "2025-01-15", Date(2025, 1, 15), false},
		{"Dotted format DD.MM.YYYY", "15.01.2025", Date(2025, 1, 15), false},
		{"Surrounding whitespace", "  07/02/2020\n", Date(2020, 7, 2), false},
		{"Invalid month", "13/02/2020", time.Time{}, true},
		{"Garbage", "tomorrow", time.Time{}, true},
		{"Empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}
