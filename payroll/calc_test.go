package payroll

import (
	"strconv"
	"testing"
)

func TestParseEndTime(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{"4.30", 16, 30, true}, // PM inference on decimal form
		{"6.00", 18, 0, true},
		{"11.59", 23, 59, true},
		{"12.15", 12, 15, true}, // 12 and above used as-is
		{"16.30", 16, 30, true},
		{"0.45", 12, 45, true},
		{"6.3", 18, 3, true}, // one-digit fraction is a literal minute
		{"6.", 18, 0, true},  // missing fraction defaults to :00
		{"18:30", 18, 30, true},
		{"8:05", 8, 5, true}, // colon form is literal, no PM inference
		{"12:34:56", 12, 34, true},
		{"1830", 18, 30, true},
		{"630", 6, 30, true},
		{" 18 30 ", 18, 30, true},
		{".30", 0, 0, false},
		{"4.3x", 0, 0, false},
		{"ab:30", 0, 0, false},
		{"18:xx", 0, 0, false},
		{"25", 0, 0, false}, // bare form needs 3 or 4 digits
		{"18305", 0, 0, false},
		{"abc", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tc := range cases {
		h, m, ok := ParseEndTime(tc.in)
		if h != tc.hour || m != tc.minute || ok != tc.ok {
			t.Errorf("ParseEndTime(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tc.in, h, m, ok, tc.hour, tc.minute, tc.ok)
		}
	}
}

func TestParseEndTimeDecimalPMInference(t *testing.T) {
	// Hours 0-11 are shifted to PM, 12-23 pass through unchanged.
	for h := 0; h < 24; h++ {
		token := strconv.Itoa(h) + ".00"
		got, _, ok := ParseEndTime(token)
		if !ok {
			t.Fatalf("ParseEndTime(%q) unexpectedly invalid", token)
		}
		want := h
		if h < 12 {
			want = h + 12
		}
		if got != want {
			t.Errorf("ParseEndTime(%q) hour = %d, want %d", token, got, want)
		}
	}
}

func TestComputeHours(t *testing.T) {
	cases := []struct {
		token   string
		holiday bool
		want    float64
	}{
		{"16.30", false, 0}, // exactly at the regular threshold
		{"18.30", false, 2},
		{"18.30", true, 10.5}, // holiday threshold is 08:00
		{"4.30", false, 0},    // 16:30 after PM inference
		{"6.30", false, 2},
		{"7.15", false, 2.75},
		{"9.00", false, 4.5}, // "9.00" is read as 21:00, by observed rule
		{"17:45", false, 1.25},
		{"17:40", false, 1.17}, // 70 minutes, rounded half-up
		{"1830", false, 2},
		{"630", false, 0}, // bare form is literal: 06:30 is before the shift ends
		{"930", true, 1.5},
		{"16.30", true, 8.5},
		{"8:00", true, 0},
		{"", false, 0},
		{"abc", false, 0},
		{"4.3x", false, 0},
		{"12", false, 0},
	}
	for _, tc := range cases {
		if got := ComputeHours(tc.token, tc.holiday); got != tc.want {
			t.Errorf("ComputeHours(%q, %v) = %v, want %v", tc.token, tc.holiday, got, tc.want)
		}
	}
}

// ComputeHours must be total: no input may panic, and junk yields zero.
func TestComputeHoursNeverPanics(t *testing.T) {
	inputs := []string{
		"", ".", ":", "..", "::", ". .", "999999999999999999999999.30",
		"-4.30", "4.-30", "\t\n", "١٨٣٠", "18.30.45", "🕐", "0x1A",
	}
	for _, in := range inputs {
		for _, holiday := range []bool{false, true} {
			got := ComputeHours(in, holiday)
			if got < 0 {
				t.Errorf("ComputeHours(%q, %v) = %v, want >= 0", in, holiday, got)
			}
		}
	}
}

func TestRate(t *testing.T) {
	cases := []struct {
		salary  float64
		holiday bool
		want    float64
	}{
		{2400, false, 12.5},  // 2400/30/8 * 1.25
		{2400, true, 15},     // 2400/30/8 * 1.5
		{3000, false, 15.625},
		{3000, true, 18.75},
	}
	for _, tc := range cases {
		if got := Rate(tc.salary, tc.holiday); got != tc.want {
			t.Errorf("Rate(%v, %v) = %v, want %v", tc.salary, tc.holiday, got, tc.want)
		}
	}
}

func TestAmount(t *testing.T) {
	cases := []struct {
		salary  float64
		hours   float64
		holiday bool
		want    float64
	}{
		{3000, 2, false, 31.25},
		{2400, 3, false, 37.5},
		{2400, 2, true, 30},
		{1000, 1.33, false, 6.93}, // 5.2083… per hour, rounded per row
		{2400, 0, false, 0},
	}
	for _, tc := range cases {
		if got := Amount(tc.salary, tc.hours, tc.holiday); got != tc.want {
			t.Errorf("Amount(%v, %v, %v) = %v, want %v", tc.salary, tc.hours, tc.holiday, got, tc.want)
		}
	}
}
