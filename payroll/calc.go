// Package payroll implements the overtime pay rules: turning a raw clock-out
// time into billable overtime hours, pricing those hours against a base
// salary, and rolling records up into monthly reports.
//
// Everything here is a pure function over in-memory values. Persistence and
// access control live elsewhere; callers are responsible for passing a
// positive base salary and non-negative hours.
package payroll

import (
	"math"
	"strconv"
	"strings"
)

// Overtime starts at 16:30 on a working day. On a designated holiday the
// whole shift counts, so the threshold drops to 08:00.
const (
	regularThresholdMinutes = 16*60 + 30
	holidayThresholdMinutes = 8 * 60
)

// Pay multipliers applied on top of the base hourly rate.
const (
	RegularMultiplier = 1.25
	HolidayMultiplier = 1.5
)

// ParseEndTime interprets a free-form clock-out token. Three shapes are
// accepted, tried in this order:
//
//   - decimal "H.MM": hour before the dot, minutes after. Hours below 12 are
//     taken as PM ("4.30" is 16:30); 12 and above are used as-is. Clock-out
//     times are assumed to be afternoon or evening.
//   - colon "H:MM" or "HH:MM": literal 24-hour time, no PM inference.
//   - bare 3 or 4 digits: last two digits are minutes ("1830" is 18:30).
//
// Anything else, including tokens with non-numeric components, reports ok
// false.
func ParseEndTime(token string) (hour, minute int, ok bool) {
	token = strings.TrimSpace(token)

	switch {
	case strings.Contains(token, "."):
		parts := strings.SplitN(token, ".", 2)
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, false
		}
		m := 0
		if parts[1] != "" {
			if m, err = strconv.Atoi(parts[1]); err != nil {
				return 0, 0, false
			}
		}
		if h < 12 {
			h += 12
		}
		return h, m, true

	case strings.Contains(token, ":"):
		parts := strings.Split(token, ":")
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, false
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, false
		}
		return h, m, true

	default:
		digits := strings.ReplaceAll(token, " ", "")
		if len(digits) != 3 && len(digits) != 4 {
			return 0, 0, false
		}
		h, err := strconv.Atoi(digits[:len(digits)-2])
		if err != nil {
			return 0, 0, false
		}
		m, err := strconv.Atoi(digits[len(digits)-2:])
		if err != nil {
			return 0, 0, false
		}
		return h, m, true
	}
}

// ComputeHours converts a clock-out token into billable overtime hours,
// rounded half-up to two decimals. Time at or before the threshold, and any
// unparseable token, yields 0 rather than an error: import batches filter
// zero-hour rows instead of aborting.
func ComputeHours(token string, holiday bool) float64 {
	h, m, ok := ParseEndTime(token)
	if !ok {
		return 0
	}

	threshold := regularThresholdMinutes
	if holiday {
		threshold = holidayThresholdMinutes
	}

	minutes := h*60 + m - threshold
	if minutes <= 0 {
		return 0
	}
	return round2(float64(minutes) / 60)
}

// Rate is the overtime rate per hour: base salary over a 30-day month of
// 8-hour days, times the day-type multiplier.
func Rate(baseSalary float64, holiday bool) float64 {
	hourly := baseSalary / 30 / 8
	if holiday {
		return hourly * HolidayMultiplier
	}
	return hourly * RegularMultiplier
}

// Amount prices overtime hours, rounded half-up to two decimals. Rounding
// happens per row, so exported totals are sums of already-rounded amounts.
func Amount(baseSalary, hours float64, holiday bool) float64 {
	return round2(Rate(baseSalary, holiday) * hours)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
