package domain

import (
	"strconv"
	"strings"
	"time"
)

// ParsePurchaseDate validates a "dd/mm/yyyy" date and returns the stored
// "dd-mm-yyyy" form. The year must be above 1900 and not after now's year.
func ParsePurchaseDate(s string, now time.Time) (string, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return "", false
	}
	day, month, year, ok := dateComponents(parts)
	if !ok {
		return "", false
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return "", false
	}
	if year <= 1900 || year > now.Year() {
		return "", false
	}
	return strings.Join(parts, "-"), true
}

// purchaseTime converts the stored date into a comparable instant.
// time.Date normalizes out-of-range days (31-02 becomes 03-03).
func purchaseTime(stored string) time.Time {
	parts := strings.Split(stored, "-")
	if len(parts) != 3 {
		return time.Time{}
	}
	day, month, year, ok := dateComponents(parts)
	if !ok {
		return time.Time{}
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func dateComponents(parts []string) (day, month, year int, ok bool) {
	var err error
	if day, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, false
	}
	if year, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, false
	}
	return day, month, year, true
}

// displayDate swaps the stored separators for "/"
func displayDate(stored string) string {
	return strings.ReplaceAll(stored, "-", "/")
}
