package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser resolves date expressions against "today" in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns the calendar date of now in the parser's timezone.
func (p *Parser) Today(now time.Time) time.Time {
	return Civil(now.In(p.location))
}

// Resolve turns an ISO date or a relative expression ("today", "tomorrow",
// "yesterday", "in 3 days", "in 2 weeks", "next monday") into a calendar date.
// Relative expressions are anchored at Today(now).
func (p *Parser) Resolve(expr string, now time.Time) (time.Time, error) {
	if t, err := ParseISODate(expr); err == nil {
		return t, nil
	}

	today := p.Today(now)
	relative := strings.ToLower(strings.TrimSpace(expr))

	switch relative {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, today)
	}
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, today)
	}

	return time.Time{}, fmt.Errorf("unrecognized date expression: %q", expr)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, today time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid duration amount: %q", matches[1])
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return today.AddDate(0, 0, amount), nil
	case strings.HasPrefix(unit, "week"):
		return today.AddDate(0, 0, amount*7), nil
	case strings.HasPrefix(unit, "month"):
		return today.AddDate(0, amount, 0), nil
	}

	return time.Time{}, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
// The same weekday as today resolves to one week later.
func (p *Parser) parseNextWeekday(relative string, today time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return today.AddDate(0, 0, daysUntil), nil
}
