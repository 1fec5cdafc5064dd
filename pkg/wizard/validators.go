package wizard

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Validator checks one raw answer and returns the normalised value to
// store. The error message is shown verbatim to the operator, so it
// must say what a good answer looks like.
type Validator func(input string) (any, error)

// Text requires a non-empty answer.
func Text(field string) Validator {
	return func(input string) (any, error) {
		if input == "" {
			return nil, fmt.Errorf("Please enter a %s.", field)
		}
		return input, nil
	}
}

// ISODate requires YYYY-MM-DD and keeps the string form.
func ISODate() Validator {
	return func(input string) (any, error) {
		if _, err := time.Parse("2006-01-02", input); err != nil {
			return nil, fmt.Errorf("%q is not a valid date. Use YYYY-MM-DD, e.g. 2026-03-10.", input)
		}
		return input, nil
	}
}

// HHMM requires a 24h HH:MM time and keeps the string form.
func HHMM() Validator {
	return func(input string) (any, error) {
		if _, err := time.Parse("15:04", input); err != nil {
			return nil, fmt.Errorf("%q is not a valid time. Use HH:MM 24-hour, e.g. 08:30.", input)
		}
		return input, nil
	}
}

// PositiveInt requires an integer greater than zero.
func PositiveInt(field string) Validator {
	return func(input string) (any, error) {
		n, err := strconv.Atoi(input)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%q is not a valid %s. Enter a positive number.", input, field)
		}
		return n, nil
	}
}

// OptionalID accepts a positive integer or the word "skip" (stored as
// 0).
func OptionalID(field string) Validator {
	return func(input string) (any, error) {
		if strings.EqualFold(input, "skip") || strings.EqualFold(input, "none") {
			return 0, nil
		}
		n, err := strconv.Atoi(input)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%q is not a valid %s id. Enter the id from the list, or skip.", input, field)
		}
		return n, nil
	}
}

// IDList requires a comma-separated list of at least min positive
// integers.
func IDList(field string, min int) Validator {
	return func(input string) (any, error) {
		parts := strings.Split(input, ",")
		ids := make([]int, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			n, err := strconv.Atoi(p)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("%q is not a valid %s id. Enter ids separated by commas, e.g. 3, 7, 12.", p, field)
			}
			ids = append(ids, n)
		}
		if len(ids) < min {
			return nil, fmt.Errorf("A path needs at least %d %s ids, separated by commas.", min, field)
		}
		return ids, nil
	}
}

// Coordinate requires a decimal within [-bound, bound].
func Coordinate(field string, bound float64) Validator {
	return func(input string) (any, error) {
		f, err := strconv.ParseFloat(input, 64)
		if err != nil || f < -bound || f > bound {
			return nil, fmt.Errorf("%q is not a valid %s. Enter a decimal between %.0f and %.0f.", input, field, -bound, bound)
		}
		return f, nil
	}
}

// OneOf requires one of the listed words, case-insensitively, and
// stores the canonical form.
func OneOf(field string, allowed ...string) Validator {
	return func(input string) (any, error) {
		for _, a := range allowed {
			if strings.EqualFold(input, a) {
				return a, nil
			}
		}
		return nil, fmt.Errorf("%q is not a valid %s. Choose one of: %s.", input, field, strings.Join(allowed, ", "))
	}
}

// YesNo requires a yes/no answer and stores a bool.
func YesNo() Validator {
	return func(input string) (any, error) {
		switch strings.ToLower(input) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		return nil, fmt.Errorf("Please answer yes or no.")
	}
}
