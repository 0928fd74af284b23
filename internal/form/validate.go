// Package form implements the submission controllers that sit between
// user input and the stores: declared field constraints, derived display
// values, and the create-or-update decision.
package form

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
	isoPattern  = regexp.MustCompile(`T(\d{2}:\d{2})`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("dateymd", func(fl validator.FieldLevel) bool {
		return datePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, ok := toMinutes(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("breakmin", func(fl validator.FieldLevel) bool {
		value, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		return err == nil && value >= 0
	})
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		value, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
		return err == nil && value > 0
	})

	v.RegisterStructValidation(timesheetTimeOrder, TimesheetInput{})
	v.RegisterStructValidation(leaveDateOrder, LeaveInput{})
	return v
}

// toMinutes parses strict 24-hour HH:MM into minutes since midnight.
func toMinutes(value string) (int, bool) {
	if !timePattern.MatchString(value) {
		return 0, false
	}
	hours, _ := strconv.Atoi(value[:2])
	minutes, _ := strconv.Atoi(value[3:])
	if hours > 23 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

// fieldErrors flattens validator output into per-field fixed messages.
// The first issue per field wins.
func fieldErrors(err error, messages map[string]string) map[string]string {
	if err == nil {
		return nil
	}
	issues, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": err.Error()}
	}
	out := make(map[string]string, len(issues))
	for _, issue := range issues {
		field := fieldName(issue.StructField())
		if _, seen := out[field]; seen {
			continue
		}
		if msg, ok := messages[field+":"+issue.Tag()]; ok {
			out[field] = msg
		} else if msg, ok := messages[field]; ok {
			out[field] = msg
		} else {
			out[field] = "invalid value"
		}
	}
	return out
}

func fieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

// NormalizeTime extracts HH:MM from the shapes the backend returns:
// a bare HH:MM, an ISO timestamp, or a longer time string.
func NormalizeTime(value string) string {
	if value == "" {
		return ""
	}
	if m := isoPattern.FindStringSubmatch(value); m != nil {
		return m[1]
	}
	if timePattern.MatchString(value) {
		return value
	}
	if len(value) > 5 {
		return value[:5]
	}
	return value
}

// NormalizeDate passes through YYYY-MM-DD and reformats anything else
// that still parses as a date.
func NormalizeDate(value string) string {
	if value == "" {
		return ""
	}
	if datePattern.MatchString(value) {
		return value
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "02/01/2006"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format("2006-01-02")
		}
	}
	return value
}
