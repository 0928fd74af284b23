// Package record models API payloads as loosely typed JSON objects.
// The backend is inconsistent about field names, so records stay maps
// until a canonical id has been derived at the store boundary.
package record

import (
	"fmt"
	"strconv"
)

// Record is a decoded JSON object.
type Record map[string]any

// idCandidates is the priority order for deriving the canonical id.
var idCandidates = []string{"id", "_id", "employeeId", "userId", "uuid", "guid"}

// EnsureID derives the canonical "id" field from the first non-empty
// candidate field. Records without any candidate are returned unchanged;
// no id is ever fabricated. When "id" already holds the chosen value the
// input is returned as-is to avoid churn. Otherwise a shallow copy with
// "id" set is returned and every other field is preserved verbatim.
func EnsureID(rec Record) Record {
	if rec == nil {
		return rec
	}
	candidate := ""
	for _, key := range idCandidates {
		if value := asString(rec[key]); value != "" {
			candidate = value
			break
		}
	}
	if candidate == "" {
		return rec
	}
	if asString(rec["id"]) == candidate {
		return rec
	}
	out := make(Record, len(rec)+1)
	for k, v := range rec {
		out[k] = v
	}
	out["id"] = candidate
	return out
}

// EnsureIDs applies EnsureID item-wise.
func EnsureIDs(recs []Record) []Record {
	if recs == nil {
		return nil
	}
	out := make([]Record, len(recs))
	for i, rec := range recs {
		out[i] = EnsureID(rec)
	}
	return out
}

// ID returns the canonical id, empty when absent.
func (r Record) ID() string {
	return asString(r["id"])
}

// String returns the field as a string, empty when missing or non-scalar.
func (r Record) String(key string) string {
	return asString(r[key])
}

// Number returns the field as a float64 when it is numeric or a numeric
// string.
func (r Record) Number(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// Child returns a nested object field, nil when missing or not an object.
func (r Record) Child(key string) Record {
	switch v := r[key].(type) {
	case Record:
		return v
	case map[string]any:
		return Record(v)
	default:
		return nil
	}
}

// Records returns a nested array-of-objects field. Non-object elements
// are skipped.
func (r Record) Records(key string) []Record {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case Record:
			out = append(out, v)
		case map[string]any:
			out = append(out, Record(v))
		}
	}
	return out
}

// Unwrap handles the backend habit of nesting the entity under its own
// key (e.g. a create response of {"employee": {"employee": {...}}}).
// It returns the nested object under key when present, else the record
// itself.
func (r Record) Unwrap(key string) Record {
	if nested := r.Child(key); nested != nil {
		return nested
	}
	return r
}

func asString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		// JSON numbers decode as float64; ids are whole numbers.
		if value == float64(int64(value)) {
			return strconv.FormatInt(int64(value), 10)
		}
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
