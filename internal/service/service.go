// Package service wraps the HR API endpoints. Every function returns an
// Outcome discriminated by the backend's success flag plus a transport
// error; callers treat the two failure kinds identically.
package service

import (
	"context"
	"net/url"
	"strconv"

	"hrmobile/internal/record"
)

// Doer is the slice of the API client the services need.
type Doer interface {
	Do(ctx context.Context, method, path string, query url.Values, body any) (record.Record, error)
}

type Outcome struct {
	Success bool
	Error   string
	Payload record.Record
}

func outcomeFrom(body record.Record, err error) (Outcome, error) {
	if err != nil {
		return Outcome{}, err
	}
	success, _ := body["success"].(bool)
	return Outcome{Success: success, Error: errorMessage(body), Payload: body}, nil
}

// errorMessage tolerates both envelope shapes the backend emits: a bare
// error string and an {code, message} object.
func errorMessage(body record.Record) string {
	switch v := body["error"].(type) {
	case string:
		return v
	case map[string]any:
		rec := record.Record(v)
		if msg := rec.String("message"); msg != "" {
			return msg
		}
		return rec.String("code")
	default:
		return ""
	}
}

func pageQuery(page, limit int) url.Values {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}

func setIfPresent(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
