package store

import "hrmobile/internal/record"

// prepend puts the newest record first.
func prepend(list []record.Record, rec record.Record) []record.Record {
	out := make([]record.Record, 0, len(list)+1)
	out = append(out, rec)
	return append(out, list...)
}

// replaceByID swaps the element whose canonical id matches. No match
// leaves the list unchanged; that silent no-op is accepted behavior.
func replaceByID(list []record.Record, id string, rec record.Record) []record.Record {
	out := make([]record.Record, len(list))
	for i, item := range list {
		if item.ID() == id {
			out[i] = rec
		} else {
			out[i] = item
		}
	}
	return out
}

// removeByID drops every element with the given canonical id, tolerating
// duplicate-id corruption even though collections should never hold two
// records with the same id.
func removeByID(list []record.Record, id string) []record.Record {
	out := make([]record.Record, 0, len(list))
	for _, item := range list {
		if item.ID() != id {
			out = append(out, item)
		}
	}
	return out
}

// totalFrom resolves the pagination total through the fixed fallback
// chain: payload total, then pagination total/count/totalCount, then the
// fetched slice length. Never negative.
func totalFrom(payload record.Record, sliceLen int) int {
	if v, ok := payload.Number("total"); ok {
		return clampTotal(int(v))
	}
	if p := payload.Child("pagination"); p != nil {
		for _, key := range []string{"total", "count", "totalCount"} {
			if v, ok := p.Number(key); ok {
				return clampTotal(int(v))
			}
		}
	}
	return clampTotal(sliceLen)
}

func clampTotal(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// recordsOrValues reads an array field that some backend builds return
// as an object keyed by id; object values are flattened into a slice.
func recordsOrValues(payload record.Record, key string) []record.Record {
	if recs := payload.Records(key); recs != nil {
		return recs
	}
	if child := payload.Child(key); child != nil {
		out := make([]record.Record, 0, len(child))
		for _, v := range child {
			if m, ok := v.(map[string]any); ok {
				out = append(out, record.Record(m))
			}
		}
		return out
	}
	return []record.Record{}
}
