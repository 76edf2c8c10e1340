// internal/app/store/activity/record.go
package activity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is one raw entry of /activity/recent/ as the API sends it.
//
// Fields are kept loosely typed: the API has shipped numeric ids and the
// occasional non-string status, and none of that may reject the record.
// Validation of the enumerations happens in NormalizeRecord.
type Record struct {
	ID           any         `json:"id"`
	ActivityType any         `json:"activity_type"`
	Description  any         `json:"description"`
	User         *RecordUser `json:"user"`
	CreatedAt    any         `json:"created_at"`
	Status       any         `json:"status"`
}

// RecordUser is the optional user object on a Record.
type RecordUser struct {
	FirstName      any `json:"first_name"`
	LastName       any `json:"last_name"`
	ProfilePicture any `json:"profile_picture"`
}

// ValidateRecords checks that body is a JSON array of objects and decodes it.
// It either returns every record, in order, or an error naming the first
// problem; it never drops entries.
func ValidateRecords(body []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("expected a JSON array of activity records")
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("decode activity records: %w", err)
	}

	records := make([]Record, len(elems))
	for i, elem := range elems {
		e := bytes.TrimSpace(elem)
		if len(e) == 0 || e[0] != '{' {
			return nil, fmt.Errorf("activity record %d: expected a JSON object", i)
		}
		// UseNumber keeps numeric ids as their literal digits.
		dec := json.NewDecoder(bytes.NewReader(e))
		dec.UseNumber()
		if err := dec.Decode(&records[i]); err != nil {
			return nil, fmt.Errorf("activity record %d: %w", i, err)
		}
	}
	return records, nil
}

// text renders a loosely typed JSON scalar as a string. Strings pass through;
// numbers keep the digits the API sent; anything else is "".
func text(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// enumText is like text but only accepts strings, so that a numeric or
// boolean activity_type/status counts as an invalid value.
func enumText(v any) string {
	s, _ := v.(string)
	return s
}
