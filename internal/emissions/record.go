package emissions

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record is one raw emission entry as returned by the API. Exactly one of
// Year, Month or Date is expected to be set, matching the series' PeriodKind.
//
// Value is an optional generic measure found on mixed-shape arrays. When both
// Value and TotalTon are present, Value wins (see Resolved).
type Record struct {
	Year     *int     `json:"year,omitempty"`
	Month    string   `json:"month,omitempty"`
	Date     string   `json:"date,omitempty"`
	TotalTon float64  `json:"totalTon"`
	Value    *float64 `json:"value,omitempty"`
}

// AnnualRecord builds an annual record.
func AnnualRecord(year int, totalTon float64) Record {
	return Record{Year: &year, TotalTon: totalTon}
}

// MonthlyRecord builds a monthly record for a "YYYY-MM" month.
func MonthlyRecord(month string, totalTon float64) Record {
	return Record{Month: month, TotalTon: totalTon}
}

// DailyRecord builds a daily record for a "YYYY-MM-DD" date.
func DailyRecord(date string, totalTon float64) Record {
	return Record{Date: date, TotalTon: totalTon}
}

// Resolved returns the emission value of the record: Value when present,
// otherwise TotalTon. Negative and non-finite numbers resolve to zero.
func (r Record) Resolved() float64 {
	if r.Value != nil {
		return sanitize(*r.Value)
	}
	return sanitize(r.TotalTon)
}

// Period returns the record's period identifier, whichever field is set.
func (r Record) Period() string {
	switch {
	case r.Year != nil:
		return strconv.Itoa(*r.Year)
	case r.Month != "":
		return r.Month
	default:
		return r.Date
	}
}

// UnmarshalJSON decodes a record leniently: numbers may arrive as JSON
// numbers or numeric strings, and anything unparseable becomes zero (or
// absent for year and value) instead of failing the whole array.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Not an object: treat as an empty record rather than rejecting the series.
		*r = Record{}
		return nil //nolint:nilerr // malformed entries degrade to zero values
	}

	var out Record
	if v, ok := raw["year"]; ok {
		if f, ok := lenientNumber(v); ok {
			y := int(f)
			out.Year = &y
		}
	}
	out.Month = lenientString(raw["month"])
	out.Date = lenientString(raw["date"])
	if v, ok := raw["totalTon"]; ok {
		if f, ok := lenientNumber(v); ok {
			out.TotalTon = sanitize(f)
		}
	}
	if v, ok := raw["value"]; ok {
		if f, ok := lenientNumber(v); ok {
			out.Value = &f
		}
	}

	*r = out
	return nil
}

// lenientNumber parses a JSON number or a numeric string.
func lenientNumber(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// lenientString decodes a JSON string, or stringifies a number.
func lenientString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// sanitize clamps negative, NaN and infinite values to zero.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
