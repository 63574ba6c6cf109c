package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/carbonhub-app/carbonhub/internal/emissions"
)

// Company is one entry of /emission/companies.
type Company struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
	Location string `json:"location,omitempty"`

	// AnnualEmissions is the preview total in tonnes.
	AnnualEmissions float64 `json:"annual_emissions"`
}

// UnmarshalJSON accepts numeric or string ids and an annual_emissions preview
// given as a number, a numeric string, or an array of annual records (summed).
func (c *Company) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID              json.RawMessage `json:"id"`
		Name            string          `json:"name"`
		Industry        string          `json:"industry"`
		Location        string          `json:"location"`
		AnnualEmissions json.RawMessage `json:"annual_emissions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = Company{
		ID:              rawScalar(raw.ID),
		Name:            raw.Name,
		Industry:        raw.Industry,
		Location:        raw.Location,
		AnnualEmissions: previewTotal(raw.AnnualEmissions),
	}
	return nil
}

func rawScalar(data json.RawMessage) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return string(data)
}

func previewTotal(data json.RawMessage) float64 {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return 0
	}

	if data[0] == '[' {
		var records []emissions.Record
		if err := json.Unmarshal(data, &records); err != nil {
			return 0
		}
		var total float64
		for _, r := range records {
			total += r.Resolved()
		}
		return total
	}

	f, err := strconv.ParseFloat(rawScalar(data), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// CompanyDetail is a company with its annual series attached.
type CompanyDetail struct {
	Company

	Annual []emissions.Record `json:"annual"`
}
