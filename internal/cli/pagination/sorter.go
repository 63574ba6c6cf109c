package pagination

import (
	"fmt"
	"slices"
	"strings"

	"github.com/carbonhub-app/carbonhub/internal/api"
)

// Company sort fields.
const (
	SortFieldName      = "name"
	SortFieldEmissions = "emissions"
	SortFieldIndustry  = "industry"
	SortFieldLocation  = "location"
	SortFieldID        = "id"
)

// CompanySorter sorts company listings by a validated field.
type CompanySorter struct {
	compare map[string]func(a, b api.Company) int
}

// NewCompanySorter returns a sorter for the company fields.
func NewCompanySorter() *CompanySorter {
	text := func(get func(api.Company) string) func(a, b api.Company) int {
		return func(a, b api.Company) int {
			return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
		}
	}
	return &CompanySorter{
		compare: map[string]func(a, b api.Company) int{
			SortFieldName:     text(func(c api.Company) string { return c.Name }),
			SortFieldIndustry: text(func(c api.Company) string { return c.Industry }),
			SortFieldLocation: text(func(c api.Company) string { return c.Location }),
			SortFieldID:       text(func(c api.Company) string { return c.ID }),
			SortFieldEmissions: func(a, b api.Company) int {
				switch {
				case a.AnnualEmissions < b.AnnualEmissions:
					return -1
				case a.AnnualEmissions > b.AnnualEmissions:
					return 1
				default:
					return 0
				}
			},
		},
	}
}

// IsValidField reports whether field can be sorted on.
func (s *CompanySorter) IsValidField(field string) bool {
	_, ok := s.compare[field]
	return ok
}

// GetValidFields returns the sortable fields in alphabetical order.
func (s *CompanySorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.compare))
	for f := range s.compare {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

// Sort returns a stably sorted copy of companies.
func (s *CompanySorter) Sort(companies []api.Company, field, order string) ([]api.Company, error) {
	cmp, ok := s.compare[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.GetValidFields(), ", "))
	}

	sorted := slices.Clone(companies)
	slices.SortStableFunc(sorted, func(a, b api.Company) int {
		if order == SortOrderDesc {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return sorted, nil
}
