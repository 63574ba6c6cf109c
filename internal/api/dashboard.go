package api

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/carbonhub-app/carbonhub/internal/emissions"
)

// Series holds every period series of one company.
type Series struct {
	CompanyID string
	Annual    []emissions.Record
	Monthly   []emissions.Record
	Daily     []emissions.Record
}

// Records returns the series for kind.
func (s *Series) Records(kind emissions.PeriodKind) []emissions.Record {
	switch kind {
	case emissions.PeriodMonthly:
		return s.Monthly
	case emissions.PeriodDaily:
		return s.Daily
	default:
		return s.Annual
	}
}

// Dashboard fetches the annual, monthly and daily series of a company
// concurrently. The first failure cancels the other requests.
func (c *Client) Dashboard(ctx context.Context, companyID string) (*Series, error) {
	out := &Series{CompanyID: companyID}
	targets := map[emissions.PeriodKind]*[]emissions.Record{
		emissions.PeriodAnnual:  &out.Annual,
		emissions.PeriodMonthly: &out.Monthly,
		emissions.PeriodDaily:   &out.Daily,
	}

	g, gctx := errgroup.WithContext(ctx)
	for kind, dst := range targets {
		kind, dst := kind, dst
		g.Go(func() error {
			records, err := c.Emissions(gctx, kind, companyID)
			if err != nil {
				return err
			}
			*dst = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
