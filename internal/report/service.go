// AngelaMos | 2026
// service.go

package report

import (
	"context"
	"time"

	"github.com/primebid/auction-api/internal/commission"
	"github.com/primebid/auction-api/internal/middleware"
	"github.com/primebid/auction-api/internal/user"
)

const monthsPerYear = 12

type Service struct {
	commissions commission.Repository
	users       user.Repository
	now         func() time.Time
}

func NewService(
	commissions commission.Repository,
	users user.Repository,
) *Service {
	return &Service{
		commissions: commissions,
		users:       users,
		now:         time.Now,
	}
}

// MonthlyIncome returns commission revenue for the current calendar year as
// a 12-element array, index 0 = January. Months with no commissions stay at
// zero, so the array always sums to the year's total.
func (s *Service) MonthlyIncome(ctx context.Context) ([]float64, error) {
	totals, err := s.commissions.MonthlyTotals(ctx, s.now().Year())
	if err != nil {
		return nil, err
	}

	dense := make([]float64, monthsPerYear)
	for _, t := range totals {
		if t.Month >= 1 && t.Month <= monthsPerYear {
			dense[t.Month-1] += t.Total
		}
	}

	return dense, nil
}

// MonthlyRegistrations returns two 12-element arrays of new bidder and
// auctioneer accounts per month of the current calendar year.
func (s *Service) MonthlyRegistrations(
	ctx context.Context,
) (bidders, auctioneers []int, err error) {
	year := s.now().Year()

	bidderCounts, err := s.users.MonthlyRegistrations(
		ctx,
		middleware.RoleBidder,
		year,
	)
	if err != nil {
		return nil, nil, err
	}

	auctioneerCounts, err := s.users.MonthlyRegistrations(
		ctx,
		middleware.RoleAuctioneer,
		year,
	)
	if err != nil {
		return nil, nil, err
	}

	return densifyCounts(bidderCounts), densifyCounts(auctioneerCounts), nil
}

func densifyCounts(counts []user.MonthlyCount) []int {
	dense := make([]int, monthsPerYear)
	for _, c := range counts {
		if c.Month >= 1 && c.Month <= monthsPerYear {
			dense[c.Month-1] += c.Count
		}
	}
	return dense
}
