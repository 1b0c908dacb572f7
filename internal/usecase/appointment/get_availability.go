package appointment

import (
	"context"
	"time"

	domain "github.com/cannaconscious/booking-api/internal/domain/appointment"
	"github.com/cannaconscious/booking-api/internal/httperr"
)

type DayAvailability struct {
	Date      string
	Available []string
	Booked    []string
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	dateStr string,
) (*DayAvailability, error) {

	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	existing, err := uc.repo.ListForDay(ctx, day, day.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	available, booked := domain.Partition(existing)

	// A fully booked day is an empty available list, not an error.
	return &DayAvailability{
		Date:      dateStr,
		Available: available,
		Booked:    booked,
	}, nil
}
