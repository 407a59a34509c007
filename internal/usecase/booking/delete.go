package booking

import (
	"context"

	"github.com/barbearia-cta/agenda-api/internal/audit"
	"github.com/barbearia-cta/agenda-api/internal/cache"
	domain "github.com/barbearia-cta/agenda-api/internal/domain/booking"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.BookedTimesCache
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.BookedTimesCache,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *DeleteBooking) Execute(ctx context.Context, id uint) error {
	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, ap.Date)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
