package booking

import (
	"context"

	"github.com/barbearia-cta/agenda-api/internal/audit"
	"github.com/barbearia-cta/agenda-api/internal/cache"
	domain "github.com/barbearia-cta/agenda-api/internal/domain/booking"
	"github.com/barbearia-cta/agenda-api/internal/httperr"
	"github.com/barbearia-cta/agenda-api/internal/models"
	"github.com/barbearia-cta/agenda-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerName string
	ServiceID    uint
	Date         string
	Time         string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.BookedTimesCache
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.BookedTimesCache,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	if !validators.IsValidDate(in.Date) || !validators.IsValidTime(in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		CustomerName: in.CustomerName,
		ServiceID:    &service.ID,
		// Preço congelado no momento da marcação.
		PriceAtTimeOfBooking: service.Price,
		Date:                 in.Date,
		Time:                 in.Time,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotConflict) {
			uc.audit.Dispatch(audit.Event{
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"date": in.Date,
					"time": in.Time,
				},
			})
		}
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.Date)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
