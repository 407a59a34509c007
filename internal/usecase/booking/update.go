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

type UpdateBookingInput struct {
	ID           uint
	CustomerName string
	ServiceID    uint
	Date         string
	Time         string
}

type UpdateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.BookedTimesCache
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.BookedTimesCache,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (*models.Appointment, error) {

	if !validators.IsValidDate(in.Date) || !validators.IsValidTime(in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	oldDate := ap.Date

	// Troca de serviço refaz o snapshot de preço; manter o mesmo
	// serviço preserva o preço congelado na marcação original.
	if ap.ServiceID == nil || *ap.ServiceID != in.ServiceID {
		service, err := uc.repo.GetService(ctx, in.ServiceID)
		if err != nil {
			return nil, err
		}
		ap.ServiceID = &service.ID
		ap.PriceAtTimeOfBooking = service.Price
	}

	ap.CustomerName = in.CustomerName
	ap.Date = in.Date
	ap.Time = in.Time
	ap.Service = nil

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, oldDate, ap.Date)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
