package booking

import (
	"context"
	"testing"

	"github.com/barbearia-cta/agenda-api/internal/httperr"
	"github.com/barbearia-cta/agenda-api/internal/models"
)

type fakeRepo struct {
	listServicesFn      func(ctx context.Context) ([]models.Service, error)
	getServiceFn        func(ctx context.Context, id uint) (*models.Service, error)
	listAppointmentsFn  func(ctx context.Context) ([]models.Appointment, error)
	getAppointmentFn    func(ctx context.Context, id uint) (*models.Appointment, error)
	listBookedTimesFn   func(ctx context.Context, date string) ([]string, error)
	createAppointmentFn func(ctx context.Context, ap *models.Appointment) error
	updateAppointmentFn func(ctx context.Context, ap *models.Appointment) error
	deleteAppointmentFn func(ctx context.Context, id uint) error
	createUserFn        func(ctx context.Context, u *models.User) error
	getUserFn           func(ctx context.Context, username string) (*models.User, error)
}

func (f *fakeRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	if f.listServicesFn == nil {
		panic("ListServices not configured")
	}
	return f.listServicesFn(ctx)
}

func (f *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	if f.getServiceFn == nil {
		panic("GetService not configured")
	}
	return f.getServiceFn(ctx, id)
}

func (f *fakeRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	if f.listAppointmentsFn == nil {
		panic("ListAppointments not configured")
	}
	return f.listAppointmentsFn(ctx)
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	if f.getAppointmentFn == nil {
		panic("GetAppointment not configured")
	}
	return f.getAppointmentFn(ctx, id)
}

func (f *fakeRepo) ListBookedTimes(ctx context.Context, date string) ([]string, error) {
	if f.listBookedTimesFn == nil {
		panic("ListBookedTimes not configured")
	}
	return f.listBookedTimesFn(ctx, date)
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.createAppointmentFn == nil {
		panic("CreateAppointment not configured")
	}
	return f.createAppointmentFn(ctx, ap)
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.updateAppointmentFn == nil {
		panic("UpdateAppointment not configured")
	}
	return f.updateAppointmentFn(ctx, ap)
}

func (f *fakeRepo) DeleteAppointment(ctx context.Context, id uint) error {
	if f.deleteAppointmentFn == nil {
		panic("DeleteAppointment not configured")
	}
	return f.deleteAppointmentFn(ctx, id)
}

func (f *fakeRepo) CreateUser(ctx context.Context, u *models.User) error {
	if f.createUserFn == nil {
		panic("CreateUser not configured")
	}
	return f.createUserFn(ctx, u)
}

func (f *fakeRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getUserFn == nil {
		panic("GetUserByUsername not configured")
	}
	return f.getUserFn(ctx, username)
}

func corteDeCabelo() *models.Service {
	return &models.Service{ID: 1, Name: "Corte de Cabelo", Price: 35.00}
}

func TestCreateBooking_InvalidDate(t *testing.T) {
	uc := NewCreateBooking(&fakeRepo{}, nil, nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerName: "Ana",
		ServiceID:    1,
		Date:         "01/05/2024",
		Time:         "09:00",
	})
	if !httperr.IsBusiness(err, httperr.CodeInvalidDateOrTime) {
		t.Fatalf("err = %v, want invalid_date_or_time", err)
	}
}

func TestCreateBooking_TimeMustBeHalfHour(t *testing.T) {
	uc := NewCreateBooking(&fakeRepo{}, nil, nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerName: "Ana",
		ServiceID:    1,
		Date:         "2024-05-01",
		Time:         "09:15",
	})
	if !httperr.IsBusiness(err, httperr.CodeInvalidDateOrTime) {
		t.Fatalf("err = %v, want invalid_date_or_time", err)
	}
}

func TestCreateBooking_ServiceNotFound(t *testing.T) {
	uc := NewCreateBooking(&fakeRepo{
		getServiceFn: func(ctx context.Context, id uint) (*models.Service, error) {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		},
	}, nil, nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerName: "Ana",
		ServiceID:    99,
		Date:         "2024-05-01",
		Time:         "09:00",
	})
	if !httperr.IsBusiness(err, httperr.CodeServiceNotFound) {
		t.Fatalf("err = %v, want service_not_found", err)
	}
}

func TestCreateBooking_SnapshotsServicePrice(t *testing.T) {
	var stored *models.Appointment

	uc := NewCreateBooking(&fakeRepo{
		getServiceFn: func(ctx context.Context, id uint) (*models.Service, error) {
			return corteDeCabelo(), nil
		},
		createAppointmentFn: func(ctx context.Context, ap *models.Appointment) error {
			ap.ID = 7
			stored = ap
			return nil
		},
	}, nil, nil)

	ap, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerName: "Ana",
		ServiceID:    1,
		Date:         "2024-05-01",
		Time:         "09:00",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if ap.ID != 7 {
		t.Errorf("id = %d, want 7", ap.ID)
	}
	if stored.PriceAtTimeOfBooking != 35.00 {
		t.Errorf("price snapshot = %v, want 35.00", stored.PriceAtTimeOfBooking)
	}
	if stored.ServiceID == nil || *stored.ServiceID != 1 {
		t.Errorf("service_id = %v, want 1", stored.ServiceID)
	}
}

func TestCreateBooking_SlotConflictPropagates(t *testing.T) {
	uc := NewCreateBooking(&fakeRepo{
		getServiceFn: func(ctx context.Context, id uint) (*models.Service, error) {
			return corteDeCabelo(), nil
		},
		createAppointmentFn: func(ctx context.Context, ap *models.Appointment) error {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		},
	}, nil, nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CustomerName: "Ana",
		ServiceID:    1,
		Date:         "2024-05-01",
		Time:         "09:00",
	})
	if !httperr.IsBusiness(err, httperr.CodeSlotConflict) {
		t.Fatalf("err = %v, want slot_conflict", err)
	}
}
