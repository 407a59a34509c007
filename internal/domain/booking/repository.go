package booking

import (
	"context"

	"github.com/barbearia-cta/agenda-api/internal/models"
)

type Repository interface {
	// -------- Catálogo --------
	ListServices(ctx context.Context) ([]models.Service, error)

	GetService(ctx context.Context, id uint) (*models.Service, error)

	// -------- Agendamentos --------
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	ListBookedTimes(ctx context.Context, date string) ([]string, error)

	// CreateAppointment insere o agendamento; a violação do índice único
	// de ("date","time") é traduzida para slot_conflict.
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	DeleteAppointment(ctx context.Context, id uint) error

	// -------- Usuários --------
	CreateUser(ctx context.Context, u *models.User) error

	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}
