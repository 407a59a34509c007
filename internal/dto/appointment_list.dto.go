package dto

import "github.com/barbearia-cta/agenda-api/internal/models"

type AppointmentListDTO struct {
	ID           uint    `json:"id"`
	CustomerName string  `json:"customer_name"`
	ServiceID    *uint   `json:"service_id"`
	ServiceName  string  `json:"service_name"`
	Price        float64 `json:"price_at_time_of_booking"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	out := AppointmentListDTO{
		ID:           ap.ID,
		CustomerName: ap.CustomerName,
		ServiceID:    ap.ServiceID,
		Price:        ap.PriceAtTimeOfBooking,
		Date:         ap.Date,
		Time:         ap.Time,
	}
	if ap.Service != nil {
		out.ServiceName = ap.Service.Name
	}
	return out
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
