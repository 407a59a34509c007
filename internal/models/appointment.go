package models

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName string `gorm:"size:255;not null" json:"customer_name"`

	ServiceID *uint    `json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	// Snapshot do preço no momento da marcação; nunca recalculado
	// quando o preço do serviço muda depois.
	PriceAtTimeOfBooking float64 `gorm:"type:numeric(10,2);not null" json:"price_at_time_of_booking"`

	Date string `gorm:"size:255;not null;uniqueIndex:idx_appointments_slot" json:"date"`
	Time string `gorm:"size:255;not null;uniqueIndex:idx_appointments_slot" json:"time"`
}
