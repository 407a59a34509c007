package httperr

import "errors"

// Códigos de negócio usados pelo domínio de agendamento.
const (
	CodeSlotConflict        = "slot_conflict"
	CodeServiceNotFound     = "service_not_found"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeUsernameTaken       = "username_taken"
	CodeInvalidDateOrTime   = "invalid_date_or_time"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
