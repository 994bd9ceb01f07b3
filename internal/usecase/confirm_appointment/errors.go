package confirm_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда встреча не найдена
	ErrAppointmentNotFound = errors.New("confirm_appointment: appointment not found")

	// ErrAlreadyConfirmed возвращается при повторном подтверждении встречи
	ErrAlreadyConfirmed = errors.New("confirm_appointment: appointment is already confirmed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_appointment: internal error")
)
