package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrDateInPast возвращается, когда запрошенная дата уже прошла
	ErrDateInPast = errors.New("create_appointment: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата выходит за горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrSlotNotAvailable возвращается, когда слот на (дату, период) недоступен для бронирования
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrPeriodAlreadyRequested возвращается, когда на (дату, период) уже есть заявка
	ErrPeriodAlreadyRequested = errors.New("create_appointment: period already has an appointment request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
