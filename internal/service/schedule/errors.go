package schedule

import "errors"

var (
	// ErrConfirmedSlotLocked возвращается при попытке изменить слот,
	// занятый подтвержденной встречей
	ErrConfirmedSlotLocked = errors.New("slot is locked by a confirmed appointment")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidPeriod возвращается при некорректном периоде
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidStatus возвращается при недопустимом статусе слота
	ErrInvalidStatus = errors.New("invalid slot status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule service: internal error")
)
