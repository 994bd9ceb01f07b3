package get_calendar

import "errors"

var (
	// ErrInvalidMonth возвращается при некорректной паре (год, месяц)
	ErrInvalidMonth = errors.New("get_calendar: invalid month")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
