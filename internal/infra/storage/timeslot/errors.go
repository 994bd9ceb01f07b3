package timeslot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("timeslot.repository: slot not found")

	// ErrStorage возвращается при ошибках работы с хранилищем коллекций
	ErrStorage = errors.New("timeslot.repository: storage error")
)
