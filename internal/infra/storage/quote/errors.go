package quote

import "errors"

var (
	// ErrQuoteNotFound возвращается, когда заявка не найдена
	ErrQuoteNotFound = errors.New("quote.repository: quote not found")

	// ErrStorage возвращается при ошибках работы с хранилищем коллекций
	ErrStorage = errors.New("quote.repository: storage error")
)
