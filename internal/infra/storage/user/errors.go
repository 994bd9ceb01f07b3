package user

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrStorage возвращается при ошибках работы с хранилищем коллекций
	ErrStorage = errors.New("user.repository: storage error")
)
