package types

import (
	"errors"
	"fmt"
	"time"
)

// DateString календарная дата в формате "YYYY-MM-DD"
// Всегда интерпретируется в локальном времени. Дата собирается и разбирается
// только через явные компоненты (год, месяц, день) - никогда через общий
// разбор ISO-строки, чтобы исключить сдвиг дня из-за UTC.
type DateString string

var (
	// ErrInvalidDateFormat возвращается при некорректном формате даты
	ErrInvalidDateFormat = errors.New("invalid date string format, expected YYYY-MM-DD")
)

// NewDateString создает DateString из явных компонентов даты
func NewDateString(year int, month time.Month, day int) DateString {
	return DateString(fmt.Sprintf("%04d-%02d-%02d", year, int(month), day))
}

// NewDateStringFromTime создает DateString из time.Time через компоненты даты
func NewDateStringFromTime(t time.Time) DateString {
	year, month, day := t.Date()
	return NewDateString(year, month, day)
}

// ParseDateString разбирает строку "YYYY-MM-DD" с валидацией
func ParseDateString(s string) (DateString, error) {
	d := DateString(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Components возвращает компоненты даты (год, месяц, день)
func (d DateString) Components() (int, time.Month, int, error) {
	var year, month, day int
	if len(d) != 10 || d[4] != '-' || d[7] != '-' {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	if _, err := fmt.Sscanf(string(d), "%4d-%2d-%2d", &year, &month, &day); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return year, time.Month(month), day, nil
}

// Validate проверяет формат и календарную корректность даты
func (d DateString) Validate() error {
	year, month, day, err := d.Components()
	if err != nil {
		return err
	}

	// Нормализация time.Date выявляет несуществующие даты (например, 2025-02-30)
	t := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	ny, nm, nd := t.Date()
	if ny != year || nm != month || nd != day {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}

	return nil
}

// IsZero проверяет, что дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Time возвращает полночь даты в локальном времени
func (d DateString) Time() (time.Time, error) {
	year, month, day, err := d.Components()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local), nil
}

// AddDays возвращает дату, сдвинутую на days дней
func (d DateString) AddDays(days int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateStringFromTime(t.AddDate(0, 0, days)), nil
}

// Before проверяет, что дата раньше other
// Для формата YYYY-MM-DD лексикографическое сравнение совпадает с календарным
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// After проверяет, что дата позже other
func (d DateString) After(other DateString) bool {
	return string(d) > string(other)
}

// InMonth проверяет принадлежность даты месяцу
func (d DateString) InMonth(year int, month time.Month) bool {
	y, m, _, err := d.Components()
	if err != nil {
		return false
	}
	return y == year && m == month
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}
