package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/CWT-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	if req.Period == "" {
		return fmt.Errorf("%w: period is required", ErrInvalidInput)
	}

	if req.UserID == "" && req.Email == "" {
		return fmt.Errorf("%w: userId or email is required", ErrInvalidInput)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования
// [сегодня, сегодня + horizonDays], обе границы включительно
func validateDate(date types.DateString, now time.Time, horizonDays int) error {
	today := types.NewDateStringFromTime(now)

	if date.Before(today) {
		return ErrDateInPast
	}

	maxDate, err := today.AddDays(horizonDays)
	if err != nil {
		return fmt.Errorf("%w: failed to compute booking horizon: %v", ErrInternal, err)
	}
	if date.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, horizonDays)
	}

	return nil
}
