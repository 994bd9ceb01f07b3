package domain

// Default values for newly created time slots
const (
	DefaultMaxBookings     = 3
	DefaultCurrentBookings = 0
)

// DefaultBookingHorizonDays окно бронирования для клиентов: слот можно
// выбрать не дальше, чем через столько дней от сегодняшнего
// Админский календарь этим окном не ограничен
const DefaultBookingHorizonDays = 14

// Record Store collection names
const (
	CollectionQuotes    = "quotes"
	CollectionTimeSlots = "timeSlots"
	CollectionUsers     = "users"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
