package bookings

import "context"

// SalonAPIClient интерфейс клиента API салона
type SalonAPIClient interface {
	CancelBooking(ctx context.Context, bookingID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
