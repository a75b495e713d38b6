package create_booking

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент мастерской не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrSlotBlocked возвращается, когда политика в режиме block отклоняет
	// пересекающееся бронирование
	ErrSlotBlocked = errors.New("create_booking: slot is blocked by conflicting bookings")

	// ErrInvalidDate возвращается при попытке создать бронирование в прошлом
	ErrInvalidDate = errors.New("create_booking: booking starts in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
