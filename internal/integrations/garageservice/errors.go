package garageservice

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент мастерской не найден
	ErrCustomerNotFound = errors.New("garageservice client: customer not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("garageservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("garageservice client: invalid response")

	// ErrTransientFetch возвращается при временной недоступности сервиса
	// Пробрасывается наверх без изменений: слой представления решает,
	// показывать ли retry
	ErrTransientFetch = errors.New("garageservice client: transient fetch error")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что GarageService недоступен и бронирование создается
	// без денормализованных данных клиента
	ErrServiceDegraded = errors.New("garageservice unavailable: graceful degradation applied")
)
