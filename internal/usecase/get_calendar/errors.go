package get_calendar

import "errors"

var (
	// ErrUnknownGranularity возвращается при неизвестной гранулярности календаря
	ErrUnknownGranularity = errors.New("get_calendar: unknown granularity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
