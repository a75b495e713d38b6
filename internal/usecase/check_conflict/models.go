package check_conflict

import "time"

// Request модель запроса на проверку конфликтов
type Request struct {
	UserID       int64     // ID менеджера, чья политика применяется
	TechnicianID *int64    // ID механика (опционально)
	StartTime    time.Time // Начало предлагаемого интервала
	EndTime      time.Time // Окончание предлагаемого интервала
}

// ConflictingBooking краткие сведения о пересекающемся бронировании
type ConflictingBooking struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customerName"`
	TechnicianID *int64    `json:"technicianId,omitempty"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
}

// Response модель ответа с вердиктом проверки
// Вердикт носит рекомендательный характер: он вычислен по снимку бронирований
// и может устареть к моменту фактической записи
type Response struct {
	Overlaps     bool                 `json:"overlaps"`
	Blocked      bool                 `json:"blocked"`
	ConflictMode string               `json:"conflictMode"`
	Conflicts    []ConflictingBooking `json:"conflicts"`
}
