package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID       int64      // ID менеджера, создающего запись
	CustomerID   int64      // ID клиента мастерской
	TechnicianID *int64     // ID механика (опционально)
	StartTime    time.Time  // Начало работ
	EndTime      time.Time  // Окончание работ
	Notes        *string    // Дополнительные заметки (опционально)
}

// ConflictInfo сведения о пересечениях, обнаруженных при создании
// Носит информационный характер: окончательную согласованность обеспечивает
// сериализуемая транзакция, а не эта проверка
type ConflictInfo struct {
	Overlaps              bool    // Есть пересечения с учётом буферов
	ConflictMode          string  // Режим политики на момент проверки
	ConflictingBookingIDs []int64 // ID пересекающихся бронирований
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64     // ID созданного бронирования
	UserID       int64     // ID менеджера
	CustomerID   int64     // ID клиента
	TechnicianID *int64    // ID механика
	StartTime    time.Time // Начало работ
	EndTime      time.Time // Окончание работ
	Status       string    // Статус бронирования

	// Денормализованные данные клиента
	CustomerName        string  // Имя клиента
	VehicleBrand        *string // Марка автомобиля
	VehicleModel        *string // Модель автомобиля
	VehicleLicensePlate *string // Госномер
	Notes               *string // Заметки

	// Пересечения, обнаруженные при создании (режимы warn и allow)
	Conflict *ConflictInfo

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
