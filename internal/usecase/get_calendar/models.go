package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/schedule"
)

// Request модель запроса на получение календаря
type Request struct {
	UserID      int64     // ID менеджера, чья политика применяется
	Granularity string    // day, week или month
	Date        time.Time // Опорная дата представления
}

// Response модель ответа с представлением календаря
type Response struct {
	Granularity schedule.Granularity // Гранулярность представления
	From        time.Time            // Начало отображаемого диапазона
	To          time.Time            // Конец отображаемого диапазона (включительно)
	View        *schedule.ViewModel  // Готовая к отрисовке модель
}
