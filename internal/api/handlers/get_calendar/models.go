package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule"
	getCalendar "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_calendar"
)

// BookingSummary краткие сведения о бронировании в календаре
type BookingSummary struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	TechnicianID *int64 `json:"technicianId,omitempty"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Status       string `json:"status"`
}

// SlotDTO слот дневной сетки
type SlotDTO struct {
	Start       string           `json:"start"`
	End         string           `json:"end"`
	Class       string           `json:"class"` // past, current или future
	Overlapping bool             `json:"overlapping"`
	Overbooked  bool             `json:"overbooked"`
	Bookings    []BookingSummary `json:"bookings"`
}

// DayViewDTO представление одного дня
type DayViewDTO struct {
	Date  string    `json:"date"` // YYYY-MM-DD
	Slots []SlotDTO `json:"slots"`
}

// CurrentTimeMarkDTO положение индикатора текущего времени в недельной сетке
type CurrentTimeMarkDTO struct {
	Time     string  `json:"time"`
	DayIndex int     `json:"dayIndex"` // -1, если текущий день вне недели
	Offset   float64 `json:"offset"`   // Доля рабочего дня, [0, 1]
}

// WeekViewDTO представление недели (7 колонок, начало с воскресенья)
type WeekViewDTO struct {
	WeekStart string             `json:"weekStart"` // YYYY-MM-DD
	Days      []DayViewDTO       `json:"days"`
	Now       CurrentTimeMarkDTO `json:"now"`
}

// MonthCellDTO ячейка месячной сетки
type MonthCellDTO struct {
	Date     string           `json:"date"` // YYYY-MM-DD
	InMonth  bool             `json:"inMonth"`
	Class    string           `json:"class"` // past, today или future
	Bookings []BookingSummary `json:"bookings"`
}

// MonthViewDTO представление месяца: сетка 6x7
type MonthViewDTO struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []MonthCellDTO `json:"cells"`
}

// CalendarResponse HTTP response model
// Заполнено ровно одно из полей Day, Week, Month в соответствии с granularity
type CalendarResponse struct {
	Granularity string        `json:"granularity"`
	From        string        `json:"from"` // YYYY-MM-DD
	To          string        `json:"to"`   // YYYY-MM-DD
	Day         *DayViewDTO   `json:"day,omitempty"`
	Week        *WeekViewDTO  `json:"week,omitempty"`
	Month       *MonthViewDTO `json:"month,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	result := &CalendarResponse{
		Granularity: string(resp.Granularity),
		From:        resp.From.Format(domain.DateFormat),
		To:          resp.To.Format(domain.DateFormat),
	}

	view := resp.View
	switch {
	case view.Day != nil:
		result.Day = dayViewDTO(view.Day)
	case view.Week != nil:
		result.Week = weekViewDTO(view.Week)
	case view.Month != nil:
		result.Month = monthViewDTO(view.Month)
	}

	return result
}

func dayViewDTO(day *schedule.DayView) *DayViewDTO {
	slots := make([]SlotDTO, 0, len(day.Slots))
	for _, slot := range day.Slots {
		slots = append(slots, SlotDTO{
			Start:       slot.Start.Format(time.RFC3339),
			End:         slot.End.Format(time.RFC3339),
			Class:       string(slot.Class),
			Overlapping: slot.Overlapping,
			Overbooked:  slot.Overbooked,
			Bookings:    bookingSummaries(slot.Bookings),
		})
	}

	return &DayViewDTO{
		Date:  day.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}

func weekViewDTO(week *schedule.WeekView) *WeekViewDTO {
	days := make([]DayViewDTO, 0, len(week.Days))
	for i := range week.Days {
		days = append(days, *dayViewDTO(&week.Days[i]))
	}

	return &WeekViewDTO{
		WeekStart: week.WeekStart.Format(domain.DateFormat),
		Days:      days,
		Now: CurrentTimeMarkDTO{
			Time:     week.Now.Time.Format(time.RFC3339),
			DayIndex: week.Now.DayIndex,
			Offset:   week.Now.Offset,
		},
	}
}

func monthViewDTO(month *schedule.MonthView) *MonthViewDTO {
	cells := make([]MonthCellDTO, 0, len(month.Cells))
	for _, cell := range month.Cells {
		cells = append(cells, MonthCellDTO{
			Date:     cell.Date.Format(domain.DateFormat),
			InMonth:  cell.InMonth,
			Class:    string(cell.Class),
			Bookings: bookingSummaries(cell.Bookings),
		})
	}

	return &MonthViewDTO{
		Year:  month.Year,
		Month: int(month.Month),
		Cells: cells,
	}
}

func bookingSummaries(bookings []*domain.Booking) []BookingSummary {
	result := make([]BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, BookingSummary{
			ID:           b.ID,
			CustomerName: b.CustomerName,
			TechnicianID: b.TechnicianID,
			StartTime:    b.StartTime.Format(time.RFC3339),
			EndTime:      b.EndTime.Format(time.RFC3339),
			Status:       string(b.Status),
		})
	}
	return result
}
