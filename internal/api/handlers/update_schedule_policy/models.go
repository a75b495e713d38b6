package update_schedule_policy

import "github.com/m04kA/SMC-ScheduleService/internal/service/policy/models"

// UpdatePolicyRequest HTTP request model
// Политика сохраняется целиком: при невалидном поле отклоняется весь запрос
type UpdatePolicyRequest struct {
	WorkingHoursStart       int    `json:"workingHoursStart"`
	WorkingHoursEnd         int    `json:"workingHoursEnd"`
	TimeIncrementMinutes    int    `json:"timeIncrementMinutes"`
	BufferBeforeMinutes     int    `json:"bufferBeforeMinutes"`
	BufferAfterMinutes      int    `json:"bufferAfterMinutes"`
	MaxAppointmentsPerSlot  int    `json:"maxAppointmentsPerSlot"`
	ConflictMode            string `json:"conflictMode"`
	ShowOverlappingBookings bool   `json:"showOverlappingBookings"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdatePolicyRequest) ToServiceRequest(userID int64) *models.SavePolicyRequest {
	return &models.SavePolicyRequest{
		UserID:                  userID,
		WorkingHoursStart:       r.WorkingHoursStart,
		WorkingHoursEnd:         r.WorkingHoursEnd,
		TimeIncrementMinutes:    r.TimeIncrementMinutes,
		BufferBeforeMinutes:     r.BufferBeforeMinutes,
		BufferAfterMinutes:      r.BufferAfterMinutes,
		MaxAppointmentsPerSlot:  r.MaxAppointmentsPerSlot,
		ConflictMode:            r.ConflictMode,
		ShowOverlappingBookings: r.ShowOverlappingBookings,
	}
}
