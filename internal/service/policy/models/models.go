package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// SavePolicyRequest запрос на сохранение политики планирования пользователя
type SavePolicyRequest struct {
	UserID                  int64  `json:"userId"`
	WorkingHoursStart       int    `json:"workingHoursStart"`
	WorkingHoursEnd         int    `json:"workingHoursEnd"`
	TimeIncrementMinutes    int    `json:"timeIncrementMinutes"`
	BufferBeforeMinutes     int    `json:"bufferBeforeMinutes"`
	BufferAfterMinutes      int    `json:"bufferAfterMinutes"`
	MaxAppointmentsPerSlot  int    `json:"maxAppointmentsPerSlot"`
	ConflictMode            string `json:"conflictMode"`
	ShowOverlappingBookings bool   `json:"showOverlappingBookings"`
}

// ToDomainPolicy конвертирует request в domain модель
func (r *SavePolicyRequest) ToDomainPolicy() *domain.SchedulingPolicy {
	userID := r.UserID
	return &domain.SchedulingPolicy{
		UserID:                  &userID,
		WorkingHoursStart:       r.WorkingHoursStart,
		WorkingHoursEnd:         r.WorkingHoursEnd,
		TimeIncrementMinutes:    r.TimeIncrementMinutes,
		BufferBeforeMinutes:     r.BufferBeforeMinutes,
		BufferAfterMinutes:      r.BufferAfterMinutes,
		MaxAppointmentsPerSlot:  r.MaxAppointmentsPerSlot,
		ConflictMode:            domain.ConflictMode(r.ConflictMode),
		ShowOverlappingBookings: r.ShowOverlappingBookings,
	}
}

// PolicyResponse ответ с политикой планирования
type PolicyResponse struct {
	ID                      int64  `json:"id,omitempty"`
	UserID                  *int64 `json:"userId,omitempty"` // nil = общая политика мастерской
	WorkingHoursStart       int    `json:"workingHoursStart"`
	WorkingHoursEnd         int    `json:"workingHoursEnd"`
	TimeIncrementMinutes    int    `json:"timeIncrementMinutes"`
	BufferBeforeMinutes     int    `json:"bufferBeforeMinutes"`
	BufferAfterMinutes      int    `json:"bufferAfterMinutes"`
	MaxAppointmentsPerSlot  int    `json:"maxAppointmentsPerSlot"`
	ConflictMode            string `json:"conflictMode"`
	ShowOverlappingBookings bool   `json:"showOverlappingBookings"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// FromDomainPolicy конвертирует domain модель в DTO
func FromDomainPolicy(p *domain.SchedulingPolicy) *PolicyResponse {
	if p == nil {
		return nil
	}

	return &PolicyResponse{
		ID:                      p.ID,
		UserID:                  p.UserID,
		WorkingHoursStart:       p.WorkingHoursStart,
		WorkingHoursEnd:         p.WorkingHoursEnd,
		TimeIncrementMinutes:    p.TimeIncrementMinutes,
		BufferBeforeMinutes:     p.BufferBeforeMinutes,
		BufferAfterMinutes:      p.BufferAfterMinutes,
		MaxAppointmentsPerSlot:  p.MaxAppointmentsPerSlot,
		ConflictMode:            string(p.ConflictMode),
		ShowOverlappingBookings: p.ShowOverlappingBookings,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
}
