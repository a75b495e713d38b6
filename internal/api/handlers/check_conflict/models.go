package check_conflict

import (
	"time"

	checkConflict "github.com/m04kA/SMC-ScheduleService/internal/usecase/check_conflict"
)

// CheckConflictRequest HTTP request model
type CheckConflictRequest struct {
	TechnicianID *int64 `json:"technicianId,omitempty"`
	StartTime    string `json:"startTime"` // RFC 3339
	EndTime      string `json:"endTime"`   // RFC 3339
}

// ConflictingBooking пересекающееся бронирование в ответе
type ConflictingBooking struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	TechnicianID *int64 `json:"technicianId,omitempty"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// CheckConflictResponse HTTP response model
type CheckConflictResponse struct {
	Overlaps     bool                 `json:"overlaps"`
	Blocked      bool                 `json:"blocked"`
	ConflictMode string               `json:"conflictMode"`
	Conflicts    []ConflictingBooking `json:"conflicts"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictRequest) ToUseCaseRequest(userID int64) (*checkConflict.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &checkConflict.Request{
		UserID:       userID,
		TechnicianID: r.TechnicianID,
		StartTime:    startTime,
		EndTime:      endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConflict.Response) *CheckConflictResponse {
	conflicts := make([]ConflictingBooking, 0, len(resp.Conflicts))
	for _, c := range resp.Conflicts {
		conflicts = append(conflicts, ConflictingBooking{
			ID:           c.ID,
			CustomerName: c.CustomerName,
			TechnicianID: c.TechnicianID,
			StartTime:    c.StartTime.Format(time.RFC3339),
			EndTime:      c.EndTime.Format(time.RFC3339),
		})
	}

	return &CheckConflictResponse{
		Overlaps:     resp.Overlaps,
		Blocked:      resp.Blocked,
		ConflictMode: resp.ConflictMode,
		Conflicts:    conflicts,
	}
}
