package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID   int64   `json:"customerId"`
	TechnicianID *int64  `json:"technicianId,omitempty"`
	StartTime    string  `json:"startTime"` // RFC 3339, например "2025-10-15T10:00:00Z"
	EndTime      string  `json:"endTime"`   // RFC 3339
	Notes        *string `json:"notes,omitempty"`
}

// ConflictInfo сведения о пересечениях в ответе
type ConflictInfo struct {
	Overlaps              bool    `json:"overlaps"`
	ConflictMode          string  `json:"conflictMode"`
	ConflictingBookingIDs []int64 `json:"conflictingBookingIds"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                  int64         `json:"id"`
	UserID              int64         `json:"userId"`
	CustomerID          int64         `json:"customerId"`
	TechnicianID        *int64        `json:"technicianId,omitempty"`
	StartTime           string        `json:"startTime"`
	EndTime             string        `json:"endTime"`
	Status              string        `json:"status"`
	CustomerName        string        `json:"customerName"`
	VehicleBrand        *string       `json:"vehicleBrand,omitempty"`
	VehicleModel        *string       `json:"vehicleModel,omitempty"`
	VehicleLicensePlate *string       `json:"vehicleLicensePlate,omitempty"`
	Notes               *string       `json:"notes,omitempty"`
	Conflict            *ConflictInfo `json:"conflict,omitempty"`
	CreatedAt           string        `json:"createdAt"`
	UpdatedAt           string        `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:       userID,
		CustomerID:   r.CustomerID,
		TechnicianID: r.TechnicianID,
		StartTime:    startTime,
		EndTime:      endTime,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	result := &BookingResponse{
		ID:                  resp.ID,
		UserID:              resp.UserID,
		CustomerID:          resp.CustomerID,
		TechnicianID:        resp.TechnicianID,
		StartTime:           resp.StartTime.Format(time.RFC3339),
		EndTime:             resp.EndTime.Format(time.RFC3339),
		Status:              resp.Status,
		CustomerName:        resp.CustomerName,
		VehicleBrand:        resp.VehicleBrand,
		VehicleModel:        resp.VehicleModel,
		VehicleLicensePlate: resp.VehicleLicensePlate,
		Notes:               resp.Notes,
		CreatedAt:           resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.Conflict != nil {
		result.Conflict = &ConflictInfo{
			Overlaps:              resp.Conflict.Overlaps,
			ConflictMode:          resp.Conflict.ConflictMode,
			ConflictingBookingIDs: resp.Conflict.ConflictingBookingIDs,
		}
	}

	return result
}
