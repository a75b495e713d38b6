package garageservice

// CustomerCard карточка клиента мастерской из GarageService
type CustomerCard struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Phone        *string `json:"phone,omitempty"`
	VehicleBrand *string `json:"vehicle_brand,omitempty"`
	VehicleModel *string `json:"vehicle_model,omitempty"`
	LicensePlate *string `json:"license_plate,omitempty"`
}

// ErrorResponse модель ошибки от GarageService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
