package get_delivery_status

import (
	"time"

	getDeliveryStatus "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_delivery_status"
)

// DeliveryStatusResponse HTTP response model
type DeliveryStatusResponse struct {
	Category         string `json:"category"`
	RemainingMinutes *int   `json:"remainingMinutes,omitempty"`
	Message          string `json:"message"`
	ScheduledDate    string `json:"scheduledDate"`
	WindowStart      string `json:"windowStart"`
	DayStatus        string `json:"dayStatus"`
}

// ToUseCaseRequest формирует запрос use case из query параметра at (RFC3339, опционально)
func ToUseCaseRequest(at string) (*getDeliveryStatus.Request, error) {
	if at == "" {
		return &getDeliveryStatus.Request{}, nil
	}
	parsed, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return nil, err
	}
	return &getDeliveryStatus.Request{At: &parsed}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDeliveryStatus.Response) *DeliveryStatusResponse {
	return &DeliveryStatusResponse{
		Category:         string(resp.Status.Category),
		RemainingMinutes: resp.Status.RemainingMinutes,
		Message:          resp.Status.Message,
		ScheduledDate:    resp.Status.Delivery.Date.String(),
		WindowStart:      resp.Status.Delivery.WindowStart.String(),
		DayStatus:        string(resp.Status.Delivery.DayStatus),
	}
}
