package schedule_delivery

import (
	"time"

	scheduleDelivery "github.com/m04kA/SMC-DeliveryService/internal/usecase/schedule_delivery"
)

// ScheduleDeliveryRequest HTTP request model
type ScheduleDeliveryRequest struct {
	Mode             string  `json:"mode"`                       // IMMEDIATE | RECURRING
	RequestedAt      *string `json:"requestedAt,omitempty"`      // RFC3339
	PreferredWeekday *string `json:"preferredWeekday,omitempty"` // MONDAY..SUNDAY
	Cadence          *string `json:"cadence,omitempty"`          // WEEKLY | BIWEEKLY
}

// ScheduledDeliveryResponse HTTP response model
type ScheduledDeliveryResponse struct {
	Mode          string  `json:"mode"`
	ScheduledDate string  `json:"scheduledDate"` // "2026-03-06"
	WindowStart   string  `json:"windowStart"`   // "09:00"
	DayStatus     string  `json:"dayStatus"`
	IdealDate     *string `json:"idealDate,omitempty"`
	Shifted       *bool   `json:"shifted,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ScheduleDeliveryRequest) ToUseCaseRequest() (*scheduleDelivery.Request, error) {
	req := &scheduleDelivery.Request{
		Mode:             r.Mode,
		PreferredWeekday: r.PreferredWeekday,
		Cadence:          r.Cadence,
	}

	if r.RequestedAt != nil {
		requestedAt, err := time.Parse(time.RFC3339, *r.RequestedAt)
		if err != nil {
			return nil, err
		}
		req.RequestedAt = &requestedAt
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *scheduleDelivery.Response) *ScheduledDeliveryResponse {
	result := &ScheduledDeliveryResponse{
		Mode:          string(resp.Mode),
		ScheduledDate: resp.ScheduledDate.String(),
		WindowStart:   resp.WindowStart.String(),
		DayStatus:     string(resp.DayStatus),
		Shifted:       resp.Shifted,
	}
	if resp.IdealDate != nil {
		ideal := resp.IdealDate.String()
		result.IdealDate = &ideal
	}
	return result
}
