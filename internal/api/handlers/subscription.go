package handlers

import (
	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// SubscriptionResponse HTTP модель состояния подписки
type SubscriptionResponse struct {
	ID               int64   `json:"id"`
	PreferredWeekday string  `json:"preferredWeekday"`
	Cadence          string  `json:"cadence"`
	AnchorDate       *string `json:"anchorDate,omitempty"`
	NextDeliveryDate *string `json:"nextDeliveryDate,omitempty"`
}

// ProjectedDeliveryResponse HTTP модель доставки по подписке
type ProjectedDeliveryResponse struct {
	Date      string `json:"date"`
	IdealDate string `json:"idealDate"`
	DayStatus string `json:"dayStatus"`
	Shifted   bool   `json:"shifted"`
}

// NewSubscriptionResponse конвертирует якорь подписки в HTTP модель
func NewSubscriptionResponse(a domain.SubscriptionAnchor) SubscriptionResponse {
	return SubscriptionResponse{
		ID:               a.ID,
		PreferredWeekday: domain.WeekdayName(a.PreferredWeekday),
		Cadence:          string(a.Cadence),
		AnchorDate:       optionalDate(a.AnchorDate),
		NextDeliveryDate: optionalDate(a.NextDeliveryDate),
	}
}

// NewProjectedDeliveryResponse конвертирует доставку по подписке в HTTP модель
func NewProjectedDeliveryResponse(d domain.ProjectedDelivery) ProjectedDeliveryResponse {
	return ProjectedDeliveryResponse{
		Date:      d.Date.String(),
		IdealDate: d.IdealDate.String(),
		DayStatus: string(d.DayStatus),
		Shifted:   d.Shifted,
	}
}

func optionalDate(d domain.CalendarDate) *string {
	if d.IsZero() {
		return nil
	}
	s := d.String()
	return &s
}
