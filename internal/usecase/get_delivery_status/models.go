package get_delivery_status

import (
	"time"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// Request модель запроса состояния баннера
type Request struct {
	At *time.Time // момент, по умолчанию текущее время
}

// Response состояние баннера обратного отсчета
type Response struct {
	Status domain.StatusDescription
}
