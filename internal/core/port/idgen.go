package port

import (
	"github.com/robekc/topup-service/internal/core/domain"
)

//go:generate mockgen -source=idgen.go -destination=mock/idgen.go -package=mock

// IDGenerator mints order ids. Swappable so tests get deterministic ids.
type IDGenerator interface {
	NewOrderID() domain.OrderID
}
