package idgen

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/robekc/topup-service/internal/core/domain"
)

// orderIDPrefix is the storefront brand tag carried on every order id.
const orderIDPrefix = "ROBEKC-"

// ULIDGenerator mints order ids as prefix + ULID: monotonic within one
// millisecond, random beyond that, sortable by creation time.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (g *ULIDGenerator) NewOrderID() domain.OrderID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
	return domain.OrderID(orderIDPrefix + id.String())
}
