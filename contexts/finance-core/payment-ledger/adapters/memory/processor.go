package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"parcelhub/contexts/finance-core/payment-ledger/domain/entities"
)

// Processor fakes the card processor. Set FailWith to make every call fail.
type Processor struct {
	mu       sync.Mutex
	FailWith error
	calls    int
	sequence uint64
}

func NewProcessor() *Processor {
	return &Processor{}
}

func (p *Processor) CreateIntent(_ context.Context, amountMinor int64, currency string) (entities.PaymentIntent, error) {
	p.mu.Lock()
	p.calls++
	failure := p.FailWith
	p.mu.Unlock()

	if failure != nil {
		return entities.PaymentIntent{}, failure
	}
	n := atomic.AddUint64(&p.sequence, 1)
	intentID := fmt.Sprintf("pi_mem_%06d", n)
	return entities.PaymentIntent{
		IntentID:     intentID,
		ClientSecret: intentID + "_secret_" + strings.ToLower(currency),
		AmountMinor:  amountMinor,
		Currency:     currency,
	}, nil
}

// Calls reports how many intents were requested.
func (p *Processor) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
