package trip

import (
	"context"
	"sync"

	"github.com/wibowo/kurir/internal/pkg/models"
)

// DeferredConfirm is a ConfirmPrompt resolved over the HTTP API: the
// completion flow parks on Confirm while the device shows the prompt, and
// a later request resolves it with the driver's answer.
type DeferredConfirm struct {
	mu      sync.Mutex
	pending *models.CompletionPrompt
	answer  chan bool
}

// NewDeferredConfirm creates an idle prompt.
func NewDeferredConfirm() *DeferredConfirm {
	return &DeferredConfirm{}
}

// Confirm parks until Resolve supplies an answer or ctx is cancelled.
// Only one confirmation may be pending at a time.
func (d *DeferredConfirm) Confirm(ctx context.Context, prompt models.CompletionPrompt) (bool, error) {
	d.mu.Lock()
	if d.pending != nil {
		d.mu.Unlock()
		return false, ErrConfirmationPending
	}
	p := prompt
	d.pending = &p
	answer := make(chan bool, 1)
	d.answer = answer
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.pending = nil
		d.answer = nil
		d.mu.Unlock()
	}()

	select {
	case ok := <-answer:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Pending returns the prompt currently awaiting an answer, or nil.
func (d *DeferredConfirm) Pending() *models.CompletionPrompt {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Resolve answers the pending confirmation.
func (d *DeferredConfirm) Resolve(accept bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.answer == nil {
		return ErrNoPendingConfirmation
	}
	d.answer <- accept
	d.answer = nil
	return nil
}
