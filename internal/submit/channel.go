package submit

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
)

var (
	ErrUnknownMethod  = errors.New("unknown submission method")
	ErrDeletePayload  = errors.New("delete submissions carry no payload")
	ErrMissingPayload = errors.New("patch submissions need a payload")
)

// Handler performs the network side of a submission. An error means the
// request never produced a Result (transport failure, unexpected status).
type Handler interface {
	Handle(payload url.Values, opts Options) (Result, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(payload url.Values, opts Options) (Result, error)

func (f HandlerFunc) Handle(payload url.Values, opts Options) (Result, error) {
	return f(payload, opts)
}

// Channel sends intents through a Handler and publishes results into a Slot.
type Channel struct {
	handler Handler
	slot    *Slot
	logger  *slog.Logger
}

// NewChannel wires a handler to a result slot.
func NewChannel(handler Handler, slot *Slot, logger *slog.Logger) *Channel {
	if logger == nil {
		logger = slog.Default()
	}
	if slot == nil {
		slot = NewSlot()
	}
	return &Channel{handler: handler, slot: slot, logger: logger}
}

// Slot returns the mailbox results are published into.
func (c *Channel) Slot() *Slot {
	return c.slot
}

// Submit runs one submission. Results are published; transport errors are not.
func (c *Channel) Submit(payload url.Values, opts Options) (Result, uint64, error) {
	switch {
	case !opts.Method.Valid():
		return Result{}, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	case opts.Method == MethodDelete && payload != nil:
		return Result{}, 0, ErrDeletePayload
	case opts.Method == MethodPatch && payload == nil:
		return Result{}, 0, ErrMissingPayload
	}

	c.logger.Debug("submission started", "method", opts.Method, "fields", len(payload))
	result, err := c.handler.Handle(payload, opts)
	if err != nil {
		c.logger.Error("submission failed", "method", opts.Method, "error", err)
		return Result{}, 0, err
	}

	seq := c.slot.Publish(result)
	c.logger.Info("submission settled", "method", opts.Method, "status", result.Status, "seq", seq)
	return result, seq, nil
}
