// Package messages collects user-facing warnings and errors that must not
// abort the operation that produced them. The UI drains them with the
// Consume methods.
package messages

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/ledgerkeeper/internal/logging"
)

// Sink receives non-fatal messages meant for the end user.
type Sink interface {
	AddError(msg string)
	AddWarning(msg string)
}

// Aggregator is a Sink that buffers messages until consumed.
// It is safe for concurrent use.
type Aggregator struct {
	mu       sync.Mutex
	errors   []string
	warnings []string
	logger   logging.Logger
}

// NewAggregator returns an empty Aggregator. If logger is non-nil every
// message is also logged.
func NewAggregator(logger logging.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

func (a *Aggregator) AddError(msg string) {
	a.mu.Lock()
	a.errors = append(a.errors, msg)
	a.mu.Unlock()

	if a.logger != nil {
		a.logger.Error(context.Background(), msg, "source", "messages")
	}
}

func (a *Aggregator) AddWarning(msg string) {
	a.mu.Lock()
	a.warnings = append(a.warnings, msg)
	a.mu.Unlock()

	if a.logger != nil {
		a.logger.Warn(context.Background(), msg, "source", "messages")
	}
}

// ConsumeErrors returns the buffered errors in insertion order and clears them.
func (a *Aggregator) ConsumeErrors() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := a.errors
	a.errors = nil
	return out
}

// ConsumeWarnings returns the buffered warnings in insertion order and clears them.
func (a *Aggregator) ConsumeWarnings() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := a.warnings
	a.warnings = nil
	return out
}

// Pending reports how many errors and warnings are waiting to be consumed.
func (a *Aggregator) Pending() (errs, warnings int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.errors), len(a.warnings)
}
