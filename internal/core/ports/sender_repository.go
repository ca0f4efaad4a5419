package ports

import (
	"context"
	"time"

	"lockerbooking/internal/core/domain/model/party"
)

// SenderRepository stores the single sender all shipments are collected from.
type SenderRepository interface {
	// Get returns the configured sender.
	// Returns errs.ObjectNotFoundError when no sender has been saved yet.
	Get(ctx context.Context) (party.Party, error)

	// Save creates the sender or replaces the stored one.
	Save(ctx context.Context, sender party.Party, updatedAt time.Time) error
}
