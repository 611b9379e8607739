package editor

import (
	"context"

	"takesell/services"
)

// Store is the document store the editor works against. The production
// implementation is backed by PocketBase's fabrics collection; tests use an
// in-memory fake.
//
// Subscribe delivers the complete current fabric set immediately and then a
// replacement full snapshot after every change, until ctx is cancelled. The
// stream carries whole snapshots, never diffs, and the latest snapshot
// always wins.
//
// Create returns the identity the store assigned to the new record. Replace
// overwrites name and prices of an existing record and fails when the
// identity no longer exists. Remove deletes by identity and is safe to call
// for an identity that is already gone.
type Store interface {
	Subscribe(ctx context.Context) (<-chan []services.Fabric, error)
	Create(ctx context.Context, name string, prices services.PriceTable) (string, error)
	Replace(ctx context.Context, id string, name string, prices services.PriceTable) error
	Remove(ctx context.Context, id string) error
}
