// Package store backs the editor's document-store contract with a
// PocketBase collection. Record lifecycle hooks feed a live subscription
// that always delivers the complete current fabric set.
package store

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/pocketbase/pocketbase/core"

	"takesell/services"
)

// CollectionFabrics is the collection the calculator synchronizes with.
const CollectionFabrics = "fabrics"

// Fabrics exposes the fabrics collection as a subscribable document store.
type Fabrics struct {
	app core.App

	mu   sync.Mutex
	subs map[chan []services.Fabric]struct{}
}

// New creates a store bound to the app and registers the record hooks that
// drive the subscription feed. Call before the app starts serving so no
// change is missed.
func New(app core.App) *Fabrics {
	s := &Fabrics{
		app:  app,
		subs: make(map[chan []services.Fabric]struct{}),
	}

	app.OnRecordAfterCreateSuccess(CollectionFabrics).BindFunc(func(e *core.RecordEvent) error {
		s.broadcast()
		return e.Next()
	})
	app.OnRecordAfterUpdateSuccess(CollectionFabrics).BindFunc(func(e *core.RecordEvent) error {
		s.broadcast()
		return e.Next()
	})
	app.OnRecordAfterDeleteSuccess(CollectionFabrics).BindFunc(func(e *core.RecordEvent) error {
		s.broadcast()
		return e.Next()
	})

	return s
}

// Subscribe returns a stream of full fabric-set snapshots: the current set
// immediately, then a replacement snapshot after every change. The channel
// is buffered with the latest snapshot winning, and is closed when ctx is
// cancelled.
func (s *Fabrics) Subscribe(ctx context.Context) (<-chan []services.Fabric, error) {
	ch := make(chan []services.Fabric, 1)

	// Register before taking the initial snapshot so a record change landing
	// in between broadcasts into ch instead of being missed.
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	snap, err := s.snapshot()
	if err != nil {
		s.mu.Lock()
		delete(s.subs, ch)
		s.mu.Unlock()
		return nil, err
	}

	select {
	case ch <- snap:
	default:
		// A broadcast beat the initial snapshot into the buffer; its
		// snapshot is at least as fresh, so keep it.
	}

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, ch)
		close(ch)
		s.mu.Unlock()
	}()

	return ch, nil
}

// Create inserts a new fabric record and returns its assigned identity.
func (s *Fabrics) Create(ctx context.Context, name string, prices services.PriceTable) (string, error) {
	col, err := s.app.FindCollectionByNameOrId(CollectionFabrics)
	if err != nil {
		return "", fmt.Errorf("find fabrics collection: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("prices", prices)

	if err := s.app.Save(record); err != nil {
		return "", fmt.Errorf("save fabric: %w", err)
	}
	return record.Id, nil
}

// Replace overwrites name and prices of an existing fabric by identity. It
// fails when the identity no longer exists.
func (s *Fabrics) Replace(ctx context.Context, id string, name string, prices services.PriceTable) error {
	record, err := s.app.FindRecordById(CollectionFabrics, id)
	if err != nil {
		return fmt.Errorf("fabric %s not found: %w", id, err)
	}

	record.Set("name", name)
	record.Set("prices", prices)

	if err := s.app.Save(record); err != nil {
		return fmt.Errorf("save fabric %s: %w", id, err)
	}
	return nil
}

// Remove deletes a fabric by identity. Removing an identity that is already
// gone is not an error.
func (s *Fabrics) Remove(ctx context.Context, id string) error {
	record, err := s.app.FindRecordById(CollectionFabrics, id)
	if err != nil {
		log.Printf("store: remove of missing fabric %s ignored: %v", id, err)
		return nil
	}

	if err := s.app.Delete(record); err != nil {
		return fmt.Errorf("delete fabric %s: %w", id, err)
	}
	return nil
}

// snapshot loads the complete current fabric set in creation order.
func (s *Fabrics) snapshot() ([]services.Fabric, error) {
	records, err := s.app.FindAllRecords(CollectionFabrics)
	if err != nil {
		return nil, fmt.Errorf("load fabrics: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		ci := records[i].GetDateTime("created").Time()
		cj := records[j].GetDateTime("created").Time()
		if ci.Equal(cj) {
			return records[i].Id < records[j].Id
		}
		return ci.Before(cj)
	})

	fabrics := make([]services.Fabric, 0, len(records))
	for _, r := range records {
		fabrics = append(fabrics, services.FabricFromRecord(r))
	}
	return fabrics, nil
}

// broadcast pushes a fresh snapshot to every subscriber. Slow consumers
// only ever see the newest snapshot; intermediate ones are dropped.
func (s *Fabrics) broadcast() {
	snap, err := s.snapshot()
	if err != nil {
		log.Printf("store: snapshot failed, subscribers not notified: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}
