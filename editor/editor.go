// Package editor implements the catalog editor's state machine: the live
// fabric list mirrored from the document store, the selection and price-mode
// state, transient per-product quantities, and the modal add/edit/delete
// workflows.
package editor

import (
	"context"
	"sync"

	"takesell/services"
)

// Modal identifies which modal workflow, if any, is currently open.
type Modal int

const (
	ModalNone Modal = iota
	ModalAdd
	ModalEdit
	ModalDelete
)

// Editor holds the calculator's full client-side state. All exported
// methods are safe for concurrent use; snapshots from the store
// subscription are applied through a single-writer inbox goroutine owned by
// Start.
type Editor struct {
	store Store

	mu         sync.Mutex
	fabrics    []services.Fabric
	selected   int
	mode       services.PriceMode
	quantities services.Quantities
	showAll    bool
	modal      Modal
	draft      FormDraft

	// pendingSelect is the identity of a just-created fabric; selection
	// jumps to it when it first appears in a snapshot. Selecting by
	// identity avoids racing the subscription on index positions.
	pendingSelect string

	loaded bool
	busy   bool

	done chan struct{}
}

// New creates an editor bound to a store. No subscription is opened until
// Start is called.
func New(store Store) *Editor {
	return &Editor{
		store:      store,
		mode:       services.PriceModeRetail,
		quantities: services.Quantities{},
	}
}

// Start opens the store subscription and consumes snapshots until ctx is
// cancelled or the stream closes. The subscription is the editor's owned
// resource: cancelling ctx releases it, and Done is closed once the inbox
// goroutine has exited.
func (ed *Editor) Start(ctx context.Context) error {
	ch, err := ed.store.Subscribe(ctx)
	if err != nil {
		return &StoreError{Op: "subscribe", Err: err}
	}

	done := make(chan struct{})
	ed.mu.Lock()
	ed.done = done
	ed.mu.Unlock()

	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case snap, ok := <-ch:
				if !ok {
					return
				}
				ed.ApplySnapshot(snap)
			}
		}
	}()
	return nil
}

// Done reports when the snapshot inbox has shut down. It returns nil before
// Start has been called.
func (ed *Editor) Done() <-chan struct{} {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.done
}

// ApplySnapshot replaces the local fabric list with the authoritative set
// from the store and re-validates the selection. The snapshot always wins
// over any optimistic local state; a failed delete simply resurfaces the
// record here. Selection is kept by identity where possible and clamped by
// index otherwise.
func (ed *Editor) ApplySnapshot(fabrics []services.Fabric) {
	ed.mu.Lock()
	defer ed.mu.Unlock()

	var prevID string
	if ed.selected >= 0 && ed.selected < len(ed.fabrics) {
		prevID = ed.fabrics[ed.selected].ID
	}

	ed.fabrics = fabrics
	ed.loaded = true

	if len(fabrics) == 0 {
		ed.selected = 0
		return
	}

	if ed.pendingSelect != "" {
		if i := indexByID(fabrics, ed.pendingSelect); i >= 0 {
			ed.selected = i
			ed.pendingSelect = ""
			return
		}
	}

	if prevID != "" {
		if i := indexByID(fabrics, prevID); i >= 0 {
			ed.selected = i
			return
		}
	}

	if ed.selected >= len(fabrics) {
		ed.selected = len(fabrics) - 1
	}
	if ed.selected < 0 {
		ed.selected = 0
	}
}

func indexByID(fabrics []services.Fabric, id string) int {
	for i, f := range fabrics {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// Select moves the selection pointer. This is a pure local change: it never
// touches the store and deliberately does not reset quantities (the
// cross-fabric carryover is preserved behavior). Out-of-range indexes are
// ignored.
func (ed *Editor) Select(i int) {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	if i >= 0 && i < len(ed.fabrics) {
		ed.selected = i
	}
}

// SetPriceMode switches which price tier totals are computed from. Stored
// data is never touched.
func (ed *Editor) SetPriceMode(mode services.PriceMode) {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.mode = mode
}

// SetQuantity records the requested quantity for one product. Unparseable
// input coerces to 0, negative values are kept as typed. Quantities survive
// price-mode toggles and fabric switches within the session and are never
// written to the store.
func (ed *Editor) SetQuantity(productKey, raw string) {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.quantities[productKey] = services.ParseQuantity(raw)
}

// ToggleShowAll flips the visibility of products beyond the default four.
func (ed *Editor) ToggleShowAll() {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.showAll = !ed.showAll
}

// selectedLocked returns the selected fabric. Callers must hold mu.
func (ed *Editor) selectedLocked() (services.Fabric, bool) {
	if len(ed.fabrics) == 0 || ed.selected < 0 || ed.selected >= len(ed.fabrics) {
		return services.Fabric{}, false
	}
	return ed.fabrics[ed.selected], true
}

// Selected returns the currently selected fabric, if any.
func (ed *Editor) Selected() (services.Fabric, bool) {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	return ed.selectedLocked()
}

// View is a consistent copy of everything the presentation layer needs:
// state plus the totals derived from it. Totals are re-derived on every
// call; with a fixed 15-product catalog there is nothing worth caching.
type View struct {
	Loaded        bool
	Fabrics       []services.Fabric
	SelectedIndex int
	Selected      services.Fabric
	HasSelection  bool
	Mode          services.PriceMode
	Quantities    services.Quantities
	ShowAll       bool
	Modal         Modal
	Draft         FormDraft
	GrandTotal    float64
	Breakdown     []services.BreakdownRow
}

// View captures the current state under one lock acquisition.
func (ed *Editor) View() View {
	ed.mu.Lock()
	defer ed.mu.Unlock()

	v := View{
		Loaded:        ed.loaded,
		Fabrics:       append([]services.Fabric(nil), ed.fabrics...),
		SelectedIndex: ed.selected,
		Mode:          ed.mode,
		Quantities:    make(services.Quantities, len(ed.quantities)),
		ShowAll:       ed.showAll,
		Modal:         ed.modal,
		Draft:         ed.draft.clone(),
	}
	for k, q := range ed.quantities {
		v.Quantities[k] = q
	}

	sel, ok := ed.selectedLocked()
	if ok {
		v.Selected = sel
		v.HasSelection = true
		v.GrandTotal = services.GrandTotal(sel.Prices, ed.mode, ed.quantities)
		v.Breakdown = services.Breakdown(sel.Name, sel.Prices, ed.mode, ed.quantities)
	}
	return v
}

// UpdatePrice replaces a single price field of the selected fabric through
// the store, coercing non-numeric input to 0. The operation is part of the
// editor's contract but is not wired to any default UI surface.
func (ed *Editor) UpdatePrice(ctx context.Context, productKey string, mode services.PriceMode, raw string) error {
	ed.mu.Lock()
	if ed.busy {
		ed.mu.Unlock()
		return ErrRequestInFlight
	}
	sel, ok := ed.selectedLocked()
	if !ok {
		ed.mu.Unlock()
		return ErrNoFabricSelected
	}

	prices := services.NormalizePrices(sel.Prices)
	entry := prices[productKey]
	value := services.ParsePrice(raw)
	if mode == services.PriceModeWholesale {
		entry.Wholesale = value
	} else {
		entry.Retail = value
	}
	prices[productKey] = entry

	ed.busy = true
	ed.mu.Unlock()

	err := ed.store.Replace(ctx, sel.ID, sel.Name, prices)

	ed.mu.Lock()
	ed.busy = false
	if err != nil {
		ed.mu.Unlock()
		return &StoreError{Op: "replace", Err: err}
	}
	// Local-first update; the subscription delivers the same change again.
	if i := indexByID(ed.fabrics, sel.ID); i >= 0 {
		ed.fabrics[i].Prices = prices
	}
	ed.mu.Unlock()
	return nil
}
