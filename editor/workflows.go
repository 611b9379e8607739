package editor

import (
	"context"
	"strconv"
	"strings"

	"takesell/services"
)

// PriceInput is the raw, uncoerced pair of price fields for one product as
// typed into a modal form.
type PriceInput struct {
	Retail    string
	Wholesale string
}

// FormDraft stages a fabric for the add and edit modals before it is
// committed. Prices stay raw strings until submit, when every field is
// coerced to a number (non-numeric input becomes 0).
type FormDraft struct {
	Name   string
	Prices map[string]PriceInput
}

func (d FormDraft) clone() FormDraft {
	out := FormDraft{Name: d.Name}
	if d.Prices != nil {
		out.Prices = make(map[string]PriceInput, len(d.Prices))
		for k, v := range d.Prices {
			out.Prices[k] = v
		}
	}
	return out
}

// EmptyDraft returns a draft with a blank name and zero prices for every
// catalog product.
func EmptyDraft() FormDraft {
	d := FormDraft{Prices: make(map[string]PriceInput, len(services.Products))}
	for _, p := range services.Products {
		d.Prices[p.Key] = PriceInput{Retail: "0", Wholesale: "0"}
	}
	return d
}

// DraftFromFabric seeds a draft from an existing fabric, reading each known
// product key out of its price table so the form always carries exactly the
// current product set whatever the stored record contains.
func DraftFromFabric(f services.Fabric) FormDraft {
	d := FormDraft{
		Name:   f.Name,
		Prices: make(map[string]PriceInput, len(services.Products)),
	}
	for _, p := range services.Products {
		entry := f.Prices.Entry(p.Key)
		d.Prices[p.Key] = PriceInput{
			Retail:    strconv.FormatFloat(entry.Retail, 'f', -1, 64),
			Wholesale: strconv.FormatFloat(entry.Wholesale, 'f', -1, 64),
		}
	}
	return d
}

// coercePrices turns a draft's raw fields into a full price table over the
// catalog, defaulting anything non-numeric or absent to 0.
func coercePrices(d FormDraft) services.PriceTable {
	t := make(services.PriceTable, len(services.Products))
	for _, p := range services.Products {
		in := d.Prices[p.Key]
		t[p.Key] = services.PriceEntry{
			Retail:    services.ParsePrice(in.Retail),
			Wholesale: services.ParsePrice(in.Wholesale),
		}
	}
	return t
}

// OpenAdd resets the form draft and enters the add modal.
func (ed *Editor) OpenAdd() {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.modal = ModalAdd
	ed.draft = EmptyDraft()
}

// OpenEdit seeds the form draft from the selected fabric and enters the
// edit modal. Without a selection it is a silent no-op and reports false.
func (ed *Editor) OpenEdit() bool {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	sel, ok := ed.selectedLocked()
	if !ok {
		return false
	}
	ed.modal = ModalEdit
	ed.draft = DraftFromFabric(sel)
	return true
}

// OpenDelete enters the delete confirmation modal. It is refused while
// exactly one fabric remains: the catalog never goes empty.
func (ed *Editor) OpenDelete() error {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	if len(ed.fabrics) <= 1 {
		return ErrLastFabric
	}
	if _, ok := ed.selectedLocked(); !ok {
		return ErrNoFabricSelected
	}
	ed.modal = ModalDelete
	return nil
}

// CloseModal leaves whatever modal is open and discards the draft. No
// in-flight store request is cancelled by closing.
func (ed *Editor) CloseModal() {
	ed.mu.Lock()
	defer ed.mu.Unlock()
	ed.modal = ModalNone
	ed.draft = FormDraft{}
}

// SubmitAdd validates the draft and asks the store to create the fabric.
// An empty (after trimming) name yields a ValidationError and the draft is
// retained for correction. On success the add modal is exited and the new
// record's identity is remembered so selection can jump to it when the
// subscription delivers it.
func (ed *Editor) SubmitAdd(ctx context.Context, draft FormDraft) error {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		ed.mu.Lock()
		ed.modal = ModalAdd
		ed.draft = draft.clone()
		ed.mu.Unlock()
		return &ValidationError{Field: "name", Message: "Fabric name is required"}
	}

	prices := coercePrices(draft)

	ed.mu.Lock()
	if ed.busy {
		ed.mu.Unlock()
		return ErrRequestInFlight
	}
	ed.busy = true
	ed.mu.Unlock()

	id, err := ed.store.Create(ctx, name, prices)

	ed.mu.Lock()
	ed.busy = false
	if err != nil {
		ed.mu.Unlock()
		return &StoreError{Op: "create", Err: err}
	}
	ed.pendingSelect = id
	ed.modal = ModalNone
	ed.draft = FormDraft{}
	ed.mu.Unlock()
	return nil
}

// SubmitEdit validates the draft and asks the store to replace the selected
// fabric's name and prices, keyed by its existing identity. If the fabric
// vanished while the modal was open the submit degrades to a no-op and the
// modal is closed.
func (ed *Editor) SubmitEdit(ctx context.Context, draft FormDraft) error {
	ed.mu.Lock()
	sel, ok := ed.selectedLocked()
	if !ok {
		ed.modal = ModalNone
		ed.draft = FormDraft{}
		ed.mu.Unlock()
		return ErrNoFabricSelected
	}
	ed.mu.Unlock()

	name := strings.TrimSpace(draft.Name)
	if name == "" {
		ed.mu.Lock()
		ed.modal = ModalEdit
		ed.draft = draft.clone()
		ed.mu.Unlock()
		return &ValidationError{Field: "name", Message: "Fabric name cannot be empty"}
	}

	prices := coercePrices(draft)

	ed.mu.Lock()
	if ed.busy {
		ed.mu.Unlock()
		return ErrRequestInFlight
	}
	ed.busy = true
	ed.mu.Unlock()

	err := ed.store.Replace(ctx, sel.ID, name, prices)

	ed.mu.Lock()
	ed.busy = false
	if err != nil {
		ed.mu.Unlock()
		return &StoreError{Op: "replace", Err: err}
	}
	ed.modal = ModalNone
	ed.draft = FormDraft{}
	ed.mu.Unlock()
	return nil
}

// ConfirmDelete checks the typed confirmation against the selected fabric's
// name (exact, case-sensitive, no trimming) and on match removes the
// record. The last-fabric guard is re-checked here: a concurrent delete may
// have shrunk the set to one while the modal was open. The local list drops
// the fabric immediately and selection moves back one (floored at 0); the
// subscription's own snapshot for the same change reconciles shortly after,
// and also corrects the optimism if the delete turns out to have failed
// late.
func (ed *Editor) ConfirmDelete(ctx context.Context, typedName string) error {
	ed.mu.Lock()
	if len(ed.fabrics) <= 1 {
		ed.modal = ModalNone
		ed.mu.Unlock()
		return ErrLastFabric
	}
	sel, ok := ed.selectedLocked()
	if !ok {
		ed.modal = ModalNone
		ed.mu.Unlock()
		return ErrNoFabricSelected
	}
	if typedName != sel.Name {
		ed.mu.Unlock()
		return ErrConfirmationMismatch
	}
	if ed.busy {
		ed.mu.Unlock()
		return ErrRequestInFlight
	}
	ed.busy = true
	ed.mu.Unlock()

	err := ed.store.Remove(ctx, sel.ID)

	ed.mu.Lock()
	ed.busy = false
	if err != nil {
		ed.mu.Unlock()
		return &StoreError{Op: "remove", Err: err}
	}
	ed.modal = ModalNone
	if i := indexByID(ed.fabrics, sel.ID); i >= 0 {
		ed.fabrics = append(ed.fabrics[:i], ed.fabrics[i+1:]...)
	}
	if ed.selected > 0 {
		ed.selected--
	}
	ed.mu.Unlock()
	return nil
}
