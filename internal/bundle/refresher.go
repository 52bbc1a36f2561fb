package bundle

import (
	"context"
	"sync/atomic"

	"github.com/jhancoach/mundial-stats/internal/logging"
	"github.com/jhancoach/mundial-stats/internal/model"
	"github.com/jhancoach/mundial-stats/internal/source"
)

// Holder keeps the live bundle behind an atomic pointer. Readers always
// see a complete bundle; a refresh swaps the pointer wholesale.
type Holder struct {
	current atomic.Pointer[model.Bundle]
}

// NewHolder returns a Holder seeded with an empty bundle in the loading
// state, the situation before the first refresh completes.
func NewHolder() *Holder {
	h := &Holder{}
	initial := model.Empty()
	initial.Loading = true
	h.current.Store(initial)
	return h
}

// Current returns the live bundle. Never nil.
func (h *Holder) Current() *model.Bundle {
	return h.current.Load()
}

func (h *Holder) swap(b *model.Bundle) {
	h.current.Store(b)
}

// Refresher drives refresh cycles: it loads the effective source
// locations, assembles a new bundle, and publishes it. The source data
// has no request sequencing of its own, so overlapping refresh requests
// are coalesced: a request arriving while one is in flight is ignored and
// the caller gets the current bundle.
type Refresher struct {
	assembler *Assembler
	store     *source.OverrideStore
	holder    *Holder
	inFlight  atomic.Bool
	// onSwap, when set, is invoked after each successful publish with the
	// new bundle. Used to notify connected consumers.
	onSwap func(*model.Bundle)
}

// NewRefresher wires an assembler, override store and holder together.
func NewRefresher(assembler *Assembler, store *source.OverrideStore, holder *Holder) *Refresher {
	return &Refresher{assembler: assembler, store: store, holder: holder}
}

// OnSwap registers a hook called after each published refresh. Must be
// set before the first Refresh call.
func (r *Refresher) OnSwap(fn func(*model.Bundle)) {
	r.onSwap = fn
}

// Holder exposes the bundle holder for read-side consumers.
func (r *Refresher) Holder() *Holder {
	return r.holder
}

// Refresh performs one full refresh cycle and returns the bundle now
// live. The second result is false when the request was coalesced into a
// refresh already in flight.
func (r *Refresher) Refresh(ctx context.Context) (*model.Bundle, bool) {
	if !r.inFlight.CompareAndSwap(false, true) {
		logging.Logger().Debugf("refresh request coalesced, one already in flight")
		return r.holder.Current(), false
	}
	defer r.inFlight.Store(false)

	locs := r.store.Locations(ctx)
	b := r.assembler.Assemble(ctx, locs)
	r.holder.swap(b)

	if r.onSwap != nil {
		r.onSwap(b)
	}
	return b, true
}
