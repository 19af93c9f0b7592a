package pedal

import "github.com/cwbudde/mulebox/settings"

// SelectionController is the control-rate logic behind the selector knob.
// Each tick it quantizes the raw reading, decides between a catalog index
// and bypass, and on a change drives the bank and schedules persistence.
//
// No debounce is applied beyond integer rounding: a physically noisy knob
// sitting on a quantization boundary can cause repeated reloads. Accepted
// as-is; reloads are cheap at control rate and inaudible next to the
// audible kernel switch itself.
type SelectionController struct {
	bank     *Bank
	store    *settings.Store
	selector Param

	// Last applied (position, bypass) pair.
	position int
	bypass   bool
	applied  bool
}

// NewSelectionController creates the controller over the bank and store.
func NewSelectionController(bank *Bank, store *settings.Store) *SelectionController {
	return &SelectionController{
		bank:     bank,
		store:    store,
		selector: SelectorParam(),
	}
}

// Prime seeds the applied state after the boot-time load, so the first tick
// does not re-apply and re-persist the selection restored from storage.
func (c *SelectionController) Prime(position int) {
	c.position = position
	c.bypass = position >= c.bank.CatalogSize()
	c.applied = true
}

// Tick processes one raw selector reading. Control context only.
func (c *SelectionController) Tick(raw float32) {
	pos := QuantizePosition(c.selector.Map(raw))
	bypass := pos >= c.bank.CatalogSize()

	if c.applied && pos == c.position && bypass == c.bypass {
		return
	}

	c.bank.RequestLoad(pos)
	if !bypass {
		// Only a valid index is persisted; bypass positions are not part
		// of the stored schema.
		c.store.MarkDirty(pos)
	}

	c.position = pos
	c.bypass = bypass
	c.applied = true
}

// Position returns the last applied selector position.
func (c *SelectionController) Position() int { return c.position }

// Bypassed returns whether the last applied state was bypass.
func (c *SelectionController) Bypassed() bool { return c.bypass }
