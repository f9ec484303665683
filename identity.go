package cryptoform

// Identity is one recipient entry from the identity directory. The
// fingerprint is the stable identifier of the public key; the description
// is a human label and is not unique. Identities are immutable once fetched.
type Identity struct {
	Description string
	Fingerprint string
	PublicKey   string
}

// Directory holds the fetched recipient identities and the current
// selection. It is not safe for concurrent use on its own; the owning
// Workflow serializes access.
type Directory struct {
	entries  []Identity
	loaded   bool
	selected string // normalized fingerprint, "" when nothing is selected
}

// Load replaces the entry list and marks the directory loaded. Entries
// missing a fingerprint or public key are dropped rather than failing the
// whole load. A prior selection survives only if its fingerprint is still
// present.
func (d *Directory) Load(entries []Identity) {
	d.entries = d.entries[:0]
	for _, e := range entries {
		if e.Fingerprint == "" || e.PublicKey == "" {
			continue
		}
		d.entries = append(d.entries, e)
	}
	d.loaded = true

	if d.selected != "" {
		if _, ok := d.Lookup(d.selected); !ok {
			d.selected = ""
		}
	}
}

// Ready reports whether the directory is loaded and non-empty.
func (d *Directory) Ready() bool {
	return d.loaded && len(d.entries) > 0
}

// Entries returns the identities in directory order.
func (d *Directory) Entries() []Identity {
	out := make([]Identity, len(d.entries))
	copy(out, d.entries)
	return out
}

// Lookup finds an identity by fingerprint, tolerating formatting
// differences between spaced and compact hex.
func (d *Directory) Lookup(fingerprint string) (Identity, bool) {
	want := NormalizeFingerprint(fingerprint)
	for _, e := range d.entries {
		if NormalizeFingerprint(e.Fingerprint) == want {
			return e, true
		}
	}
	return Identity{}, false
}

// Select sets the current selection to the entry matching fingerprint.
// The directory is left untouched when no entry matches.
func (d *Directory) Select(fingerprint string) (Identity, error) {
	id, ok := d.Lookup(fingerprint)
	if !ok {
		return Identity{}, ErrUnknownRecipient
	}
	d.selected = NormalizeFingerprint(id.Fingerprint)
	return id, nil
}

// Selected returns the currently selected identity, if any.
func (d *Directory) Selected() (Identity, bool) {
	if d.selected == "" {
		return Identity{}, false
	}
	return d.Lookup(d.selected)
}

// ClearSelection drops the current selection, keeping the entries.
func (d *Directory) ClearSelection() {
	d.selected = ""
}

// Reset returns the directory to its initial empty, unloaded state.
func (d *Directory) Reset() {
	d.entries = nil
	d.loaded = false
	d.selected = ""
}
