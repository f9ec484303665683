package cryptoform

import (
	"errors"
	"testing"
)

func TestDirectory_Load(t *testing.T) {
	var d Directory
	if d.Ready() {
		t.Error("Ready() = true before load, want false")
	}

	d.Load([]Identity{
		{Description: "Alice", Fingerprint: "AAAA BBBB", PublicKey: "PUBALICE"},
		{Description: "Bob", Fingerprint: "CCCC DDDD", PublicKey: "PUBBOB"},
	})

	if !d.Ready() {
		t.Error("Ready() = false after load, want true")
	}
	entries := d.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Description != "Alice" || entries[1].Description != "Bob" {
		t.Errorf("entry order = %s, %s, want Alice, Bob", entries[0].Description, entries[1].Description)
	}
}

func TestDirectory_Load_FiltersMalformed(t *testing.T) {
	var d Directory
	d.Load([]Identity{
		{Description: "no fingerprint", PublicKey: "PUB1"},
		{Description: "Alice", Fingerprint: "AAAA BBBB", PublicKey: "PUBALICE"},
		{Description: "no key", Fingerprint: "EEEE FFFF"},
	})

	entries := d.Entries()
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Description != "Alice" {
		t.Errorf("surviving entry = %s, want Alice", entries[0].Description)
	}
}

func TestDirectory_Load_LastWins(t *testing.T) {
	var d Directory
	d.Load([]Identity{{Description: "Alice", Fingerprint: "AAAA BBBB", PublicKey: "PUBALICE"}})
	d.Load([]Identity{{Description: "Carol", Fingerprint: "EEEE FFFF", PublicKey: "PUBCAROL"}})

	entries := d.Entries()
	if len(entries) != 1 || entries[0].Description != "Carol" {
		t.Errorf("entries = %v, want just Carol: load replaces, it does not merge", entries)
	}
}

func TestDirectory_Load_EmptyNotReady(t *testing.T) {
	var d Directory
	d.Load(nil)
	if d.Ready() {
		t.Error("Ready() = true for loaded empty directory, want false")
	}
}

func TestDirectory_Select(t *testing.T) {
	var d Directory
	d.Load([]Identity{{Description: "Alice", Fingerprint: "AAAA BBBB", PublicKey: "PUBALICE"}})

	id, err := d.Select("aaaabbbb")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if id.Description != "Alice" {
		t.Errorf("Description = %s, want Alice", id.Description)
	}

	selected, ok := d.Selected()
	if !ok || selected.Fingerprint != "AAAA BBBB" {
		t.Errorf("Selected() = %v, %v, want Alice's entry", selected, ok)
	}
}

func TestDirectory_Select_Unknown(t *testing.T) {
	var d Directory
	d.Load([]Identity{{Description: "Alice", Fingerprint: "AAAA BBBB", PublicKey: "PUBALICE"}})

	_, err := d.Select("ZZZZ")
	if !errors.Is(err, ErrUnknownRecipient) {
		t.Errorf("Select() error = %v, want ErrUnknownRecipient", err)
	}
	if _, ok := d.Selected(); ok {
		t.Error("Selected() = true after failed select, want no selection")
	}
}

func TestDirectory_Load_DropsVanishedSelection(t *testing.T) {
	var d Directory
	d.Load([]Identity{{Description: "Alice", Fingerprint: "AAAA BBBB", PublicKey: "PUBALICE"}})
	if _, err := d.Select("AAAA BBBB"); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	d.Load([]Identity{{Description: "Carol", Fingerprint: "EEEE FFFF", PublicKey: "PUBCAROL"}})
	if _, ok := d.Selected(); ok {
		t.Error("selection survived a reload that removed its entry")
	}
}

func TestDirectory_Reset(t *testing.T) {
	var d Directory
	d.Load([]Identity{{Description: "Alice", Fingerprint: "AAAA BBBB", PublicKey: "PUBALICE"}})
	d.Select("AAAA BBBB")

	d.Reset()
	if d.Ready() {
		t.Error("Ready() = true after Reset, want false")
	}
	if len(d.Entries()) != 0 {
		t.Errorf("len(entries) = %d after Reset, want 0", len(d.Entries()))
	}
	if _, ok := d.Selected(); ok {
		t.Error("selection survived Reset")
	}
}
