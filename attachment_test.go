package cryptoform

import "testing"

func TestAttachmentStore_InsertionOrder(t *testing.T) {
	var store AttachmentStore
	first := &Attachment{Filename: "a.txt", MIMEType: "text/plain", Payload: []byte("a")}
	second := &Attachment{Filename: "b.png", MIMEType: "image/png", Payload: []byte("b")}
	third := &Attachment{Filename: "c.pdf", MIMEType: "application/pdf", Payload: []byte("c")}

	store.Add(first)
	store.Add(second)
	store.Add(third)

	list := store.List()
	if len(list) != 3 {
		t.Fatalf("len(list) = %d, want 3", len(list))
	}
	// Display order is insertion order, not reversed.
	if list[0] != first || list[1] != second || list[2] != third {
		t.Errorf("order = %s, %s, %s, want a.txt, b.png, c.pdf",
			list[0].Filename, list[1].Filename, list[2].Filename)
	}
}

func TestAttachmentStore_RemoveByIdentity(t *testing.T) {
	var store AttachmentStore
	// Two distinct attachments sharing a filename.
	first := &Attachment{Filename: "dup.txt", Payload: []byte("one")}
	second := &Attachment{Filename: "dup.txt", Payload: []byte("two")}

	store.Add(first)
	store.Add(second)

	if !store.Remove(second) {
		t.Fatal("Remove(second) = false, want true")
	}

	list := store.List()
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	if list[0] != first {
		t.Error("wrong attachment removed: removal must match by identity, not filename")
	}
}

func TestAttachmentStore_RemoveAbsent(t *testing.T) {
	var store AttachmentStore
	store.Add(&Attachment{Filename: "a.txt"})

	if store.Remove(&Attachment{Filename: "a.txt"}) {
		t.Error("Remove(structural copy) = true, want false: equality is by identity")
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestAttachmentStore_AddNil(t *testing.T) {
	var store AttachmentStore
	store.Add(nil)
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

func TestAttachmentStore_Clear(t *testing.T) {
	var store AttachmentStore
	store.Add(&Attachment{Filename: "a.txt"})
	store.Add(&Attachment{Filename: "b.txt"})

	store.Clear()
	if store.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", store.Len())
	}
}
