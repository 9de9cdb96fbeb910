package bmff

import (
	"bytes"
	"testing"

	"github.com/simonhull/mediameta/internal/binary"
	"github.com/simonhull/mediameta/internal/source"
)

// buildReferenceV0 synthesizes one SingleItemTypeReference with 16-bit IDs.
func buildReferenceV0(t *testing.T, refType string, from uint16, to ...uint16) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := binary.NewWriter(&buf)
	binary.Write[uint16](w, from)
	binary.Write[uint16](w, uint16(len(to)))
	for _, id := range to {
		binary.Write[uint16](w, id)
	}
	return buildBox(t, refType, buf.Bytes())
}

// buildReferenceV1 synthesizes one SingleItemTypeReference with 32-bit IDs.
func buildReferenceV1(t *testing.T, refType string, from uint32, to ...uint32) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := binary.NewWriter(&buf)
	binary.Write[uint32](w, from)
	binary.Write[uint16](w, uint16(len(to)))
	for _, id := range to {
		binary.Write[uint32](w, id)
	}
	return buildBox(t, refType, buf.Bytes())
}

func TestParseIref_Version0(t *testing.T) {
	payload := append(
		buildReferenceV0(t, "thmb", 2, 1),
		buildReferenceV0(t, "cdsc", 3, 1, 2)...)
	data := buildFullBox(t, "iref", 0, 0, payload)

	d, boxes := decodeBytes(t, data)
	if len(d.Warnings()) != 0 {
		t.Fatalf("unexpected warnings: %v", d.Warnings())
	}
	if len(boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(boxes))
	}

	iref := boxes[0]
	if len(iref.Children) != 2 {
		t.Fatalf("expected 2 references, got %d", len(iref.Children))
	}

	first, ok := iref.Children[0].Detail.(*ItemReference)
	if !ok {
		t.Fatalf("expected *ItemReference detail, got %T", iref.Children[0].Detail)
	}
	if first.ReferenceType != "thmb" || first.FromItemID != 2 {
		t.Errorf("unexpected first reference: %+v", first)
	}
	if len(first.ToItemIDs) != 1 || first.ToItemIDs[0] != 1 {
		t.Errorf("unexpected target IDs: %v", first.ToItemIDs)
	}

	second := iref.Children[1].Detail.(*ItemReference)
	if second.ReferenceType != "cdsc" || len(second.ToItemIDs) != 2 {
		t.Errorf("unexpected second reference: %+v", second)
	}

	// Children inherit the parent's version.
	if iref.Children[0].Version != 0 {
		t.Errorf("expected inherited version 0, got %d", iref.Children[0].Version)
	}
}

func TestParseIref_Version1Widens(t *testing.T) {
	payload := buildReferenceV1(t, "dimg", 0x10001, 0x10002, 0x10003)
	data := buildFullBox(t, "iref", 1, 0, payload)

	d, boxes := decodeBytes(t, data)
	if len(d.Warnings()) != 0 {
		t.Fatalf("unexpected warnings: %v", d.Warnings())
	}

	ref := boxes[0].Children[0].Detail.(*ItemReference)
	if ref.FromItemID != 0x10001 {
		t.Errorf("expected 32-bit from ID, got %#x", ref.FromItemID)
	}
	if len(ref.ToItemIDs) != 2 || ref.ToItemIDs[1] != 0x10003 {
		t.Errorf("unexpected target IDs: %v", ref.ToItemIDs)
	}
}

func TestParseIref_MalformedChildKeepsPrefix(t *testing.T) {
	good := buildReferenceV0(t, "thmb", 2, 1)

	// Second entry declares a size larger than the remaining payload.
	var bad bytes.Buffer
	w := binary.NewWriter(&bad)
	binary.Write[uint32](w, 200)
	w.WriteString("cdsc")
	w.WriteBytes([]byte{0, 0, 0, 0})

	data := buildFullBox(t, "iref", 0, 0, append(good, bad.Bytes()...))

	d := NewDecoder(nil, 0)
	boxes := d.Decode(binary.NewCursor(source.NewBytes(data)))

	iref := boxes[0]
	if len(iref.Children) != 1 {
		t.Fatalf("expected the well-formed prefix to survive, got %d children", len(iref.Children))
	}
	if iref.Children[0].Detail.(*ItemReference).ReferenceType != "thmb" {
		t.Error("surviving child should be the first reference")
	}
	if len(d.Warnings()) == 0 {
		t.Error("expected a warning for the malformed entry")
	}
}

func TestExtent_Remaining(t *testing.T) {
	e := Extent{Start: 10, Length: 8}

	if e.End() != 18 {
		t.Errorf("expected end 18, got %d", e.End())
	}
	if got := e.Remaining(12); got != 6 {
		t.Errorf("expected 6 remaining, got %d", got)
	}
	if got := e.Remaining(30); got != 0 {
		t.Errorf("remaining must clamp at zero, got %d", got)
	}
	if !e.Done(18) || e.Done(17) {
		t.Error("Done must flip exactly at the extent end")
	}
	if !e.Contains(Extent{Start: 12, Length: 6}) || e.Contains(Extent{Start: 12, Length: 7}) {
		t.Error("Contains must respect the end boundary")
	}
}
