package knowledge

import (
	"errors"
	"testing"

	"github.com/greenstamp/greenstamp/internal/model"
)

func TestBase_Frameworks_Order(t *testing.T) {
	b := NewBase()

	fws := b.Frameworks()
	if len(fws) != 3 {
		t.Fatalf("expected 3 frameworks, got %d", len(fws))
	}

	want := []string{"GRI", "SASB", "TCFD"}
	for i, fw := range fws {
		if fw.ID != want[i] {
			t.Errorf("framework %d: expected %s, got %s", i, want[i], fw.ID)
		}
	}
}

func TestBase_Requirements_Known(t *testing.T) {
	b := NewBase()

	fw, err := b.Requirements("GRI")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fw.Name != "Global Reporting Initiative" {
		t.Errorf("unexpected name: %s", fw.Name)
	}
	if len(fw.Requirements) != 2 {
		t.Errorf("expected 2 requirement sections, got %d", len(fw.Requirements))
	}
	if fw.Requirements[0].ID != "GRI-2" {
		t.Errorf("expected GRI-2 first, got %s", fw.Requirements[0].ID)
	}
}

func TestBase_Requirements_Unknown(t *testing.T) {
	b := NewBase()

	_, err := b.Requirements("XYZ")
	if err == nil {
		t.Fatal("expected error for unknown framework")
	}

	var nf *model.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
	if nf.ID != "XYZ" {
		t.Errorf("expected id XYZ in error, got %s", nf.ID)
	}
}

func TestBase_FlattenItems(t *testing.T) {
	b := NewBase()

	items := b.FlattenItems([]string{"TCFD"})
	// TCFD has 2 + 3 + 3 items
	if len(items) != 8 {
		t.Fatalf("expected 8 TCFD items, got %d", len(items))
	}
	if items[0] != "TCFD: Board oversight" {
		t.Errorf("unexpected first item: %s", items[0])
	}

	// Unknown ids are skipped, not fatal
	items = b.FlattenItems([]string{"NOPE", "GRI"})
	if len(items) != 9 {
		t.Errorf("expected 9 GRI items with unknown id skipped, got %d", len(items))
	}
}
