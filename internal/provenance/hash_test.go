package provenance

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHashFile_Stable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte("report body"), 0644); err != nil {
		t.Fatal(err)
	}

	first, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	second, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}

	if first != second {
		t.Error("hash must be stable for identical content")
	}
	if len(first) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(first))
	}
}

func TestHashFile_DiffersByContent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, []byte("one"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("two"), 0644); err != nil {
		t.Fatal(err)
	}

	ha, _ := HashFile(a)
	hb, _ := HashFile(b)
	if ha == hb {
		t.Error("different content must hash differently")
	}
}

func TestHashFile_Missing(t *testing.T) {
	if _, err := HashFile("no_such_file.bin"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestHashReader(t *testing.T) {
	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

	got, err := HashReader(strings.NewReader("abc"))
	if err != nil {
		t.Fatalf("HashReader failed: %v", err)
	}
	if got != want {
		t.Errorf("hash = %s, want %s", got, want)
	}
}
