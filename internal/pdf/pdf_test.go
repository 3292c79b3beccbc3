package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFind(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.PDF", "notes.txt", "c.pdf.bak"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.pdf"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := Find(dir)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	want := []string{filepath.Join(dir, "a.PDF"), filepath.Join(dir, "b.pdf")}
	if len(got) != len(want) {
		t.Fatalf("Find() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Find()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFind_MissingDir(t *testing.T) {
	got, err := Find(filepath.Join(t.TempDir(), "nope"))
	if err != nil || got != nil {
		t.Errorf("Find(missing) = %v, %v, want nil, nil", got, err)
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"pdfs/smith_2020.pdf", "smith_2020"},
		{"/abs/Report.PDF", "Report"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		if got := BaseName(tt.path); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestInspect_NotAPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fake.pdf")
	if err := os.WriteFile(path, []byte("this is plain text, not a PDF"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Inspect(path); err == nil {
		t.Error("Inspect() on a text file expected error")
	}
	if _, err := Inspect(filepath.Join(dir, "missing.pdf")); err == nil {
		t.Error("Inspect() on a missing file expected error")
	}
}
