package bibliography

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "bibliography_combined.md")
	alt := filepath.Join(dir, "bibliography_combined_1.md")

	got, err := OutputPath(name, OverwritePolicy{NoInteraction: true})
	if err != nil || got != name {
		t.Errorf("OutputPath(missing) = %q, %v, want %q", got, err, name)
	}

	touch(t, name)

	tests := []struct {
		name    string
		policy  OverwritePolicy
		want    string
		wantErr error
	}{
		{"force", OverwritePolicy{Force: true, NoInteraction: true}, name, nil},
		{"no interaction", OverwritePolicy{NoInteraction: true}, "", ErrFileExists},
		{"answer yes", OverwritePolicy{In: strings.NewReader("yes\n")}, name, nil},
		{"answer y", OverwritePolicy{In: strings.NewReader(" Y \n")}, name, nil},
		{"answer no", OverwritePolicy{In: strings.NewReader("n\n")}, alt, nil},
		{"no answer", OverwritePolicy{In: strings.NewReader("")}, alt, nil},
		{"no input", OverwritePolicy{}, alt, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OutputPath(name, tt.policy)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("OutputPath() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("OutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutputPath_Prompt(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out.md")
	touch(t, name)

	var out bytes.Buffer
	if _, err := OutputPath(name, OverwritePolicy{In: strings.NewReader("y\n"), Out: &out}); err != nil {
		t.Fatalf("OutputPath() error = %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("prompt = %q, want overwrite question", out.String())
	}
}

func TestOutputPath_SharedInput(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.md")
	b := filepath.Join(dir, "b.md")
	c := filepath.Join(dir, "c.md")
	touch(t, a)
	touch(t, b)
	touch(t, c)

	policy := OverwritePolicy{In: strings.NewReader("y\nyes\nn\n")}
	tests := []struct {
		name string
		want string
	}{
		{a, a},
		{b, b},
		{c, filepath.Join(dir, "c_1.md")},
	}

	for _, tt := range tests {
		got, err := OutputPath(tt.name, policy)
		if err != nil {
			t.Fatalf("OutputPath(%q) error = %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestReadAnswer(t *testing.T) {
	r := strings.NewReader("first\nsecond")
	if got := readAnswer(r); got != "first" {
		t.Errorf("readAnswer() = %q, want first", got)
	}
	if got := readAnswer(r); got != "second" {
		t.Errorf("readAnswer() = %q, want second", got)
	}
	if got := readAnswer(r); got != "" {
		t.Errorf("readAnswer() at EOF = %q, want empty", got)
	}
}

func TestAlternativePath(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out.md")
	touch(t, name)
	touch(t, filepath.Join(dir, "out_1.md"))

	if got, want := alternativePath(name), filepath.Join(dir, "out_2.md"); got != want {
		t.Errorf("alternativePath() = %q, want %q", got, want)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	res := &Result{Document: "# Bibliography (Chicago)\n\n"}

	path := filepath.Join(dir, "nested", "out.md")
	if err := WriteFile(path, res); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != res.Document {
		t.Errorf("file contents = %q, want %q", data, res.Document)
	}
}

func TestWriteFile_Failure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	touch(t, blocker)

	if err := WriteFile(filepath.Join(blocker, "out.md"), &Result{}); err == nil {
		t.Error("WriteFile() under a regular file expected error")
	}
}
