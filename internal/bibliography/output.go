package bibliography

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrFileExists is returned when an output file exists and prompting is off.
var ErrFileExists = errors.New("output file already exists")

// OverwritePolicy controls what happens when an output file already exists.
type OverwritePolicy struct {
	Force         bool      // Overwrite without asking
	NoInteraction bool      // Fail instead of asking
	In            io.Reader // Where answers are read from (usually stdin); may be shared across calls
	Out           io.Writer // Where the question is written (usually stderr)
}

// OutputPath returns the file to write for name under policy p.
//
// A missing file is used as is. Otherwise Force overwrites, NoInteraction
// fails with ErrFileExists, and an interactive "y"/"yes" overwrites; any
// other answer (or no answer) picks the first free "name_N.ext".
func OutputPath(name string, p OverwritePolicy) (string, error) {
	if !exists(name) || p.Force {
		return name, nil
	}
	if p.NoInteraction {
		return "", fmt.Errorf("%w: %s", ErrFileExists, name)
	}

	if p.In != nil {
		if p.Out != nil {
			fmt.Fprintf(p.Out, "File '%s' already exists. Overwrite? [y/N]: ", name)
		}
		switch strings.ToLower(strings.TrimSpace(readAnswer(p.In))) {
		case "y", "yes":
			return name, nil
		}
	}

	return alternativePath(name), nil
}

// readAnswer reads one line from r a byte at a time, so nothing past the
// newline is consumed and later prompts still see their answers.
func readAnswer(r io.Reader) string {
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			line = append(line, buf[0])
		}
		if err != nil {
			break
		}
	}
	return string(line)
}

// alternativePath returns the first "base_N.ext" that does not exist.
func alternativePath(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", base, n, ext)
		if !exists(candidate) {
			return candidate
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteFile writes a rendered document to path.
func WriteFile(path string, res *Result) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(res.Document), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
