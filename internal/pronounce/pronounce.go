// Package pronounce applies user-supplied surface-form pronunciation
// overrides (product names, proper nouns) to text before phonemization.
package pronounce

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
)

// Entry is one surface-form override pair.
type Entry struct {
	SurfaceForm string
	Replacement string
}

type compiledEntry struct {
	Entry
	re *regexp.Regexp
}

// Dict holds pronunciation overrides, kept sorted by descending surface-form
// length so longer phrases match before their substrings. Mutations (Add,
// Load) are not safe to interleave with Apply from other goroutines; typical
// use loads entries once at startup.
type Dict struct {
	entries []compiledEntry
}

// New returns an empty override dictionary.
func New() *Dict {
	return &Dict{}
}

// Add registers a surface-form override. Re-adding an existing surface form
// (case-insensitively) replaces the prior entry.
func (d *Dict) Add(surfaceForm, replacement string) {
	surfaceForm = strings.TrimSpace(surfaceForm)
	if surfaceForm == "" {
		return
	}

	lower := strings.ToLower(surfaceForm)
	for i, e := range d.entries {
		if strings.ToLower(e.SurfaceForm) == lower {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			break
		}
	}

	d.entries = append(d.entries, compiledEntry{
		Entry: Entry{SurfaceForm: surfaceForm, Replacement: replacement},
		// Surface forms are escaped so regex metacharacters match literally.
		re: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(surfaceForm) + `\b`),
	})

	sort.SliceStable(d.entries, func(i, j int) bool {
		return len(d.entries[i].SurfaceForm) > len(d.entries[j].SurfaceForm)
	})
}

// Apply substitutes every stored surface form in text with its replacement,
// case-insensitively at word boundaries, longest surface form first.
func (d *Dict) Apply(text string) string {
	for _, e := range d.entries {
		text = e.re.ReplaceAllLiteralString(text, e.Replacement)
	}
	return text
}

// Load reads overrides from the file at path and adds them to the
// dictionary. The format is one entry per line: surface form, a tab, then
// the replacement (which may itself contain tabs, kept literal). Lines
// starting with '#' and blank lines are skipped.
func (d *Dict) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open overrides file %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := d.LoadReader(f); err != nil {
		return fmt.Errorf("read overrides file %q: %w", path, err)
	}
	return nil
}

// LoadReader reads override entries from r. See Load for the format.
func (d *Dict) LoadReader(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		surface, replacement, ok := strings.Cut(line, "\t")
		if !ok {
			continue // no tab separator, not an entry
		}
		d.Add(surface, replacement)
	}
	return sc.Err()
}

// Entries returns a copy of the stored override pairs in match order.
func (d *Dict) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Entry
	}
	return out
}

// Len returns the number of stored overrides.
func (d *Dict) Len() int {
	return len(d.entries)
}
