package pronounce

import (
	"strings"
	"testing"

	"github.com/example/go-phonetok/internal/testutil"
)

func TestApply(t *testing.T) {
	d := New()
	d.Add("GIF", "jif")

	tests := []struct {
		in   string
		want string
	}{
		{"a GIF file", "a jif file"},
		{"a gif file", "a jif file"}, // case-insensitive
		{"GIFs are fine", "GIFs are fine"},
		{"no match here", "no match here"},
	}

	for _, tt := range tests {
		if got := d.Apply(tt.in); got != tt.want {
			t.Errorf("Apply(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyLongestFirst(t *testing.T) {
	d := New()
	d.Add("New York", "new york city proper")
	d.Add("New York City", "the five boroughs")

	got := d.Apply("I love New York City")
	want := "I love the five boroughs"
	if got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}

	// The shorter phrase still applies where the longer does not match.
	got = d.Apply("New York state")
	want = "new york city proper state"
	if got != want {
		t.Errorf("Apply = %q, want %q", got, want)
	}
}

func TestAddReplacesExisting(t *testing.T) {
	d := New()
	d.Add("SQL", "sequel")
	d.Add("sql", "ess cue ell")

	if d.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", d.Len())
	}
	if got := d.Apply("use SQL here"); got != "use ess cue ell here" {
		t.Errorf("Apply = %q", got)
	}
}

func TestAddIgnoresEmptySurface(t *testing.T) {
	d := New()
	d.Add("   ", "nothing")
	if d.Len() != 0 {
		t.Errorf("Len() = %d, want 0", d.Len())
	}
}

func TestApplyEscapesMetacharacters(t *testing.T) {
	d := New()
	d.Add("Dr. Who", "doctor who")

	if got := d.Apply("watch Dr. Who tonight"); got != "watch doctor who tonight" {
		t.Errorf("Apply = %q", got)
	}
	// The '.' matches literally, not as a regex wildcard.
	if got := d.Apply("DrX Who"); got != "DrX Who" {
		t.Errorf("Apply = %q, want input unchanged", got)
	}
}

func TestLoadReader(t *testing.T) {
	input := strings.Join([]string{
		"# comment line",
		"",
		"GIF\tjif",
		"New York City\tthe five boroughs",
		"no tab on this line",
	}, "\n")

	d := New()
	if err := d.LoadReader(strings.NewReader(input)); err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}

	// Entries come back in match order, longest surface form first.
	entries := d.Entries()
	if entries[0].SurfaceForm != "New York City" {
		t.Errorf("entries[0] = %q, want %q", entries[0].SurfaceForm, "New York City")
	}
}

func TestLoadFile(t *testing.T) {
	path := testutil.WriteOverridesFile(t, map[string]string{"GIF": "jif"})

	d := New()
	if err := d.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := d.Apply("send a GIF"); got != "send a jif" {
		t.Errorf("Apply = %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	d := New()
	if err := d.Load("no/such/overrides.tsv"); err == nil {
		t.Error("expected error for missing file")
	}
}
