package application

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MegaNoam/CitizensCMD/internal/domain"
	"github.com/MegaNoam/CitizensCMD/internal/domain/entities"
	"github.com/MegaNoam/CitizensCMD/internal/infrastructure/yamldoc"
)

func parse(t *testing.T, src string) *yamldoc.Document {
	t.Helper()
	d, err := yamldoc.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return d
}

func TestBuildTable(t *testing.T) {
	doc := parse(t, `
top: ignored
messages:
  shallow: ignored
  errors:
    not-found: Not found
    denied: "No access"
    empty:
    nested:
      deeper: ignored
    list: [a, b]
  help:
    header: Help
`)
	table, err := BuildTable("en", doc)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}

	want := []entities.FlatKey{
		"messages.errors.denied",
		"messages.errors.not-found",
		"messages.help.header",
	}
	if diff := cmp.Diff(want, table.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if got, _ := table.Get("messages.errors.denied"); got != "No access" {
		t.Errorf("denied = %q", got)
	}
	if table.Language() != "en" {
		t.Errorf("Language = %q", table.Language())
	}
}

func TestBuildTable_CountsEveryLeaf(t *testing.T) {
	doc := parse(t, `
messages:
  a: {one: "1", two: "2", three: "3"}
  b: {four: "4"}
  c: {}
  d: {five: "5", six: "6"}
`)
	table, err := BuildTable("en", doc)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	if table.Len() != 6 {
		t.Fatalf("Len = %d, want 6", table.Len())
	}
	for _, key := range []entities.FlatKey{"messages.a.one", "messages.b.four", "messages.d.six"} {
		if _, ok := table.Get(key); !ok {
			t.Errorf("missing %s", key)
		}
	}
}

func TestBuildTable_MissingSection(t *testing.T) {
	for _, src := range []string{"other: {a: {b: c}}\n", "", "messages: just text\n"} {
		table, err := BuildTable("en", parse(t, src))
		if !errors.Is(err, domain.ErrMissingSection) {
			t.Errorf("BuildTable(%q) err = %v, want ErrMissingSection", src, err)
		}
		if table == nil || table.Len() != 0 {
			t.Errorf("BuildTable(%q) should return an empty table", src)
		}
	}
}

func TestBuildTable_DottedNames(t *testing.T) {
	doc := parse(t, `
messages:
  errors:
    "a.b": dotted
    c: plain
  "v1.2":
    note: versioned
`)
	table, err := BuildTable("en", doc)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	want := []entities.FlatKey{
		"messages.errors.a.b",
		"messages.errors.c",
		"messages.v1.2.note",
	}
	if diff := cmp.Diff(want, table.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if got, _ := table.Get("messages.errors.a.b"); got != "dotted" {
		t.Errorf("a.b = %q", got)
	}
}
