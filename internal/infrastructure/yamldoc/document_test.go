package yamldoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/MegaNoam/CitizensCMD/internal/domain"
	"github.com/MegaNoam/CitizensCMD/internal/domain/entities"
)

const sample = `# CitizensCMD language file
messages:
  # Errors shown to players
  errors:
    not-found: "Not found" # shown when nothing matches
    denied: 'No access'
  help:
    header: |
      Help page
    base: &base Hello
    alias: *base
  broken: just-a-string
other:
  key: value
`

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	d, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return d
}

func TestParse_Empty(t *testing.T) {
	for _, src := range []string{"", "\n", "~\n", "# only a comment\n"} {
		d, err := Parse([]byte(src))
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		if !d.Empty() {
			t.Errorf("Parse(%q) should be empty", src)
		}
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, src := range []string{"messages: [unclosed", "key: \"open\n  other", "- a\n- b\n"} {
		_, err := Parse([]byte(src))
		if !errors.Is(err, domain.ErrParse) {
			t.Errorf("Parse(%q) error = %v, want ErrParse", src, err)
		}
	}
}

func TestLookup(t *testing.T) {
	d := mustParse(t, sample)

	tests := []struct {
		path []string
		want string
		ok   bool
	}{
		{[]string{"messages", "errors", "not-found"}, "Not found", true},
		{[]string{"messages", "errors", "denied"}, "No access", true},
		{[]string{"messages", "help", "header"}, "Help page\n", true},
		{[]string{"messages", "help", "alias"}, "Hello", true},
		{[]string{"messages", "errors", "missing"}, "", false},
		{[]string{"messages", "broken", "deeper"}, "", false},
		{nil, "", false},
	}
	for _, tt := range tests {
		n, ok := d.Lookup(tt.path...)
		got := ""
		if ok {
			got = n.Value
		}
		if got != tt.want || ok != tt.ok {
			t.Errorf("Lookup(%v) = %q, %v; want %q, %v", tt.path, got, ok, tt.want, tt.ok)
		}
	}
	if n, ok := d.Lookup("messages", "errors"); !ok || n.Kind != yaml.MappingNode {
		t.Error("Lookup(messages, errors) should return the category mapping")
	}
}

func TestMessages(t *testing.T) {
	d := mustParse(t, sample)
	leaves, err := d.Messages()
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	var got []entities.FlatKey
	for _, l := range leaves {
		got = append(got, l.Key())
	}
	want := []entities.FlatKey{
		"messages.errors.not-found",
		"messages.errors.denied",
		"messages.help.header",
		"messages.help.base",
		"messages.help.alias",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Messages mismatch (-want +got):\n%s", diff)
	}
}

func TestMessages_DottedNames(t *testing.T) {
	d := mustParse(t, "messages:\n  errors:\n    \"a.b\": dotted\n    c: plain\n")
	leaves, err := d.Messages()
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	want := []Leaf{{Category: "errors", Name: "a.b"}, {Category: "errors", Name: "c"}}
	if diff := cmp.Diff(want, leaves); diff != "" {
		t.Fatalf("Messages mismatch (-want +got):\n%s", diff)
	}
	for _, l := range leaves {
		if _, ok := d.Lookup(l.Path()...); !ok {
			t.Errorf("leaf %s cannot be looked up again", l.Key())
		}
	}
	if err := d.SetValue(&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "user"}, leaves[0].Path()...); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if n, _ := d.Lookup(leaves[0].Path()...); n.Value != "user" {
		t.Errorf("a.b = %q, want user", n.Value)
	}
}

func TestMessages_MissingSection(t *testing.T) {
	d := mustParse(t, "other:\n  key: value\n")
	if _, err := d.Messages(); !errors.Is(err, domain.ErrMissingSection) {
		t.Fatalf("err = %v, want ErrMissingSection", err)
	}
	if _, err := (&Document{}).Messages(); !errors.Is(err, domain.ErrMissingSection) {
		t.Fatalf("empty document err = %v, want ErrMissingSection", err)
	}
}

func TestSetValue_KeepsComments(t *testing.T) {
	d := mustParse(t, sample)
	v := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "Nao encontrado"}
	if err := d.SetValue(v, "messages", "errors", "not-found"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	out, err := d.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	text := string(out)
	for _, want := range []string{
		"# CitizensCMD language file",
		"# Errors shown to players",
		"# shown when nothing matches",
		`"Nao encontrado"`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("encoded output missing %q:\n%s", want, text)
		}
	}

	again := mustParse(t, text)
	if n, _ := again.Lookup("messages", "errors", "not-found"); n.Value != "Nao encontrado" {
		t.Errorf("round trip value = %q", n.Value)
	}
	if n, _ := again.Lookup("other", "key"); n.Value != "value" {
		t.Errorf("unrelated key = %q", n.Value)
	}
}

func TestSetValue_MissingKey(t *testing.T) {
	d := mustParse(t, sample)
	v := &yaml.Node{Kind: yaml.ScalarNode, Value: "x"}
	if err := d.SetValue(v, "messages", "errors", "nope"); err == nil {
		t.Fatal("SetValue on a missing key should fail")
	}
	if err := d.SetValue(nil, "messages", "errors", "denied"); err == nil {
		t.Fatal("SetValue with nil value should fail")
	}
}

func TestSetValue_DoesNotShareNodes(t *testing.T) {
	d := mustParse(t, sample)
	src := mustParse(t, "messages:\n  errors:\n    denied:\n      - a\n      - b\n")
	v, _ := src.Lookup("messages", "errors", "denied")
	if err := d.SetValue(v, "messages", "errors", "denied"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	v.Content[0].Value = "changed"

	got, _ := d.Lookup("messages", "errors", "denied")
	if got.Kind != yaml.SequenceNode || got.Content[0].Value != "a" {
		t.Fatalf("copied value was modified through the source: %+v", got.Content[0])
	}
}

func TestEqual(t *testing.T) {
	d := mustParse(t, "a: 1\nb: \"1\"\nc: 1\nd: [x, y]\ne: [x, y]\nf: [x]\n")
	get := func(k string) *yaml.Node {
		n, ok := d.Lookup(k)
		if !ok {
			t.Fatalf("missing %s", k)
		}
		return n
	}
	if !Equal(get("a"), get("c")) {
		t.Error("a and c should be equal")
	}
	if Equal(get("a"), get("b")) {
		t.Error("int 1 and string \"1\" should differ")
	}
	if !Equal(get("d"), get("e")) {
		t.Error("d and e should be equal")
	}
	if Equal(get("d"), get("f")) {
		t.Error("d and f should differ")
	}
	if Equal(get("a"), nil) {
		t.Error("node and nil should differ")
	}
}
