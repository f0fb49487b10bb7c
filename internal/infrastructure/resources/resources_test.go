package resources

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/MegaNoam/CitizensCMD/internal/domain/entities"
	"github.com/MegaNoam/CitizensCMD/internal/domain/messages"
	"github.com/MegaNoam/CitizensCMD/internal/infrastructure/yamldoc"
)

func TestBundle_Languages(t *testing.T) {
	got, err := NewBundle().Languages()
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	if diff := cmp.Diff([]string{"en", "pt"}, got); diff != "" {
		t.Errorf("Languages mismatch (-want +got):\n%s", diff)
	}
}

func TestBundle_OpenMissing(t *testing.T) {
	b := NewBundle()
	for _, lang := range []string{"xx", "../lang/en", ""} {
		if _, err := b.Open(lang); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(%q) err = %v, want fs.ErrNotExist", lang, err)
		}
	}
}

// Every bundled file must define every message the plugin can display.
func TestBundle_DefinesEveryMessage(t *testing.T) {
	b := NewBundle()
	langs, err := b.Languages()
	if err != nil {
		t.Fatalf("Languages: %v", err)
	}
	for _, lang := range langs {
		data, err := b.Open(lang)
		if err != nil {
			t.Fatalf("Open(%s): %v", lang, err)
		}
		doc, err := yamldoc.Parse(data)
		if err != nil {
			t.Fatalf("Parse(%s): %v", lang, err)
		}
		for _, m := range messages.All() {
			category, name, _ := m.Path().Split()
			if n, ok := doc.Lookup(entities.RootSection, category, name); !ok || n.Kind != yaml.ScalarNode {
				t.Errorf("%s.yml: missing %s (%s)", lang, m, m.Path())
			}
		}
	}
}
