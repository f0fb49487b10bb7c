package application

import (
	"gopkg.in/yaml.v3"

	"github.com/MegaNoam/CitizensCMD/internal/domain/entities"
	"github.com/MegaNoam/CitizensCMD/internal/infrastructure/yamldoc"
)

// BuildTable flattens every scalar two levels under the messages section of
// doc. Deeper, shallower, null and non-scalar values are left out.
func BuildTable(lang string, doc *yamldoc.Document) (*entities.MessageTable, error) {
	leaves, err := doc.Messages()
	if err != nil {
		return entities.EmptyTable(lang), err
	}
	entries := make(map[entities.FlatKey]string, len(leaves))
	for _, leaf := range leaves {
		n, ok := doc.Lookup(leaf.Path()...)
		if !ok || n.Kind != yaml.ScalarNode || n.ShortTag() == "!!null" {
			continue
		}
		entries[leaf.Key()] = n.Value
	}
	return entities.NewMessageTable(lang, entries), nil
}
