package application

import (
	"github.com/MegaNoam/CitizensCMD/internal/domain/entities"
	"github.com/MegaNoam/CitizensCMD/internal/domain/messages"
	"github.com/MegaNoam/CitizensCMD/internal/ports/output"
)

// Messages serves lookups from one loaded table. Missing translations come
// back as empty strings, never as errors.
type Messages struct {
	table      *entities.MessageTable
	colorizer  output.Colorizer
	translator output.T
}

// NewMessages wraps table. translator may be nil, in which case Render falls
// back to the raw text.
func NewMessages(table *entities.MessageTable, colorizer output.Colorizer, translator output.T) *Messages {
	if table == nil {
		table = entities.EmptyTable("")
	}
	return &Messages{
		table:      table,
		colorizer:  colorizer,
		translator: translator,
	}
}

// Lookup returns the raw text stored at key.
func (m *Messages) Lookup(key entities.FlatKey) (string, bool) {
	return m.table.Get(key)
}

// Colored returns msg with its color codes translated.
func (m *Messages) Colored(msg messages.Message) string {
	return m.colorize(m.Uncolored(msg))
}

// Uncolored returns msg exactly as written in the language file.
func (m *Messages) Uncolored(msg messages.Message) string {
	raw, _ := m.table.Get(msg.Path())
	return raw
}

// Render fills the placeholders of msg from data and colors the result.
func (m *Messages) Render(msg messages.Message, data map[string]any) string {
	if m.translator == nil || len(data) == 0 {
		return m.Colored(msg)
	}
	return m.colorize(m.translator.T(msg.Path(), data))
}

// Missing lists the enumerated messages the table has no text for.
func (m *Messages) Missing() []messages.Message {
	var missing []messages.Message
	for _, msg := range messages.All() {
		if _, ok := m.table.Get(msg.Path()); !ok {
			missing = append(missing, msg)
		}
	}
	return missing
}

func (m *Messages) colorize(s string) string {
	if m.colorizer == nil {
		return s
	}
	return m.colorizer.Colorize(s)
}
