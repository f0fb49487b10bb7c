package i18n

import (
	"log"
	"text/template/parse"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/MegaNoam/CitizensCMD/internal/domain/entities"
	"github.com/MegaNoam/CitizensCMD/internal/ports/output"
)

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer, filled from
// a loaded message table so messages can use {{.Placeholder}} templates.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	table     *entities.MessageTable
}

// NewTranslator registers every entry of table under the table's language.
// Unparseable language identifiers are registered as English.
func NewTranslator(table *entities.MessageTable) *Translator {
	tag, err := language.Parse(table.Language())
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)

	for _, key := range table.Keys() {
		text, _ := table.Get(key)
		if err := bundle.AddMessages(tag, &i18n.Message{ID: key.String(), Other: text}); err != nil {
			log.Printf("i18n: failed to register %s: %v", key, err)
		}
	}

	return &Translator{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		table:     table,
	}
}

// T renders the message stored at key with data.
// Missing keys render as "". Placeholders absent from data are left as
// written. When the template cannot be executed the raw text is returned.
func (t *Translator) T(key entities.FlatKey, data map[string]any) string {
	if key == "" {
		return ""
	}
	raw, ok := t.table.Get(key)
	if !ok {
		return ""
	}

	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key.String(),
		TemplateData: withPlaceholders(raw, data),
	})
	if err != nil {
		log.Printf("i18n: localize failed (key=%s): %v", key, err)
		return raw
	}
	return msg
}

// withPlaceholders returns data extended so every {{.Name}} of text that data
// does not supply renders as itself.
func withPlaceholders(text string, data map[string]any) map[string]any {
	trees, err := parse.Parse("message", text, "", "")
	if err != nil {
		return data
	}
	var names []string
	for _, tree := range trees {
		names = fields(tree.Root, names)
	}

	var filled map[string]any
	for _, name := range names {
		if _, ok := data[name]; ok {
			continue
		}
		if filled == nil {
			filled = make(map[string]any, len(data)+len(names))
			for k, v := range data {
				filled[k] = v
			}
		}
		filled[name] = "{{." + name + "}}"
	}
	if filled == nil {
		return data
	}
	return filled
}

// fields appends the top-level field names referenced under node.
func fields(node parse.Node, names []string) []string {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return names
		}
		for _, c := range n.Nodes {
			names = fields(c, names)
		}
	case *parse.ActionNode:
		names = fields(n.Pipe, names)
	case *parse.PipeNode:
		if n == nil {
			return names
		}
		for _, cmd := range n.Cmds {
			for _, arg := range cmd.Args {
				names = fields(arg, names)
			}
		}
	case *parse.FieldNode:
		names = append(names, n.Ident[0])
	case *parse.IfNode:
		names = branch(&n.BranchNode, names)
	case *parse.RangeNode:
		names = branch(&n.BranchNode, names)
	case *parse.WithNode:
		names = branch(&n.BranchNode, names)
	}
	return names
}

func branch(b *parse.BranchNode, names []string) []string {
	names = fields(b.Pipe, names)
	names = fields(b.List, names)
	return fields(b.ElseList, names)
}
