package output

import "github.com/MegaNoam/CitizensCMD/internal/domain/entities"

// T renders loaded messages.
type T interface {
	// T renders the message stored at key. data is an optional map used for
	// template placeholders (may be nil). Missing keys render as "".
	T(key entities.FlatKey, data map[string]any) string
}

// Colorizer turns message markup into display colors.
type Colorizer interface {
	Colorize(s string) string
}
