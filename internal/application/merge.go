package application

import (
	"fmt"

	"github.com/MegaNoam/CitizensCMD/internal/domain"
	"github.com/MegaNoam/CitizensCMD/internal/infrastructure/yamldoc"
)

// Merge copies the user's saved values onto the bundled defaults and returns
// the bundled document, edited in place.
//
// Only keys two levels under messages that exist in both documents are
// copied; new bundled keys keep their defaults and keys that only exist in
// saved are dropped. Comments of the bundled document are left untouched.
// changed reports whether any value actually differed.
func Merge(bundled, saved *yamldoc.Document) (*yamldoc.Document, bool, error) {
	if bundled == nil || bundled.Empty() {
		return bundled, false, domain.ErrMissingResource
	}
	if saved == nil || saved.Empty() {
		return bundled, false, nil
	}
	leaves, err := bundled.Messages()
	if err != nil {
		return bundled, false, err
	}

	changed := false
	for _, leaf := range leaves {
		override, ok := saved.Lookup(leaf.Path()...)
		if !ok {
			continue
		}
		current, _ := bundled.Lookup(leaf.Path()...)
		if yamldoc.Equal(current, override) {
			continue
		}
		if err := bundled.SetValue(override, leaf.Path()...); err != nil {
			return bundled, changed, fmt.Errorf("merge %s: %w", leaf.Key(), err)
		}
		changed = true
	}
	return bundled, changed, nil
}
