package entities

// LoadResult describes one run of the language load sequence.
type LoadResult struct {
	Language string
	Path     string
	Table    *MessageTable
	// Fallback is set when the requested language has no bundled resource and
	// the English defaults were used instead.
	Fallback bool
	// Created is set when the language file did not exist and was seeded.
	Created bool
	// Changed is set when saved overrides were applied onto the bundled defaults.
	Changed bool
	// Written is set when the language file on disk was (re)written.
	Written bool
}
