package output

// ResourceSource provides the language files bundled with the plugin.
type ResourceSource interface {
	// Open returns the bundled file for lang. A missing resource reports an
	// error matching fs.ErrNotExist.
	Open(lang string) ([]byte, error)
}

// LangStore is the plugin's data folder holding the user's language files.
type LangStore interface {
	Path(lang string) string
	// Read returns the saved file for lang; missing files match fs.ErrNotExist.
	Read(lang string) ([]byte, error)
	// Replace atomically swaps the saved file for lang with data.
	Replace(lang string, data []byte) error
}
