package resources

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/MegaNoam/CitizensCMD/internal/ports/output"
)

//go:embed lang/*.yml
var langFS embed.FS

var _ output.ResourceSource = (*Bundle)(nil)

// Bundle serves lang/<id>.yml files from a file system, by default the
// language files compiled into the binary.
type Bundle struct {
	fsys fs.FS
}

func NewBundle() *Bundle {
	return &Bundle{fsys: langFS}
}

// NewBundleFS serves resources from fsys instead of the embedded files.
func NewBundleFS(fsys fs.FS) *Bundle {
	return &Bundle{fsys: fsys}
}

func (b *Bundle) Open(lang string) ([]byte, error) {
	name := "lang/" + lang + ".yml"
	if lang == "" || strings.ContainsAny(lang, `/\`) || !fs.ValidPath(name) {
		return nil, fmt.Errorf("resource %q: %w", name, fs.ErrNotExist)
	}
	return fs.ReadFile(b.fsys, name)
}

// Languages lists the identifiers of every bundled language file.
func (b *Bundle) Languages() ([]string, error) {
	matches, err := fs.Glob(b.fsys, "lang/*.yml")
	if err != nil {
		return nil, err
	}
	langs := make([]string, 0, len(matches))
	for _, m := range matches {
		langs = append(langs, path.Base(m[:len(m)-len(".yml")]))
	}
	return langs, nil
}
