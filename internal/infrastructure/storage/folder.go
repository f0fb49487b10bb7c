package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MegaNoam/CitizensCMD/internal/ports/output"
)

var _ output.LangStore = (*DataFolder)(nil)

// DataFolder keeps language files under <dir>/lang.
type DataFolder struct {
	dir string
}

func NewDataFolder(dir string) *DataFolder {
	return &DataFolder{dir: dir}
}

func (f *DataFolder) Path(lang string) string {
	return filepath.Join(f.dir, "lang", lang+".yml")
}

func (f *DataFolder) Read(lang string) ([]byte, error) {
	return os.ReadFile(f.Path(lang))
}

// Replace writes data to a scratch file next to the target and renames it
// into place. The scratch file never outlives the call.
func (f *DataFolder) Replace(lang string, data []byte) error {
	target := f.Path(lang)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+lang+"-*.yml")
	if err != nil {
		return fmt.Errorf("create scratch file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write scratch file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync scratch file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close scratch file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod scratch file: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("replace %s: %w", target, err)
	}
	return nil
}
