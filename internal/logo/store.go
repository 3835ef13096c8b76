package logo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rickgao/coin-logos/internal/model"
)

// Store is the output directory holding one PNG per symbol.
type Store struct {
	dir string
}

// NewStore creates the output directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the output directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the artifact path for symbol.
func (s *Store) Path(symbol string) string {
	return filepath.Join(s.dir, model.ArtifactName(symbol))
}

// Exists reports whether the artifact for symbol is already on disk.
// The result is advisory: a concurrent writer may create the file right after.
func (s *Store) Exists(symbol string) bool {
	_, err := os.Stat(s.Path(symbol))
	return err == nil
}

// Write stores data as the artifact for symbol. The data goes to a temporary
// file first and is renamed into place, so readers never see a partial file.
func (s *Store) Write(symbol string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, ".tmp-*"+model.ArtifactExt)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path(symbol)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename artifact: %w", err)
	}
	return nil
}
