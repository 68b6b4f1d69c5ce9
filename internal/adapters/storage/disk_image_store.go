package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskImageStore writes uploaded cover images under a local directory
// that the HTTP layer serves at /uploads. Filenames are randomized so
// concurrent uploads of the same file never collide.
type DiskImageStore struct {
	root string
}

func NewDiskImageStore(root string) *DiskImageStore {
	return &DiskImageStore{root: root}
}

func (s *DiskImageStore) SaveBookImage(originalName string, contents io.Reader) (string, error) {
	dir := filepath.Join(s.root, "books")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ext

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, contents); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return "/uploads/books/" + name, nil
}
