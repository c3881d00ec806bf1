package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/binehq/bine-server/pkg/utils"
)

// AttachmentPath builds the relative storage path for a note attachment:
// note/YYYY/MM/DD/YYYYMMDD-HHMMSS-<username>-<suffix><ext>. The random
// suffix keeps two uploads by the same user within the same second from
// colliding.
func AttachmentPath(username, filename string, now time.Time) string {
	now = now.UTC()
	ext := path.Ext(filename)
	dir := now.Format("note/2006/01/02")
	name := fmt.Sprintf("%s-%s-%s%s", now.Format("20060102-150405"), username, utils.RandomID(6), ext)
	return path.Join(dir, name)
}

// MediaStore writes uploaded files under a local media root.
type MediaStore struct {
	Root string
}

func NewMediaStore(root string) *MediaStore {
	return &MediaStore{Root: root}
}

// Save writes src to relPath under the media root, creating parent
// directories as needed, and returns the relative path.
func (s *MediaStore) Save(relPath string, src io.Reader) (string, error) {
	fullPath := filepath.Join(s.Root, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return relPath, nil
}

// Remove deletes a previously saved file. Missing files are not an error.
func (s *MediaStore) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.Root, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
