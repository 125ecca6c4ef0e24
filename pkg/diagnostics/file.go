package diagnostics

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	verrors "github.com/matzehuels/ventriglisse/pkg/errors"
)

// FileStore writes each artifact as <id>.png and <id>.json in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := verrors.ValidateDir(dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the image (when present) and the metadata. It returns the
// path of the image, or of the metadata when there is no image.
func (s *FileStore) Save(ctx context.Context, a Artifact) (string, error) {
	meta, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", err
	}
	metaPath := filepath.Join(s.dir, a.ID+".json")
	if err := os.WriteFile(metaPath, meta, 0644); err != nil {
		return "", err
	}
	if len(a.Image) == 0 {
		return metaPath, nil
	}

	imgPath := filepath.Join(s.dir, a.ID+".png")
	if err := os.WriteFile(imgPath, a.Image, 0644); err != nil {
		return "", err
	}
	return imgPath, nil
}

// Load reads an artifact back, image included when one was saved.
func (s *FileStore) Load(id string) (Artifact, error) {
	var a Artifact
	meta, err := os.ReadFile(filepath.Join(s.dir, id+".json"))
	if err != nil {
		return a, err
	}
	if err := json.Unmarshal(meta, &a); err != nil {
		return a, err
	}
	img, err := os.ReadFile(filepath.Join(s.dir, id+".png"))
	if err == nil {
		a.Image = img
	} else if !os.IsNotExist(err) {
		return a, err
	}
	return a, nil
}

// Close does nothing for file store.
func (s *FileStore) Close(context.Context) error { return nil }

var _ Store = (*FileStore)(nil)
