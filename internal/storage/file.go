package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSource reads a catalog document from the local filesystem
type FileSource struct {
	FilePath string
}

func NewFileSource(filePath string) *FileSource {
	return &FileSource{FilePath: filePath}
}

func (f *FileSource) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return data, nil
}

func (f *FileSource) Name() string {
	return filepath.Base(f.FilePath)
}
