// internal/storage/jsonfile.go
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/kjk/common/atomicfile"
	"go.uber.org/zap"

	"biblioteka/internal/catalog"
)

// FileStore keeps the whole catalog in a single JSON document at a
// fixed path. Every Save replaces the document; there are no
// incremental updates, and no handle is held between calls.
type FileStore struct {
	path string
	log  *zap.Logger
}

// NewFileStore creates a store backed by the file at path. The file
// does not have to exist yet.
func NewFileStore(path string, log *zap.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Load reads the backing file. A missing or empty file is an empty
// catalog. A document that does not parse is logged and treated as
// empty; the bytes on disk are left alone until the next Save.
func (f *FileStore) Load() ([]catalog.Book, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var books []catalog.Book
	if err := json.Unmarshal(data, &books); err != nil {
		f.log.Warn("catalog file did not parse, starting with an empty catalog",
			zap.String("path", f.path), zap.Error(err))
		return nil, nil
	}
	return books, nil
}

// Save replaces the backing file with the given collection, written
// as indented UTF-8 JSON via a temp file and rename.
func (f *FileStore) Save(books []catalog.Book) error {
	if books == nil {
		books = []catalog.Book{}
	}
	data, err := json.MarshalIndent(books, "", "    ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	w, err := atomicfile.New(f.path)
	if err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	defer w.Close()
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}
