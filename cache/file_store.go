package cache

import (
	goerrors "errors"
	"fmt"
	"movie-rec/errors"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const fileExt = ".json"

// FileStore writes one file per key inside a directory. File names are the
// query-escaped key, so "model:learned" lives in "model%3Alearned.json".
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, url.QueryEscape(key)+fileExt)
}

func (f *FileStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if goerrors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errors.ErrMissingCache, key)
		}
		return nil, fmt.Errorf("read cache file: %w", err)
	}
	return data, nil
}

// Put writes to a temporary file first so that a crash never leaves a truncated artifact.
func (f *FileStore) Put(key string, value []byte) error {
	path := f.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("write temp cache file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename cache file: %w", err)
	}
	return nil
}

func (f *FileStore) Delete(key string) error {
	if err := os.Remove(f.path(key)); err != nil && !goerrors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove cache file: %w", err)
	}
	return nil
}

// Keys lists the stored artifact keys in lexical order.
func (f *FileStore) Keys() ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("list cache dir: %w", err)
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		key, err := url.QueryUnescape(strings.TrimSuffix(e.Name(), fileExt))
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
