package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store is a small persistent string key-value store.
type Store interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// MemoryStore keeps values for the lifetime of the process.
type MemoryStore map[string]string

func (m MemoryStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MemoryStore) Set(key string, value string) error {
	m[key] = value
	return nil
}

// FileStore keeps values in a JSON object on disk, rewritten on every Set.
type FileStore struct {
	Path string

	values map[string]string
}

// OpenFileStore loads path. A missing file is an empty store.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{Path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read store %s: %s", path, err)
	}

	if len(data) == 0 {
		return s, nil
	}

	err = json.Unmarshal(data, &s.values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse store %s: %s", path, err)
	}

	return s, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStore) Set(key string, value string) error {
	s.values[key] = value

	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory %s: %s", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*")
	if err != nil {
		return fmt.Errorf("failed to write store %s: %s", s.Path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write store %s: %s", s.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write store %s: %s", s.Path, err)
	}

	return os.Rename(tmp.Name(), s.Path)
}
