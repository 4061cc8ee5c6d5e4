package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

// JSONStore keeps every map in a single local JSON file
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	data     *JSONData
}

// JSONData is the layout of the JSON file
type JSONData struct {
	Maps map[string]*Record `json:"maps"`
}

// NewJSONStore opens the store at filePath, creating the file if needed
func NewJSONStore(filePath string) (*JSONStore, error) {
	store := &JSONStore{
		filePath: filePath,
		data: &JSONData{
			Maps: make(map[string]*Record),
		},
	}

	if _, err := os.Stat(filePath); err == nil {
		if err := store.loadFromFile(); err != nil {
			return nil, fmt.Errorf("failed to load JSON store: %w", err)
		}
	} else {
		if err := store.saveToFile(); err != nil {
			return nil, fmt.Errorf("failed to create JSON store file: %w", err)
		}
	}

	return store, nil
}

func (js *JSONStore) loadFromFile() error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	file, err := os.ReadFile(js.filePath)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(file, js.data); err != nil {
		return err
	}
	if js.data.Maps == nil {
		js.data.Maps = make(map[string]*Record)
	}
	return nil
}

func (js *JSONStore) saveToFile() error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	data, err := json.MarshalIndent(js.data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(js.filePath, data, 0644)
}

// SaveMap stores record under name, replacing any existing map
func (js *JSONStore) SaveMap(name string, record *Record) error {
	if err := record.Map.Validate(); err != nil {
		return fmt.Errorf("refusing to save map %s: %w", name, err)
	}

	js.mutex.Lock()
	js.data.Maps[name] = record.clone()
	js.mutex.Unlock()

	return js.saveToFile()
}

// LoadMap returns the map stored under name
func (js *JSONStore) LoadMap(name string) (*Record, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	record, exists := js.data.Maps[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return record.clone(), nil
}

// ListMaps returns the stored map names in sorted order
func (js *JSONStore) ListMaps() ([]string, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	names := make([]string, 0, len(js.data.Maps))
	for name := range js.data.Maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// DeleteMap removes the map stored under name
func (js *JSONStore) DeleteMap(name string) error {
	js.mutex.Lock()
	if _, exists := js.data.Maps[name]; !exists {
		js.mutex.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(js.data.Maps, name)
	js.mutex.Unlock()

	return js.saveToFile()
}

// Close is a no-op for the JSON store
func (js *JSONStore) Close() error {
	return nil
}
