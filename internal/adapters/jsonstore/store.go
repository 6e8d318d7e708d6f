package jsonstore_adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store — потокобезопасное файловое JSON-хранилище "ключ — документ".
// Каждое пространство имен живет в своем файле. Запись атомарна:
// сначала во временный файл, затем rename — прерванная запись не может
// оставить файл наполовину записанным.
type Store struct {
	mu       sync.RWMutex
	filePath string
}

// NewStore создает хранилище в каталоге dataDir.
func NewStore(dataDir, filename string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Store{filePath: filepath.Join(dataDir, filename)}, nil
}

// Load читает документ в переданное значение.
// Отсутствующий файл — не ошибка: значение остается нулевым.
func (s *Store) Load(v any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := os.Open(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open store file: %w", err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(v); err != nil {
		return fmt.Errorf("failed to decode store file: %w", err)
	}
	return nil
}

// Save атомарно записывает документ. К моменту возврата данные читаемы:
// между возвратом и видимостью сохраненного значения нет окна.
func (s *Store) Save(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tempFile := s.filePath + ".tmp"
	file, err := os.Create(tempFile)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		file.Close()
		os.Remove(tempFile)
		return fmt.Errorf("failed to encode store file: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
