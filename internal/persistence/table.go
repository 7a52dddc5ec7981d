package persistence

import (
	"fmt"
	"os"
	"path/filepath"
)

// TableManager bridges configuration settings with local file organization.
// Each table owns a directory with its character sheets and roll log.
type TableManager struct {
	TablesDir string
}

// NewTableManager returns a manager localized to the configured tables directory.
func NewTableManager(tablesDir string) *TableManager {
	return &TableManager{TablesDir: tablesDir}
}

// GetTablePath produces safe joined dir paths.
func (m *TableManager) GetTablePath(table string) string {
	return filepath.Join(m.TablesDir, table)
}

// GetLogPath points at a table's roll log file.
func (m *TableManager) GetLogPath(table string) string {
	return filepath.Join(m.GetTablePath(table), "log.jsonl")
}

// Create generates the standard structure for a fresh table.
func (m *TableManager) Create(table string) (*Store, error) {
	path := m.GetTablePath(table)

	dirs := []string{
		path,
		filepath.Join(path, "characters"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return NewStore(m.GetLogPath(table))
}

// Load verifies and grabs the store of an existing table.
func (m *TableManager) Load(table string) (*Store, error) {
	path := m.GetTablePath(table)
	if stat, err := os.Stat(path); err != nil || !stat.IsDir() {
		return nil, fmt.Errorf("table folder not properly found: %s", path)
	}

	return NewStore(m.GetLogPath(table))
}
