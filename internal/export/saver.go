package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Saver is the host environment's file-save mechanism.
type Saver interface {
	Save(filename, contentType string, data []byte) error
}

// DirSaver writes downloads into a directory on disk.
type DirSaver struct {
	Dir string
}

func (d DirSaver) Save(filename, _ string, data []byte) error {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(d.Dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export %s: %w", filename, err)
	}
	return nil
}

// SaveCSV renders records and hands the result to the saver.
func SaveCSV(saver Saver, records []Record, filename string) error {
	content, err := CSV(records)
	if err != nil {
		return err
	}
	return saver.Save(filename, "text/csv;charset=utf-8", []byte(content))
}

// SaveJSON renders data and hands the result to the saver.
func SaveJSON(saver Saver, data any, filename string) error {
	content, err := JSON(data)
	if err != nil {
		return err
	}
	return saver.Save(filename, "application/json;charset=utf-8", []byte(content))
}
