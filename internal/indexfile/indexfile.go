// Package indexfile persists a resolved vault index as YAML so that other
// tools can look notes up by key without rescanning the vault.
//
// Writes go through a temp file and rename while holding an exclusive
// flock on "<path>.lock", so concurrent writers never interleave and readers
// never observe a partial file.
package indexfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/harrison/vaultscan/internal/resolve"
)

// Document is the on-disk index layout.
type Document struct {
	ScanID         string            `yaml:"scan_id"`
	GeneratedAt    time.Time         `yaml:"generated_at"`
	Root           string            `yaml:"root"`
	Extension      string            `yaml:"extension"`
	IncludeSubdirs []string          `yaml:"include_subdirs,omitempty"`
	IncludeRoot    bool              `yaml:"include_root"`
	Entries        map[string]string `yaml:"entries"`
}

// NewDocument captures ix together with the parameters that produced it.
func NewDocument(root, extension string, includeSubdirs []string, includeRoot bool, ix *resolve.Index) *Document {
	return &Document{
		ScanID:         uuid.NewString(),
		GeneratedAt:    time.Now().UTC().Truncate(time.Second),
		Root:           root,
		Extension:      extension,
		IncludeSubdirs: includeSubdirs,
		IncludeRoot:    includeRoot,
		Entries:        ix.Map(),
	}
}

// Marshal renders doc as YAML. Entry keys come out sorted.
func (doc *Document) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode index: %w", err)
	}
	return data, nil
}

// Write stores doc at path under an exclusive lock.
func Write(path string, doc *Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	return lockAndWrite(path, data)
}

// Read loads an index written by Write.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse index file: %w", err)
	}
	if doc.Entries == nil {
		doc.Entries = map[string]string{}
	}
	return &doc, nil
}

// lockAndWrite holds "<path>.lock" for the duration of an atomic write.
// The lock file stays on disk so every writer locks the same inode.
func lockAndWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	lockPath := path + ".lock"
	lock := flock.New(lockPath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", lockPath, err)
	}
	defer lock.Unlock()

	return atomicWrite(path, data)
}

// atomicWrite writes to a temp file in the target directory and renames it
// into place.
func atomicWrite(path string, data []byte) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	tempFile = nil
	return nil
}
