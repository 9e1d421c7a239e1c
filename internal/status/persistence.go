// Package status tracks the last synchronization run of each source and
// optionally keeps it on disk.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:generate mockgen -destination=mocks/mock_status_persistence.go -package=mocks -source=persistence.go StatusPersistence

// StatusFileSuffix ends the name of every status file: <dir>/<source>.status.json
const StatusFileSuffix = ".status.json"

// StatusPersistence stores one SyncStatus per source
//
//nolint:revive // status.StatusPersistence reads fine at call sites
type StatusPersistence interface {
	SaveStatus(ctx context.Context, source string, status *SyncStatus) error

	// LoadStatus returns an empty SyncStatus for a source never saved
	LoadStatus(ctx context.Context, source string) (*SyncStatus, error)

	// LoadAllStatus skips files it cannot decode
	LoadAllStatus(ctx context.Context) (map[string]*SyncStatus, error)
}

type fileStatusPersistence struct {
	dir string
}

// NewFileStatusPersistence keeps status files in dir, creating it on first save
func NewFileStatusPersistence(dir string) StatusPersistence {
	return &fileStatusPersistence{dir: dir}
}

func (f *fileStatusPersistence) path(source string) string {
	return filepath.Join(f.dir, source+StatusFileSuffix)
}

func (f *fileStatusPersistence) SaveStatus(_ context.Context, source string, status *SyncStatus) error {
	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode status of %s: %w", source, err)
	}
	if err := os.MkdirAll(f.dir, 0750); err != nil {
		return fmt.Errorf("failed to create status directory: %w", err)
	}

	// readers see the old file or the new one, never a torn write
	tmp, err := os.CreateTemp(f.dir, "."+source+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary status file for %s: %w", source, err)
	}
	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write status of %s: %w", source, err)
	}
	if err := os.Rename(tmp.Name(), f.path(source)); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace status file of %s: %w", source, err)
	}
	return nil
}

func (f *fileStatusPersistence) LoadStatus(_ context.Context, source string) (*SyncStatus, error) {
	// #nosec G304 -- source is one of the fixed sync source names
	data, err := os.ReadFile(f.path(source))
	if errors.Is(err, fs.ErrNotExist) {
		return &SyncStatus{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read status of %s: %w", source, err)
	}

	status := &SyncStatus{}
	if err := json.Unmarshal(data, status); err != nil {
		return nil, fmt.Errorf("failed to decode status of %s: %w", source, err)
	}
	return status, nil
}

func (f *fileStatusPersistence) LoadAllStatus(ctx context.Context) (map[string]*SyncStatus, error) {
	entries, err := os.ReadDir(f.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]*SyncStatus{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list status directory: %w", err)
	}

	all := make(map[string]*SyncStatus, len(entries))
	for _, entry := range entries {
		source, ok := strings.CutSuffix(entry.Name(), StatusFileSuffix)
		if !ok || entry.IsDir() || source == "" {
			continue
		}
		if status, err := f.LoadStatus(ctx, source); err == nil {
			all[source] = status
		}
	}
	return all, nil
}
