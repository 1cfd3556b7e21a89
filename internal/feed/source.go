package feed

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/cenkalti/backoff/v5"
	"github.com/rovshanmuradov/tokenboard/internal/viewmodel"
)

// Digest identifies the exact bytes a snapshot was decoded from
type Digest [sha256.Size]byte

// Source produces snapshots for the dashboard
type Source interface {
	Load(ctx context.Context) (viewmodel.Snapshot, Digest, error)
}

// FileSource reads a JSON snapshot {"wallets": [...], "tokens": [...]} that
// the data layer writes to disk
type FileSource struct {
	path string
}

// NewFileSource creates a source reading path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the snapshot file path
func (fs *FileSource) Path() string {
	return fs.path
}

// Load reads, decodes and validates the snapshot. Validation failures are
// marked permanent: retrying the same bytes cannot help.
func (fs *FileSource) Load(ctx context.Context) (viewmodel.Snapshot, Digest, error) {
	if err := ctx.Err(); err != nil {
		return viewmodel.Snapshot{}, Digest{}, backoff.Permanent(err)
	}

	data, err := os.ReadFile(fs.path)
	if err != nil {
		return viewmodel.Snapshot{}, Digest{}, fmt.Errorf("read snapshot %s: %w", fs.path, err)
	}

	snap, err := Decode(data)
	if err != nil {
		var invalid *InvalidSnapshotError
		if errors.As(err, &invalid) {
			return viewmodel.Snapshot{}, Digest{}, backoff.Permanent(err)
		}
		return viewmodel.Snapshot{}, Digest{}, err
	}

	return snap, sha256.Sum256(data), nil
}

// InvalidSnapshotError is returned for a well-formed snapshot that breaks
// the hand-off guarantees
type InvalidSnapshotError struct {
	Err error
}

func (e *InvalidSnapshotError) Error() string {
	return "invalid snapshot: " + e.Err.Error()
}

func (e *InvalidSnapshotError) Unwrap() error {
	return e.Err
}

// Decode parses and validates snapshot JSON. Missing lists decode as empty.
func Decode(data []byte) (viewmodel.Snapshot, error) {
	var snap viewmodel.Snapshot
	if len(bytes.TrimSpace(data)) == 0 {
		return snap, errors.New("decode snapshot: empty document")
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return viewmodel.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := snap.Validate(); err != nil {
		return viewmodel.Snapshot{}, &InvalidSnapshotError{Err: err}
	}
	return snap, nil
}
