package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/linkalls/raterover/internal/logger"
	"github.com/linkalls/raterover/internal/models"
)

// FileRateStore persists the cached rate table as a single JSON document of
// key-value entries on local disk. It is the default backend so the service
// runs without any external storage.
type FileRateStore struct {
	path string
}

func NewFileRateStore(path string) *FileRateStore {
	return &FileRateStore{path: path}
}

// LoadRates reads the persisted record. A nil record without error means
// cache miss; a missing or unreadable file is a miss, not a failure.
func (s *FileRateStore) LoadRates(ctx context.Context) (*models.CacheRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Log.Warnw("cache file unreadable, treating as miss", "path", s.path, "error", err)
		}
		return nil, nil
	}

	var kv map[string]string
	if err := json.Unmarshal(raw, &kv); err != nil {
		logger.Log.Warnw("cache file malformed, treating as miss", "path", s.path, "error", err)
		return nil, nil
	}

	rec := decodeRecord(kv)

	logger.Log.Infow("file load",
		"path", s.path,
		"hit", rec != nil,
	)

	return rec, nil
}

// SaveRates writes the record to a temp file and renames it over the target,
// so readers never observe a partial write.
func (s *FileRateStore) SaveRates(ctx context.Context, rec models.CacheRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	kv, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(kv, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".rates-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}

	logger.Log.Infow("file save",
		"path", s.path,
		"anchor", rec.Anchor,
		"rates", len(rec.Rates),
	)

	return nil
}
