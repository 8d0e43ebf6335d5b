package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/trangvu/lunacycle/internal/config"
)

// FileKV persists the key space as one JSON object in a single file,
// loaded on open and rewritten on every mutation. At user scale (one
// profile, a short cycle list, a bounded advice cache) the full rewrite
// is cheap and keeps the store crash-simple: the file is always a
// complete snapshot.
type FileKV struct {
	path string
	data map[string]string
}

// DefaultDataPath returns the per-user data file location, creating the
// application directory with owner-only permissions.
func DefaultDataPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrConfigDir, err)
	}

	appDir := filepath.Join(configDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.DataFileName), nil
}

// OpenFileKV loads the store at path, starting empty when the file does
// not exist yet.
func OpenFileKV(path string) (*FileKV, error) {
	kv := &FileKV{path: path, data: map[string]string{}}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug(config.MsgDataCreated,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyFile, path,
		)
		return kv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrDataLoad, err)
	}

	if err := json.Unmarshal(raw, &kv.data); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrDataLoad, err)
	}

	slog.Debug(config.MsgDataLoaded,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyFile, path,
		config.LogKeySizeBytes, len(raw),
	)
	return kv, nil
}

func (f *FileKV) Get(key string) (string, bool) {
	v, ok := f.data[key]
	return v, ok
}

func (f *FileKV) Set(key, value string) error {
	prev, existed := f.data[key]
	f.data[key] = value
	if err := f.persist(); err != nil {
		// Roll the in-memory view back so it keeps matching the file.
		if existed {
			f.data[key] = prev
		} else {
			delete(f.data, key)
		}
		return err
	}
	return nil
}

func (f *FileKV) Remove(key string) {
	if _, ok := f.data[key]; !ok {
		return
	}
	delete(f.data, key)
	if err := f.persist(); err != nil {
		slog.Warn(config.ErrDataPersist,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
	}
}

func (f *FileKV) Clear() {
	f.data = map[string]string{}
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn(config.ErrDataPersist,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyFile, f.path,
			config.LogKeyError, err,
		)
	}
}

func (f *FileKV) Keys() []string {
	keys := make([]string, 0, len(f.data))
	for k := range f.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// persist rewrites the snapshot with owner-only permissions. The write
// goes through a temp file and rename so a crash mid-write cannot leave
// a truncated store behind.
func (f *FileKV) persist() error {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrDataEncode, err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrDataPersist, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("%s: %w", config.ErrDataPersist, err)
	}
	return nil
}
