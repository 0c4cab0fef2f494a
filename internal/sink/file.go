package sink

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	generr "github.com/KirkDiggler/laddercast-metadata/internal/errors"
)

// FileSinkConfig holds configuration for the directory sink
type FileSinkConfig struct {
	Dir string

	// CreateDir creates a missing output directory instead of failing
	CreateDir bool

	// Overwrite replaces files left by an earlier run. When false an existing
	// file is reported as a collision.
	Overwrite bool
}

type fileSink struct {
	dir       string
	overwrite bool
}

// NewFileSink creates a sink writing one file per record into cfg.Dir
func NewFileSink(cfg *FileSinkConfig) (Sink, error) {
	if cfg == nil || cfg.Dir == "" {
		return nil, generr.Configurationf("output directory is required")
	}

	info, err := os.Stat(cfg.Dir)
	switch {
	case errors.Is(err, fs.ErrNotExist) && cfg.CreateDir:
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, generr.WrapWithCode(err, generr.CodeConfiguration, "create output directory").
				WithMeta("dir", cfg.Dir)
		}
	case err != nil:
		return nil, generr.WrapWithCode(err, generr.CodeConfiguration, "output directory").
			WithMeta("dir", cfg.Dir)
	case !info.IsDir():
		return nil, generr.Configurationf("output path %s is not a directory", cfg.Dir).
			WithMeta("dir", cfg.Dir)
	}

	return &fileSink{
		dir:       cfg.Dir,
		overwrite: cfg.Overwrite,
	}, nil
}

// Write stores the record atomically: a temp file in the output directory is
// renamed over the final name, so readers never see a partial record.
func (s *fileSink) Write(ctx context.Context, id string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkID(id); err != nil {
		return err
	}

	path := filepath.Join(s.dir, id+Extension)
	if !s.overwrite {
		if _, err := os.Stat(path); err == nil {
			return generr.Collisionf("record %s already exists in %s", id, s.dir).WithMeta("id", id)
		}
	}

	tmp, err := os.CreateTemp(s.dir, "."+id+"-*.tmp")
	if err != nil {
		return generr.Wrapf(err, "create temp file for %s", id)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return generr.Wrapf(err, "write %s", id)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return generr.Wrapf(err, "close %s", id)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return generr.Wrapf(err, "chmod %s", id)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return generr.Wrapf(err, "rename %s", id)
	}

	return nil
}
