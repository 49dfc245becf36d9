package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/localrail/railbook/internal/logger"
)

// Collection is a whole-file JSON record store for a slice of entities.
//
// Load always reads the current on-disk state and Save rewrites the entire
// file, so there is no in-memory cache to go stale: callers that need fresh
// data simply call Load again. The store is self-healing — a missing, blank,
// or unparseable file is silently recreated from the collection's defaults.
// External tooling relies on this bootstrap behavior.
type Collection[T any] struct {
	path          string
	defaults      func() []T
	reseedOnEmpty bool
	logger        *logger.Logger
}

// NewCollection creates a Collection backed by the file at path.
//
// defaults produces the seed content written whenever the file has to be
// (re)created. When reseedOnEmpty is set, a file that parses to an empty
// slice is also treated as corrupt and reseeded; collections that are
// legitimately empty at first run (e.g. users) leave it unset.
func NewCollection[T any](path string, defaults func() []T, reseedOnEmpty bool, logger *logger.Logger) *Collection[T] {
	return &Collection[T]{
		path:          path,
		defaults:      defaults,
		reseedOnEmpty: reseedOnEmpty,
		logger:        logger,
	}
}

// Load reads and decodes the whole collection file.
//
// Unknown JSON fields are ignored (forward-compatible schema). If the file is
// missing, blank, or fails to decode, it is rewritten with the defaults and
// the defaults are returned. Only I/O failures surface as errors.
func (c *Collection[T]) Load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		c.logger.Info().Str("path", c.path).Msg("collection file missing, bootstrapping defaults")
		return c.bootstrap()
	}
	if err != nil {
		return nil, fmt.Errorf("read collection file %q: %w", c.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		c.logger.Warn().Str("path", c.path).Msg("collection file is blank, bootstrapping defaults")
		return c.bootstrap()
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Warn().Err(err).Str("path", c.path).Msg("collection file unreadable, recreating")
		return c.bootstrap()
	}

	if len(items) == 0 && c.reseedOnEmpty {
		c.logger.Warn().Str("path", c.path).Msg("collection file is empty, reseeding defaults")
		return c.bootstrap()
	}

	return items, nil
}

// Save rewrites the entire collection file with items.
//
// The write goes to a temp file in the same directory followed by a rename,
// so a crash mid-write leaves either the old content or the new content,
// never a torn file.
func (c *Collection[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create collection dir %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp collection file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp collection file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp collection file: %w", err)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace collection file %q: %w", c.path, err)
	}

	return nil
}

func (c *Collection[T]) bootstrap() ([]T, error) {
	items := c.defaults()
	if err := c.Save(items); err != nil {
		return nil, fmt.Errorf("bootstrap collection %q: %w", c.path, err)
	}
	return items, nil
}
