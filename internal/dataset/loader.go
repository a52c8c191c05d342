package dataset

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"frauddash/adapters/tabular"
	"frauddash/domain/core"
	"frauddash/domain/dataset"
	"frauddash/internal"
)

// ReadFunc performs the actual read of the source file
type ReadFunc func() (*dataset.Relation, error)

// Loader reads the source table once and serves the same relation for the
// rest of the process. A failed load is remembered too; the file does not
// change while the process runs.
type Loader struct {
	path   string
	read   ReadFunc
	logger *internal.Logger

	once  sync.Once
	rel   *dataset.Relation
	err   error
	loads atomic.Int64
}

// NewLoader creates a loader for the configured file
func NewLoader(config tabular.ReaderConfig, logger *internal.Logger) *Loader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return NewLoaderWithReader(config.FilePath, func() (*dataset.Relation, error) {
		return tabular.ReadRelation(config, logger)
	}, logger)
}

// NewLoaderWithReader creates a loader around a custom read function
func NewLoaderWithReader(path string, read ReadFunc, logger *internal.Logger) *Loader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Loader{path: path, read: read, logger: logger}
}

// Load returns the memoized relation, reading the file on first use.
// Concurrent first callers wait for a single read.
func (l *Loader) Load() (*dataset.Relation, error) {
	first := false
	l.once.Do(func() {
		first = true
		l.load()
	})
	if !first {
		l.logger.Trace("[Loader] Serving cached %s", l.path)
	}
	return l.rel, l.err
}

// load runs inside the once. A panicking reader still leaves an error behind.
func (l *Loader) load() {
	l.loads.Add(1)
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			l.rel = nil
			l.err = core.NewDataUnavailableError(l.path, fmt.Errorf("reader panicked: %v", r))
			l.logger.Error("[Loader] Failed to load %s: %v", l.path, l.err)
		}
	}()

	rel, err := l.read()
	if err != nil {
		if !core.IsDataUnavailable(err) {
			err = core.NewDataUnavailableError(l.path, err)
		}
		l.logger.Error("[Loader] Failed to load %s: %v", l.path, err)
		l.err = err
		return
	}
	if rel == nil {
		l.err = core.NewDataUnavailableError(l.path, nil)
		return
	}

	l.rel = rel
	l.logger.Info("[Loader] Cached %s in %s", l.path, time.Since(start).Round(time.Millisecond))
}

// Loads reports how many times the file has been read
func (l *Loader) Loads() int {
	return int(l.loads.Load())
}

// Path returns the configured source path
func (l *Loader) Path() string {
	return l.path
}
