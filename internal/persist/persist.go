// Package persist is the durable-storage boundary: a key-value byte store
// addressed by a single fixed key, fronted by a debounced write adapter.
package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// KV is a minimal key-value byte store.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileKV stores each key as a file under a directory, written atomically
// via a temp file and rename.
type FileKV struct {
	dir string
}

func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key)
}

func (f *FileKV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (f *FileKV) Set(key string, value []byte) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(key))
}

func (f *FileKV) Delete(key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Adapter debounces snapshot writes to a single fixed key. Persist coalesces
// to the trailing call within the debounce window; PersistNow writes
// synchronously and supersedes any pending write. Write failures never
// propagate to the triggering mutation: the in-memory change has already
// succeeded, only durability is at risk, so the adapter raises a
// user-visible warning flag instead.
type Adapter struct {
	kv    KV
	key   string
	delay time.Duration
	log   zerolog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending []byte
	warning bool
}

func NewAdapter(kv KV, key string, delay time.Duration, log zerolog.Logger) *Adapter {
	return &Adapter{
		kv:    kv,
		key:   key,
		delay: delay,
		log:   log.With().Str("component", "persist").Logger(),
	}
}

// Load reads the stored snapshot bytes. A read failure is treated the same
// as an empty store; hydration falls back to defaults either way.
func (a *Adapter) Load() ([]byte, bool) {
	data, ok, err := a.kv.Get(a.key)
	if err != nil {
		a.log.Error().Err(err).Msg("snapshot read failed")
		return nil, false
	}
	return data, ok
}

// Persist schedules a debounced write of data. Each call supersedes the
// previous pending payload; only the trailing one within the window lands.
func (a *Adapter) Persist(data []byte) {
	if data == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pending = data
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.flushPending)
}

func (a *Adapter) flushPending() {
	a.mu.Lock()
	data := a.pending
	a.pending = nil
	a.timer = nil
	a.mu.Unlock()

	if data == nil {
		return
	}
	a.write(data)
}

// PersistNow writes synchronously, cancelling any pending debounced write.
func (a *Adapter) PersistNow(data []byte) error {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.pending = nil
	a.mu.Unlock()

	if data == nil {
		return nil
	}
	return a.write(data)
}

// Flush writes any pending snapshot immediately. Called on shutdown.
func (a *Adapter) Flush() {
	a.flushPending()
}

// Warning reports whether the last write failed.
func (a *Adapter) Warning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.warning
}

func (a *Adapter) write(data []byte) error {
	err := a.kv.Set(a.key, data)
	a.mu.Lock()
	a.warning = err != nil
	a.mu.Unlock()
	if err != nil {
		a.log.Error().Err(err).Msg("snapshot write failed")
	}
	return err
}
