package persist

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKVRoundTrip(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	_, ok, err := kv.Get("snapshot")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("snapshot", []byte(`{"a":1}`)))
	data, ok, err := kv.Get("snapshot")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), data)

	require.NoError(t, kv.Delete("snapshot"))
	_, ok, err = kv.Get("snapshot")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is a no-op.
	require.NoError(t, kv.Delete("snapshot"))
}

// countingKV records writes and optionally fails them.
type countingKV struct {
	mu    sync.Mutex
	sets  int
	last  []byte
	fail  bool
	store map[string][]byte
}

func newCountingKV() *countingKV {
	return &countingKV{store: make(map[string][]byte)}
}

func (k *countingKV) Get(key string) ([]byte, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	v, ok := k.store[key]
	return v, ok, nil
}

func (k *countingKV) Set(key string, value []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.fail {
		return errors.New("quota exceeded")
	}
	k.sets++
	k.last = value
	k.store[key] = value
	return nil
}

func (k *countingKV) Delete(key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.store, key)
	return nil
}

func (k *countingKV) snapshot() (int, []byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.sets, k.last
}

func TestAdapterDebouncesToTrailingWrite(t *testing.T) {
	kv := newCountingKV()
	a := NewAdapter(kv, "snap", 30*time.Millisecond, zerolog.Nop())

	a.Persist([]byte("one"))
	a.Persist([]byte("two"))
	a.Persist([]byte("three"))

	sets, _ := kv.snapshot()
	assert.Equal(t, 0, sets, "nothing lands inside the debounce window")

	require.Eventually(t, func() bool {
		sets, last := kv.snapshot()
		return sets == 1 && string(last) == "three"
	}, time.Second, 5*time.Millisecond, "only the trailing write lands")
}

func TestAdapterPersistNowSupersedesPending(t *testing.T) {
	kv := newCountingKV()
	a := NewAdapter(kv, "snap", 50*time.Millisecond, zerolog.Nop())

	a.Persist([]byte("debounced"))
	require.NoError(t, a.PersistNow([]byte("immediate")))

	sets, last := kv.snapshot()
	assert.Equal(t, 1, sets)
	assert.Equal(t, "immediate", string(last))

	// The cancelled debounced write never lands.
	time.Sleep(80 * time.Millisecond)
	sets, last = kv.snapshot()
	assert.Equal(t, 1, sets)
	assert.Equal(t, "immediate", string(last))
}

func TestAdapterFlushLandsPendingWrite(t *testing.T) {
	kv := newCountingKV()
	a := NewAdapter(kv, "snap", time.Hour, zerolog.Nop())

	a.Persist([]byte("pending"))
	a.Flush()

	sets, last := kv.snapshot()
	assert.Equal(t, 1, sets)
	assert.Equal(t, "pending", string(last))
}

func TestAdapterWarningOnWriteFailure(t *testing.T) {
	kv := newCountingKV()
	a := NewAdapter(kv, "snap", time.Millisecond, zerolog.Nop())

	kv.fail = true
	require.Error(t, a.PersistNow([]byte("doomed")))
	assert.True(t, a.Warning())

	// A later successful write clears the warning.
	kv.fail = false
	require.NoError(t, a.PersistNow([]byte("fine")))
	assert.False(t, a.Warning())
}

func TestAdapterLoad(t *testing.T) {
	kv := newCountingKV()
	a := NewAdapter(kv, "snap", time.Millisecond, zerolog.Nop())

	_, ok := a.Load()
	assert.False(t, ok)

	require.NoError(t, a.PersistNow([]byte("state")))
	data, ok := a.Load()
	assert.True(t, ok)
	assert.Equal(t, "state", string(data))
}
