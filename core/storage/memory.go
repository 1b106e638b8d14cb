package storage

import (
	"context"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"
)

type memoryObject struct {
	data     []byte
	info     ObjectInfo
	metadata map[string]string
}

// MemoryStore is an in-process ObjectStore for development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
	putErrs map[string]error
	puts    int
	now     func() time.Time
	baseURL string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[string]memoryObject),
		putErrs: make(map[string]error),
		now:     time.Now,
		baseURL: "memory://tracks/",
	}
}

// SetClock overrides the time source used for LastModified.
func (m *MemoryStore) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// FailPut makes every Put of key fail with err until cleared with a nil err.
func (m *MemoryStore) FailPut(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.putErrs, key)
		return
	}
	m.putErrs[key] = err
}

// PutCount returns the number of Put calls seen, successful or not.
func (m *MemoryStore) PutCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.puts
}

// Seed stores an object with explicit metadata, bypassing Put.
func (m *MemoryStore) Seed(key string, size int64, modified time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = memoryObject{
		data: make([]byte, size),
		info: ObjectInfo{Key: key, Size: size, LastModified: modified, ContentType: "application/octet-stream"},
	}
}

// Delete removes key.
func (m *MemoryStore) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
}

func (m *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	_, found, err := m.Stat(ctx, key)
	return found, err
}

func (m *MemoryStore) Stat(ctx context.Context, key string) (ObjectInfo, bool, error) {
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	if !ok {
		return ObjectInfo{}, false, nil
	}
	return obj.info, true, nil
}

func (m *MemoryStore) Put(ctx context.Context, key string, data []byte, contentType string, metadata map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	if err, ok := m.putErrs[key]; ok {
		return err
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.objects[key] = memoryObject{
		data:     buf,
		metadata: metadata,
		info: ObjectInfo{
			Key:          key,
			Size:         int64(len(data)),
			LastModified: m.now(),
			ContentType:  contentType,
		},
	}
	return nil
}

func (m *MemoryStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u := m.baseURL + url.PathEscape(key) + "?expires=" + m.now().Add(expiry).UTC().Format(time.RFC3339)
	return u, nil
}

func (m *MemoryStore) BucketExists(ctx context.Context) (bool, error) {
	return true, nil
}

func (m *MemoryStore) CreateBucket(ctx context.Context) error {
	return nil
}

func (m *MemoryStore) ListKeys(ctx context.Context, prefix string, max int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for key := range m.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if max > 0 && len(keys) > max {
		keys = keys[:max]
	}
	return keys, nil
}
