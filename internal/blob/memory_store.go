package blob

import (
	"context"
	"sync"
)

type memoryObject struct {
	data        []byte
	contentType string
}

// MemoryStore implements Store with in-memory storage, for tests and
// local runs without an S3 endpoint.
type MemoryStore struct {
	mu      sync.RWMutex
	bucket  string
	region  string
	objects map[string]memoryObject
}

func NewMemoryStore(bucket, region string) *MemoryStore {
	return &MemoryStore{
		bucket:  bucket,
		region:  region,
		objects: make(map[string]memoryObject),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return nil, ErrObjectNotFound
	}

	data := make([]byte, len(obj.data))
	copy(data, obj.data)
	return data, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, data []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.objects[key] = memoryObject{data: stored, contentType: contentType}
	return nil
}

func (s *MemoryStore) DeleteByURL(_ context.Context, objectURL string) error {
	bucket, key, err := ParseObjectURL(objectURL)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if bucket != s.bucket {
		return ErrObjectNotFound
	}
	if _, ok := s.objects[key]; !ok {
		return ErrObjectNotFound
	}
	delete(s.objects, key)
	return nil
}

func (s *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.objects[key]
	return ok, nil
}

func (s *MemoryStore) PublicURL(key string) string {
	return publicURL(s.bucket, s.region, key)
}

func (s *MemoryStore) Owns(objectURL string) bool {
	bucket, _, err := ParseObjectURL(objectURL)
	return err == nil && bucket == s.bucket
}

// ContentType reports the stored content type for key. Test helper.
func (s *MemoryStore) ContentType(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.objects[key].contentType
}
