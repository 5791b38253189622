package status

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/garyburd/redigo/redis"
)

type Store interface {
	Publish(s *Snapshot) error
	// Latest returns nil when nothing has been published yet.
	Latest() (*Snapshot, error)
}

type MemoryStore struct {
	mu     sync.RWMutex
	latest *Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Publish(snapshot *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = snapshot
	return nil
}

func (s *MemoryStore) Latest() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, nil
}

// RedisStore keeps the latest snapshot as JSON so that other processes can
// read it.
type RedisStore struct {
	mu     sync.Mutex
	redis  redis.Conn
	Prefix string
}

func NewRedisStore(url, prefix string) (*RedisStore, error) {
	r, err := redis.DialURL(url)
	if err != nil {
		return nil, err
	}

	return &RedisStore{
		redis:  r,
		Prefix: prefix,
	}, nil
}

func (s *RedisStore) Publish(snapshot *Snapshot) error {
	j, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.redis.Do("SET", s.key("status"), string(j))
	return err
}

func (s *RedisStore) Latest() (*Snapshot, error) {
	s.mu.Lock()
	reply, err := redis.Bytes(s.redis.Do("GET", s.key("status")))
	s.mu.Unlock()
	if err == redis.ErrNil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{}
	if err := json.Unmarshal(reply, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *RedisStore) Close() error {
	return s.redis.Close()
}

func (s *RedisStore) key(k string) string {
	return fmt.Sprintf("%s%s", s.Prefix, k)
}
