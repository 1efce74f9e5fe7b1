package cache

import (
	"encoding/json"
	"fmt"

	"github.com/gomodule/redigo/redis"
	"github.com/tycoongames/tycoon-backend/app/engine"
)

// sessionTTL keeps abandoned games from living in redis forever.
const sessionTTL = 24 * 60 * 60 // seconds

// SessionStore persists one JSON snapshot per game under <game_id>.state,
// refreshed on every committed engine operation.
type SessionStore struct {
	pool *redis.Pool
}

func NewSessionStore(pool *redis.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

func sessionKey(gameID string) string {
	return fmt.Sprintf("%s.state", gameID)
}

func (s *SessionStore) Save(snap *engine.Snapshot) error {
	conn := s.pool.Get()
	defer conn.Close()

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return SetEx(sessionKey(snap.Id), sessionTTL, data, &conn)
}

func (s *SessionStore) Load(gameID string) (*engine.Snapshot, error) {
	conn := s.pool.Get()
	defer conn.Close()

	data, err := Get(sessionKey(gameID), &conn)
	if err == redis.ErrNil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap engine.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *SessionStore) Delete(gameID string) error {
	conn := s.pool.Get()
	defer conn.Close()

	return Del(sessionKey(gameID), &conn)
}
