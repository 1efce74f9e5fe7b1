package engine

import (
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/tycoongames/tycoon-backend/app/models"
)

// Store persists committed session snapshots between requests.
type Store interface {
	Save(snap *Snapshot) error
	Load(gameID string) (*Snapshot, error)
	Delete(gameID string) error
}

// Manager owns the live sessions and serializes every operation against a
// session, which is all the locking the engine itself relies on. A nil store
// keeps sessions memory-only.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	spaces   []models.Space
	store    Store
	log      *logrus.Entry
}

func NewManager(spaces []models.Space, store Store) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		spaces:   spaces,
		store:    store,
		log:      logrus.WithField("component", "engine"),
	}
}

// Start creates and registers a session. An empty gameID gets a generated
// one; a zero seed picks one from the clock.
func (m *Manager) Start(gameID string, players []PlayerInfo, seed int64) (*Snapshot, error) {
	if gameID == "" {
		gameID = uuid.NewV4().String()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[gameID]; ok {
		return nil, ErrInvalidSetup
	}
	session, err := NewSession(gameID, players, m.spaces, NewDice(seed))
	if err != nil {
		return nil, err
	}
	m.sessions[gameID] = session
	m.log.WithFields(logrus.Fields{"game_id": gameID, "players": len(players)}).Info("session started")
	return m.persist(session), nil
}

// Roll runs one turn for the player and returns the outcome with the updated
// state.
func (m *Manager) Roll(gameID, playerID string) (*Turn, *Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, err := m.session(gameID)
	if err != nil {
		return nil, nil, err
	}
	turn, err := session.Roll(playerID)
	if err != nil {
		return nil, nil, err
	}
	if turn.GameOver {
		m.log.WithFields(logrus.Fields{"game_id": gameID, "winner": turn.Winner}).Info("game over")
	}
	return turn, m.persist(session), nil
}

// State is a pure read of the full session snapshot.
func (m *Manager) State(gameID string) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, err := m.session(gameID)
	if err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}

func (m *Manager) Buy(gameID, playerID string, pos int) (*Snapshot, error) {
	return m.apply(gameID, func(s *Session) error { return s.Buy(playerID, pos) })
}

func (m *Manager) Mortgage(gameID, playerID string, pos int) (*Snapshot, error) {
	return m.apply(gameID, func(s *Session) error { return s.Mortgage(playerID, pos) })
}

func (m *Manager) Unmortgage(gameID, playerID string, pos int) (*Snapshot, error) {
	return m.apply(gameID, func(s *Session) error { return s.Unmortgage(playerID, pos) })
}

func (m *Manager) Bankrupt(gameID, playerID string) (*Snapshot, error) {
	return m.apply(gameID, func(s *Session) error { return s.Bankrupt(playerID, "") })
}

func (m *Manager) Forfeit(gameID, playerID string) (*Snapshot, error) {
	return m.apply(gameID, func(s *Session) error { return s.Forfeit(playerID) })
}

func (m *Manager) UseJailCard(gameID, playerID string) (*Snapshot, error) {
	return m.apply(gameID, func(s *Session) error { return s.UseJailCard(playerID) })
}

// Remove drops a session from memory and the store once a room is done with it.
func (m *Manager) Remove(gameID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, gameID)
	if m.store != nil {
		if err := m.store.Delete(gameID); err != nil {
			m.log.WithError(err).WithField("game_id", gameID).Warn("store delete failed")
		}
	}
}

func (m *Manager) apply(gameID string, op func(*Session) error) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, err := m.session(gameID)
	if err != nil {
		return nil, err
	}
	if err := op(session); err != nil {
		return nil, err
	}
	return m.persist(session), nil
}

// session finds a live session, falling back to the store so a restarted
// process can resume games.
func (m *Manager) session(gameID string) (*Session, error) {
	if session, ok := m.sessions[gameID]; ok {
		return session, nil
	}
	if m.store == nil {
		return nil, ErrSessionNotFound
	}
	snap, err := m.store.Load(gameID)
	if err != nil || snap == nil {
		return nil, ErrSessionNotFound
	}
	session, err := Restore(snap, m.spaces)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	m.sessions[gameID] = session
	m.log.WithField("game_id", gameID).Info("session resumed from store")
	return session, nil
}

func (m *Manager) persist(session *Session) *Snapshot {
	snap := session.Snapshot()
	if m.store != nil {
		if err := m.store.Save(snap); err != nil {
			m.log.WithError(err).WithField("game_id", session.Id).Warn("store save failed")
		}
	}
	return snap
}
