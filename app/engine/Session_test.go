package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tycoongames/tycoon-backend/platform/board"
)

func TestNewSessionValidation(t *testing.T) {
	spaces := board.LoadSpaces()

	cases := []struct {
		name    string
		players []PlayerInfo
	}{
		{"one player", []PlayerInfo{{Id: "a", Name: "a"}}},
		{"nine players", []PlayerInfo{
			{Id: "a", Name: "a"}, {Id: "b", Name: "b"}, {Id: "c", Name: "c"},
			{Id: "d", Name: "d"}, {Id: "e", Name: "e"}, {Id: "f", Name: "f"},
			{Id: "g", Name: "g"}, {Id: "h", Name: "h"}, {Id: "i", Name: "i"},
		}},
		{"empty name", []PlayerInfo{{Id: "a", Name: "a"}, {Id: "b", Name: ""}}},
		{"empty id", []PlayerInfo{{Id: "a", Name: "a"}, {Id: "", Name: "b"}}},
		{"duplicate name", []PlayerInfo{{Id: "a", Name: "x"}, {Id: "b", Name: "x"}}},
		{"duplicate id", []PlayerInfo{{Id: "a", Name: "x"}, {Id: "a", Name: "y"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSession("g", tc.players, spaces, NewDice(1))
			assert.ErrorIs(t, err, ErrInvalidSetup)
		})
	}

	_, err := NewSession("g", []PlayerInfo{{Id: "a", Name: "a"}, {Id: "b", Name: "b"}}, spaces[:10], NewDice(1))
	assert.ErrorIs(t, err, ErrInvalidSetup, "truncated board")
}

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession(t, NewDice(1), "alice", "bob", "carol")

	require.Len(t, s.Players, 3)
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, StatusInProgress, s.Status)
	for _, p := range s.Players {
		assert.Equal(t, StartingCash, p.Cash)
		assert.Equal(t, 0, p.Position)
		assert.Empty(t, p.Properties)
		assert.False(t, p.InJail)
		assert.Equal(t, PlayerActive, p.Status)
	}
	// turn order follows the input order
	assert.Equal(t, "alice", s.Players[0].Id)
	assert.Equal(t, "carol", s.Players[2].Id)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := newTestSession(t, dice([2]int{1, 2}))
	own(s, "alice", 1, 3)

	snap := s.Snapshot()
	snap.Players[0].Cash = 0
	snap.Players[0].Properties[0] = 39
	prop := snap.Props[1]
	prop.Owner = "bob"
	snap.Props[1] = prop

	assert.Equal(t, StartingCash, s.Players[0].Cash)
	assert.Equal(t, 1, s.Players[0].Properties[0])
	assert.Equal(t, "alice", s.Props[1].Owner)
}

func TestSnapshotAfterGameEnd(t *testing.T) {
	s := newTestSession(t, NewDice(1))
	require.NoError(t, s.Forfeit("bob"))

	snap := s.Snapshot()
	assert.Equal(t, StatusEnded, snap.Status)
	assert.Equal(t, "alice", snap.Winner)
	// eliminated players stay visible for historical display
	require.Len(t, snap.Players, 2)
	assert.Equal(t, PlayerForfeited, snap.Players[1].Status)
}

func TestRestoreReplaysDice(t *testing.T) {
	spaces := board.LoadSpaces()
	players := []PlayerInfo{{Id: "alice", Name: "alice"}, {Id: "bob", Name: "bob"}}

	s1, err := NewSession("g", players, spaces, NewDice(99))
	require.NoError(t, err)
	_, err = s1.Roll("alice")
	require.NoError(t, err)

	s2, err := Restore(s1.Snapshot(), spaces)
	require.NoError(t, err)

	next1, err := s1.Roll(s1.current().Id)
	require.NoError(t, err)
	next2, err := s2.Roll(s2.current().Id)
	require.NoError(t, err)

	assert.Equal(t, next1.Die1, next2.Die1)
	assert.Equal(t, next1.Die2, next2.Die2)
	assert.Equal(t, next1.To, next2.To)
}
