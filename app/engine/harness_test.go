package engine

import (
	"testing"

	"github.com/tycoongames/tycoon-backend/platform/board"
)

// scriptedDice feeds predetermined rolls to the turn controller so tests can
// steer players onto exact spaces.
type scriptedDice struct {
	rolls [][2]int
	next  int
}

func (d *scriptedDice) Roll() (int, int) {
	r := d.rolls[d.next%len(d.rolls)]
	d.next++
	return r[0], r[1]
}

func dice(rolls ...[2]int) *scriptedDice {
	return &scriptedDice{rolls: rolls}
}

func newTestSession(t *testing.T, d Dice, names ...string) *Session {
	t.Helper()
	if len(names) == 0 {
		names = []string{"alice", "bob"}
	}
	infos := make([]PlayerInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, PlayerInfo{Id: name, Name: name})
	}
	s, err := NewSession("game-1", infos, board.LoadSpaces(), d)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return s
}

// own hands a player a property directly, bypassing the ledger, for tests
// that need a prepared estate.
func own(s *Session, playerID string, positions ...int) {
	p := s.player(playerID)
	for _, pos := range positions {
		s.Props[pos] = &PropertyState{Position: pos, Owner: playerID}
		p.Properties = append(p.Properties, pos)
	}
}
