package engine

import (
	"github.com/tycoongames/tycoon-backend/app/models"
	"github.com/tycoongames/tycoon-backend/platform/board"
)

const (
	BoardSize    = 40
	MinPlayers   = 2
	MaxPlayers   = 8
	StartingCash = 1500
	PassGoBonus  = 200
	JailPosition = 10
	MaxJailTurns = 3
	JailFine     = 50

	MonopolyRentFactor    = 2
	UnmortgageInterestPct = 10
)

type Status string

const (
	StatusInProgress Status = "in progress"
	StatusEnded      Status = "ended"
)

type PlayerStatus string

const (
	PlayerActive    PlayerStatus = "active"
	PlayerBankrupt  PlayerStatus = "bankrupt"
	PlayerForfeited PlayerStatus = "forfeited"
)

// Player is one seat's live state. Properties holds board positions; the
// owner side of that relation lives in PropertyState, keyed by player id.
type Player struct {
	Id         string       `json:"user_id"`
	Name       string       `json:"username"`
	Cash       int          `json:"cash"`
	Position   int          `json:"position"`
	Properties []int        `json:"properties"`
	JailCards  int          `json:"jail_cards"`
	InJail     bool         `json:"in_jail"`
	JailTurns  int          `json:"jail_turns"` // failed rolls left before forced release
	Doubles    int          `json:"doubles"`    // consecutive doubles this turn cycle
	Status     PlayerStatus `json:"status"`
}

// PropertyState exists only while a space is player-owned. Deleting the entry
// returns the space to the bank.
type PropertyState struct {
	Position  int    `json:"position"`
	Owner     string `json:"owner"`
	Mortgaged bool   `json:"mortgaged"`
}

type PlayerInfo struct {
	Id   string `json:"user_id"`
	Name string `json:"username"`
}

// PendingBuy is the post-roll purchase window: the player who just landed on
// an unowned space may buy it until the next dice roll closes the offer.
type PendingBuy struct {
	Player   string `json:"user_id"`
	Position int    `json:"position"`
}

// Session is the root aggregate for one game. Every operation on it either
// validates and commits fully or fails leaving the state untouched. Callers
// serialize access; the session itself does no locking.
type Session struct {
	Id      string
	Players []*Player
	Current int
	Status  Status
	Winner  string
	Props   map[int]*PropertyState
	Pending *PendingBuy

	dice   Dice
	spaces []models.Space
	byPos  map[int]models.Space
	groups map[string][]int
}

// Snapshot is the serializable view of a session, complete enough to restore
// it, dice included.
type Snapshot struct {
	Id        string                `json:"game_id"`
	Players   []Player              `json:"players"`
	Current   int                   `json:"current"`
	Status    Status                `json:"status"`
	Winner    string                `json:"winner,omitempty"`
	Props     map[int]PropertyState `json:"properties"`
	Pending   *PendingBuy           `json:"pending_buy,omitempty"`
	DiceSeed  int64                 `json:"dice_seed,omitempty"`
	DiceRolls int                   `json:"dice_rolls,omitempty"`
}

// NewSession validates the setup and deals every player the starting cash at
// position 0, turn order as given.
func NewSession(id string, players []PlayerInfo, spaces []models.Space, dice Dice) (*Session, error) {
	if id == "" || len(players) < MinPlayers || len(players) > MaxPlayers {
		return nil, ErrInvalidSetup
	}
	if len(spaces) != BoardSize {
		return nil, ErrInvalidSetup
	}
	seenId := make(map[string]bool, len(players))
	seenName := make(map[string]bool, len(players))
	for _, info := range players {
		if info.Id == "" || info.Name == "" || seenId[info.Id] || seenName[info.Name] {
			return nil, ErrInvalidSetup
		}
		seenId[info.Id] = true
		seenName[info.Name] = true
	}
	if dice == nil {
		dice = NewTimeDice()
	}

	s := &Session{
		Id:     id,
		Status: StatusInProgress,
		Props:  make(map[int]*PropertyState),
	}
	s.indexBoard(spaces)
	s.dice = dice
	for _, info := range players {
		s.Players = append(s.Players, &Player{
			Id:     info.Id,
			Name:   info.Name,
			Cash:   StartingCash,
			Status: PlayerActive,
		})
	}
	return s, nil
}

// Restore rebuilds a live session from a snapshot, replaying the dice so the
// next roll matches what the original session would have produced.
func Restore(snap *Snapshot, spaces []models.Space) (*Session, error) {
	if snap == nil || len(spaces) != BoardSize {
		return nil, ErrInvalidSetup
	}
	s := &Session{
		Id:      snap.Id,
		Current: snap.Current,
		Status:  snap.Status,
		Winner:  snap.Winner,
		Props:   make(map[int]*PropertyState, len(snap.Props)),
	}
	s.indexBoard(spaces)
	s.dice = RestoreDice(snap.DiceSeed, snap.DiceRolls)
	if snap.Pending != nil {
		pending := *snap.Pending
		s.Pending = &pending
	}
	for i := range snap.Players {
		cp := snap.Players[i]
		cp.Properties = append([]int(nil), snap.Players[i].Properties...)
		s.Players = append(s.Players, &cp)
	}
	for pos := range snap.Props {
		st := snap.Props[pos]
		s.Props[pos] = &st
	}
	return s, nil
}

func (s *Session) indexBoard(spaces []models.Space) {
	s.spaces = spaces
	s.byPos = make(map[int]models.Space, len(spaces))
	for _, space := range spaces {
		s.byPos[space.Position] = space
	}
	s.groups = board.GroupPositions(&spaces)
}

// Snapshot is a pure read; it never mutates the session and is safe to call
// at any point, including after game end.
func (s *Session) Snapshot() *Snapshot {
	snap := &Snapshot{
		Id:      s.Id,
		Current: s.Current,
		Status:  s.Status,
		Winner:  s.Winner,
		Props:   make(map[int]PropertyState, len(s.Props)),
	}
	for _, p := range s.Players {
		cp := *p
		cp.Properties = append([]int(nil), p.Properties...)
		snap.Players = append(snap.Players, cp)
	}
	for pos, st := range s.Props {
		snap.Props[pos] = *st
	}
	if s.Pending != nil {
		pending := *s.Pending
		snap.Pending = &pending
	}
	if d, ok := s.dice.(*SeededDice); ok {
		snap.DiceSeed = d.Seed()
		snap.DiceRolls = d.Rolls()
	}
	return snap
}

func (s *Session) player(id string) *Player {
	for _, p := range s.Players {
		if p.Id == id {
			return p
		}
	}
	return nil
}

func (s *Session) current() *Player {
	return s.Players[s.Current]
}

// advanceTurn hands control to the next active player in order, wrapping past
// the end, and resets the leaving player's doubles counter.
func (s *Session) advanceTurn() {
	s.Players[s.Current].Doubles = 0
	for i := 1; i <= len(s.Players); i++ {
		idx := (s.Current + i) % len(s.Players)
		if s.Players[idx].Status == PlayerActive {
			s.Current = idx
			return
		}
	}
}

// checkEnd flips the session to ended once a single active player remains.
func (s *Session) checkEnd() {
	active := 0
	var last *Player
	for _, p := range s.Players {
		if p.Status == PlayerActive {
			active++
			last = p
		}
	}
	if active == 1 {
		s.Status = StatusEnded
		s.Winner = last.Id
	}
}

func (s *Session) sendToJail(p *Player) {
	p.Position = JailPosition
	p.InJail = true
	p.JailTurns = MaxJailTurns
	p.Doubles = 0
}

func (s *Session) ownsGroup(owner, group string) bool {
	positions := s.groups[group]
	if len(positions) == 0 {
		return false
	}
	for _, pos := range positions {
		st := s.Props[pos]
		if st == nil || st.Owner != owner {
			return false
		}
	}
	return true
}

func (s *Session) countOwned(owner, group string) int {
	n := 0
	for _, pos := range s.groups[group] {
		if st := s.Props[pos]; st != nil && st.Owner == owner {
			n++
		}
	}
	return n
}
