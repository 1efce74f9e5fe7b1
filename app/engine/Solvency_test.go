package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentShortfallBankruptsToCreditor(t *testing.T) {
	s := newTestSession(t, dice([2]int{2, 3}), "alice", "bob", "carol")
	own(s, "alice", 5) // Reading Railroad, rent 25
	own(s, "bob", 1, 3)
	bob := s.player("bob")
	bob.Cash = 10
	s.Current = 1

	turn, err := s.Roll("bob")
	require.NoError(t, err)

	assert.Equal(t, OutcomeBankrupt, turn.Outcome)
	assert.Equal(t, 25, turn.Rent)
	assert.Equal(t, "alice", turn.Creditor)

	alice := s.player("alice")
	assert.Equal(t, PlayerBankrupt, bob.Status)
	assert.Equal(t, 0, bob.Cash, "payer never goes negative")
	assert.Empty(t, bob.Properties)
	// creditor collects the remaining cash and the whole estate
	assert.Equal(t, StartingCash+10, alice.Cash)
	assert.ElementsMatch(t, []int{5, 1, 3}, alice.Properties)
	assert.Equal(t, "alice", s.Props[1].Owner)
	assert.Equal(t, "alice", s.Props[3].Owner)

	// with carol still in, the game continues and bob is skipped
	assert.Equal(t, StatusInProgress, s.Status)
	assert.Equal(t, "carol", s.current().Id)
}

func TestRentShortfallEndsTwoPlayerGame(t *testing.T) {
	s := newTestSession(t, dice([2]int{2, 3}))
	own(s, "alice", 5)
	bob := s.player("bob")
	bob.Cash = 10
	s.Current = 1

	turn, err := s.Roll("bob")
	require.NoError(t, err)

	assert.True(t, turn.GameOver)
	assert.Equal(t, "alice", turn.Winner)
	assert.Equal(t, StatusEnded, s.Status)
	assert.Equal(t, "alice", s.Winner)

	_, err = s.Roll("alice")
	assert.ErrorIs(t, err, ErrGameOver)
	assert.ErrorIs(t, s.Buy("alice", 5), ErrGameOver)
	assert.ErrorIs(t, s.Mortgage("alice", 5), ErrGameOver)
	assert.ErrorIs(t, s.Bankrupt("alice", ""), ErrGameOver)
}

func TestTaxShortfallBankruptsToBank(t *testing.T) {
	s := newTestSession(t, dice([2]int{1, 3}), "alice", "bob", "carol")
	own(s, "alice", 1)
	s.Props[1].Mortgaged = true
	alice := s.player("alice")
	alice.Cash = 100 // income tax is 200

	turn, err := s.Roll("alice")
	require.NoError(t, err)

	assert.Equal(t, OutcomeBankrupt, turn.Outcome)
	assert.Equal(t, PlayerBankrupt, alice.Status)
	// bank liquidation clears the mortgage and the ownership record
	assert.Nil(t, s.Props[1])
	assert.Equal(t, 0, alice.Cash)
	assert.Equal(t, "bob", s.current().Id)
}

func TestVoluntaryBankruptcy(t *testing.T) {
	s := newTestSession(t, NewDice(5), "alice", "bob", "carol")
	own(s, "bob", 1, 3)
	s.Props[3].Mortgaged = true

	require.NoError(t, s.Bankrupt("bob", ""))
	bob := s.player("bob")
	assert.Equal(t, PlayerBankrupt, bob.Status)
	assert.Nil(t, s.Props[1])
	assert.Nil(t, s.Props[3])

	assert.ErrorIs(t, s.Bankrupt("bob", ""), ErrAlreadyInactive)
	assert.ErrorIs(t, s.Forfeit("bob"), ErrAlreadyInactive)
	assert.ErrorIs(t, s.Bankrupt("nobody", ""), ErrAlreadyInactive)
	assert.Equal(t, StatusInProgress, s.Status)
}

func TestForfeitReturnsEstateToBank(t *testing.T) {
	s := newTestSession(t, NewDice(5), "alice", "bob", "carol")
	own(s, "alice", 5, 15)

	require.NoError(t, s.Forfeit("alice"))

	alice := s.player("alice")
	assert.Equal(t, PlayerForfeited, alice.Status)
	assert.Equal(t, 0, alice.Cash)
	assert.Nil(t, s.Props[5], "forfeited estate always goes to the bank")
	assert.Nil(t, s.Props[15])
	// alice was current; control moves on
	assert.Equal(t, "bob", s.current().Id)

	require.NoError(t, s.Forfeit("carol"))
	assert.Equal(t, StatusEnded, s.Status)
	assert.Equal(t, "bob", s.Winner)
}

func TestBankruptcyCreditorAlreadyEliminated(t *testing.T) {
	s := newTestSession(t, NewDice(5), "alice", "bob", "carol")
	own(s, "alice", 1)
	require.NoError(t, s.Forfeit("bob"))

	// a debt owed to an eliminated player falls to the bank
	require.NoError(t, s.Bankrupt("alice", "bob"))
	assert.Nil(t, s.Props[1])
	assert.Equal(t, 0, s.player("bob").Cash)
}

func TestTurnOrderSkipsEliminatedPlayers(t *testing.T) {
	s := newTestSession(t, dice([2]int{1, 2}), "alice", "bob", "carol")
	require.NoError(t, s.Forfeit("bob"))

	_, err := s.Roll("alice")
	require.NoError(t, err)
	assert.Equal(t, "carol", s.current().Id)

	_, err = s.Roll("carol")
	require.NoError(t, err)
	assert.Equal(t, "alice", s.current().Id, "wraps past the eliminated seat")
}

func TestUseJailCard(t *testing.T) {
	s := newTestSession(t, NewDice(5))
	alice := s.player("alice")

	assert.ErrorIs(t, s.UseJailCard("alice"), ErrNotInJail)

	s.sendToJail(alice)
	assert.ErrorIs(t, s.UseJailCard("alice"), ErrNoCardHeld)

	alice.JailCards = 1
	require.NoError(t, s.UseJailCard("alice"))
	assert.False(t, alice.InJail)
	assert.Equal(t, 0, alice.JailTurns)
	assert.Equal(t, 0, alice.JailCards)
	// freeing yourself costs neither the turn nor any movement
	assert.Equal(t, "alice", s.current().Id)
	assert.Equal(t, JailPosition, alice.Position)

	assert.ErrorIs(t, s.UseJailCard("nobody"), ErrAlreadyInactive)
}
