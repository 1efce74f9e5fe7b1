package engine

import "github.com/tycoongames/tycoon-backend/app/models"

// Buy sells an unowned space to the player standing on it: either the
// current player, or the one holding the post-roll purchase window on it.
func (s *Session) Buy(playerID string, pos int) error {
	if s.Status == StatusEnded {
		return ErrGameOver
	}
	p := s.player(playerID)
	if p == nil {
		return ErrNotYourTurn
	}
	pending := s.Pending != nil && s.Pending.Player == playerID && s.Pending.Position == pos
	if s.current() != p && !pending {
		return ErrNotYourTurn
	}
	space, ok := s.byPos[pos]
	if !ok || !space.Purchasable() || p.Position != pos {
		return ErrPropertyNotAvailable
	}
	if st := s.Props[pos]; st != nil && st.Owner != "" {
		return ErrPropertyNotAvailable
	}
	if p.Cash < space.Price {
		return ErrInsufficientFunds
	}
	p.Cash -= space.Price
	s.Props[pos] = &PropertyState{Position: pos, Owner: p.Id}
	p.Properties = append(p.Properties, pos)
	if pending {
		s.Pending = nil
	}
	return nil
}

// Mortgage credits the mortgage value and stops the space from yielding rent.
func (s *Session) Mortgage(playerID string, pos int) error {
	if s.Status == StatusEnded {
		return ErrGameOver
	}
	st := s.Props[pos]
	if st == nil || st.Owner != playerID {
		return ErrNotOwner
	}
	if st.Mortgaged {
		return ErrAlreadyMortgaged
	}
	st.Mortgaged = true
	s.player(playerID).Cash += s.byPos[pos].Mortgage
	return nil
}

// Unmortgage lifts the mortgage for its value plus interest.
func (s *Session) Unmortgage(playerID string, pos int) error {
	if s.Status == StatusEnded {
		return ErrGameOver
	}
	st := s.Props[pos]
	if st == nil || st.Owner != playerID {
		return ErrNotOwner
	}
	if !st.Mortgaged {
		return ErrNotMortgaged
	}
	p := s.player(playerID)
	cost := UnmortgageCost(s.byPos[pos].Mortgage)
	if p.Cash < cost {
		return ErrInsufficientFunds
	}
	p.Cash -= cost
	st.Mortgaged = false
	return nil
}

// UnmortgageCost is the mortgage value plus the fixed interest percentage,
// truncated to whole currency.
func UnmortgageCost(mortgage int) int {
	return mortgage + mortgage*UnmortgageInterestPct/100
}

// payRent settles the rent due on a landing, never partially: a payer short
// of the full amount goes straight to the solvency path, creditor collecting
// whatever cash remains plus the estate.
func (s *Session) payRent(p *Player, space models.Space, st *PropertyState, turn *Turn) {
	rent := s.rentFor(space, st, turn.Die1+turn.Die2)
	turn.Rent = rent
	turn.Creditor = st.Owner
	if p.Cash < rent {
		turn.Outcome = OutcomeBankrupt
		s.liquidate(p, st.Owner, PlayerBankrupt)
		return
	}
	p.Cash -= rent
	s.player(st.Owner).Cash += rent
	turn.Outcome = OutcomePaidRent
}

// rentFor computes the amount owed on an owned, unmortgaged space. Color
// groups double on a monopoly; railroads scale with the count held; utilities
// charge a multiple of the dice just rolled.
func (s *Session) rentFor(space models.Space, st *PropertyState, diceTotal int) int {
	if st.Mortgaged {
		return 0
	}
	switch space.Type {
	case "railroad":
		rent := space.Rent
		for i := 1; i < s.countOwned(st.Owner, space.Group); i++ {
			rent *= 2
		}
		return rent
	case "utility":
		if s.countOwned(st.Owner, space.Group) >= 2 {
			return 10 * diceTotal
		}
		return 4 * diceTotal
	default:
		if s.ownsGroup(st.Owner, space.Group) {
			return MonopolyRentFactor * space.Rent
		}
		return space.Rent
	}
}
