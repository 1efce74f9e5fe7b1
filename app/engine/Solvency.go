package engine

// Bankrupt eliminates a player over an unpayable debt. With a creditor the
// whole estate (properties as-is plus remaining cash) transfers to them; a
// debt to the bank returns everything to the bank with mortgages cleared.
func (s *Session) Bankrupt(playerID, creditorID string) error {
	return s.eliminate(playerID, creditorID, PlayerBankrupt)
}

// Forfeit is voluntary withdrawal: same liquidation as bankruptcy, but the
// estate always goes back to the bank.
func (s *Session) Forfeit(playerID string) error {
	return s.eliminate(playerID, "", PlayerForfeited)
}

func (s *Session) eliminate(playerID, creditorID string, status PlayerStatus) error {
	if s.Status == StatusEnded {
		return ErrGameOver
	}
	p := s.player(playerID)
	if p == nil || p.Status != PlayerActive {
		return ErrAlreadyInactive
	}
	wasCurrent := s.current() == p
	s.liquidate(p, creditorID, status)
	if wasCurrent && s.Status != StatusEnded {
		s.advanceTurn()
	}
	return nil
}

// liquidate strips the player of everything and removes them from turn-order
// consideration. They stay in the session for historical display.
func (s *Session) liquidate(p *Player, creditorID string, status PlayerStatus) {
	if s.Pending != nil && s.Pending.Player == p.Id {
		s.Pending = nil
	}
	creditor := s.player(creditorID)
	if creditor != nil && creditor.Status != PlayerActive {
		// a debt to an eliminated player falls to the bank
		creditor = nil
	}
	for _, pos := range p.Properties {
		st := s.Props[pos]
		if st == nil {
			continue
		}
		if creditor != nil {
			// mortgage state rides along with the transfer
			st.Owner = creditor.Id
			creditor.Properties = append(creditor.Properties, pos)
		} else {
			delete(s.Props, pos)
		}
	}
	if creditor != nil {
		creditor.Cash += p.Cash
	}
	p.Properties = nil
	p.Cash = 0
	p.InJail = false
	p.JailTurns = 0
	p.Doubles = 0
	p.Status = status
	s.checkEnd()
}

// UseJailCard consumes one held jail-free card. It frees the player without
// moving them or spending the turn.
func (s *Session) UseJailCard(playerID string) error {
	if s.Status == StatusEnded {
		return ErrGameOver
	}
	p := s.player(playerID)
	if p == nil || p.Status != PlayerActive {
		return ErrAlreadyInactive
	}
	if !p.InJail {
		return ErrNotInJail
	}
	if p.JailCards == 0 {
		return ErrNoCardHeld
	}
	p.JailCards--
	p.InJail = false
	p.JailTurns = 0
	return nil
}
