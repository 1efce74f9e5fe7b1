package engine

import "strconv"

type Outcome string

const (
	OutcomeLandedProperty Outcome = "landed-on-property"
	OutcomePaidRent       Outcome = "paid-rent"
	OutcomeWentToJail     Outcome = "went-to-jail"
	OutcomeStillInJail    Outcome = "still-in-jail"
	OutcomePaidTax        Outcome = "paid-tax"
	OutcomeNoAction       Outcome = "no-action"
	OutcomeBankrupt       Outcome = "bankrupt"
)

// Turn describes one completed roll and its consequence.
type Turn struct {
	Player    string  `json:"user_id"`
	Die1      int     `json:"die1"`
	Die2      int     `json:"die2"`
	Doubles   bool    `json:"doubles"`
	From      int     `json:"from"`
	To        int     `json:"to"`
	PassedGo  bool    `json:"passed_go"`
	LeftJail  bool    `json:"left_jail"`
	PaidFine  bool    `json:"paid_fine"`
	Outcome   Outcome `json:"outcome"`
	Rent      int     `json:"rent,omitempty"`
	Creditor  string  `json:"creditor,omitempty"`
	Tax       int     `json:"tax,omitempty"`
	ExtraRoll bool    `json:"extra_roll"`
	GameOver  bool    `json:"game_over"`
	Winner    string  `json:"winner,omitempty"`
}

// Roll advances exactly one roll for the current player: jail handling,
// doubles bookkeeping, movement and landing resolution, then turn handover
// (or a re-roll grant on doubles).
func (s *Session) Roll(playerID string) (*Turn, error) {
	if s.Status == StatusEnded {
		return nil, ErrGameOver
	}
	p := s.current()
	if p.Id != playerID {
		return nil, ErrNotYourTurn
	}
	// the dice hitting the table closes any open purchase window
	s.Pending = nil

	d1, d2 := s.dice.Roll()
	turn := &Turn{
		Player:  p.Id,
		Die1:    d1,
		Die2:    d2,
		Doubles: d1 == d2,
		From:    p.Position,
		To:      p.Position,
		Outcome: OutcomeNoAction,
	}

	if p.InJail {
		if turn.Doubles {
			// doubles spring the player immediately
			p.InJail = false
			p.JailTurns = 0
			p.Doubles = 0
			turn.LeftJail = true
		} else {
			p.JailTurns--
			if p.JailTurns > 0 {
				turn.Outcome = OutcomeStillInJail
				s.advanceTurn()
				return turn, nil
			}
			// stay exhausted: the fine comes due before the forced move
			if p.Cash < JailFine {
				turn.Outcome = OutcomeBankrupt
				s.liquidate(p, "", PlayerBankrupt)
				s.endOrAdvance(turn)
				return turn, nil
			}
			p.Cash -= JailFine
			p.InJail = false
			p.JailTurns = 0
			turn.LeftJail = true
			turn.PaidFine = true
		}
		s.move(p, d1+d2, turn)
		s.resolveLanding(p, turn)
		// a release roll never grants the doubles re-roll
		s.endOrAdvance(turn)
		return turn, nil
	}

	if turn.Doubles {
		p.Doubles++
		if p.Doubles >= 3 {
			// straight to jail, no movement
			s.sendToJail(p)
			turn.To = p.Position
			turn.Outcome = OutcomeWentToJail
			s.advanceTurn()
			return turn, nil
		}
	} else {
		p.Doubles = 0
	}

	s.move(p, d1+d2, turn)
	s.resolveLanding(p, turn)

	if s.Status == StatusEnded {
		turn.GameOver = true
		turn.Winner = s.Winner
		return turn, nil
	}
	if turn.Doubles && p.Status == PlayerActive && !p.InJail {
		turn.ExtraRoll = true
		return turn, nil
	}
	s.advanceTurn()
	return turn, nil
}

func (s *Session) move(p *Player, steps int, turn *Turn) {
	from := p.Position
	p.Position = (from + steps) % BoardSize
	turn.To = p.Position
	if p.Position < from {
		p.Cash += PassGoBonus
		turn.PassedGo = true
	}
}

// resolveLanding applies exactly one consequence for the space under the
// player, in the tax/jail > unowned > rent > no-action priority order.
func (s *Session) resolveLanding(p *Player, turn *Turn) {
	space := s.byPos[p.Position]
	switch space.Type {
	case "tax":
		amount, _ := strconv.Atoi(space.Action)
		amount = -amount
		turn.Tax = amount
		if p.Cash < amount {
			turn.Outcome = OutcomeBankrupt
			s.liquidate(p, "", PlayerBankrupt)
			return
		}
		p.Cash -= amount
		turn.Outcome = OutcomePaidTax
	case "gotojail":
		s.sendToJail(p)
		turn.To = p.Position
		turn.Outcome = OutcomeWentToJail
	default:
		if !space.Purchasable() {
			// go, visiting jail, free parking; card decks are out of scope
			return
		}
		st := s.Props[p.Position]
		switch {
		case st == nil || st.Owner == "":
			turn.Outcome = OutcomeLandedProperty
			s.Pending = &PendingBuy{Player: p.Id, Position: p.Position}
		case st.Owner == p.Id || st.Mortgaged:
			// own holding, or mortgaged and yielding nothing
		default:
			s.payRent(p, space, st, turn)
		}
	}
}

func (s *Session) endOrAdvance(turn *Turn) {
	if s.Status == StatusEnded {
		turn.GameOver = true
		turn.Winner = s.Winner
		return
	}
	s.advanceTurn()
}
