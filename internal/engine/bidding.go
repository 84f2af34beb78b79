package engine

import "errors"

func applyBid(g *GameState, player int, bid Bid) error {
	b := g.Round.Bidding
	if g.Round.Phase != PhaseBidding || b == nil {
		return errors.New("no bidding in progress")
	}
	if player != b.Turn {
		return errors.New("not your turn to bid")
	}
	if bid != BidHealthy && bid != BidReservation {
		return errors.New("invalid bid")
	}

	b.Bids[player] = bid
	if len(b.Bids) < g.Rules.Players {
		b.Turn = (b.Turn + 1) % g.Rules.Players
		return nil
	}

	// All four polled: reservation holders owe a declaration, asked in
	// seating order from the forehand.
	queue := []int{}
	for i := 0; i < g.Rules.Players; i++ {
		p := (g.Round.Forehand + i) % g.Rules.Players
		if b.Bids[p] == BidReservation {
			queue = append(queue, p)
		}
	}
	if len(queue) == 0 {
		resolveContract(g)
		return nil
	}
	g.Round.Phase = PhaseDeclaring
	b.Queue = queue
	b.Turn = queue[0]
	return nil
}

func applyDeclaration(g *GameState, player int, c Contract) error {
	b := g.Round.Bidding
	if g.Round.Phase != PhaseDeclaring || b == nil {
		return errors.New("no declarations expected")
	}
	if len(b.Queue) == 0 || player != b.Queue[0] {
		return errors.New("not your turn to declare")
	}
	if c < ContractNormal || c > ContractSoloAces {
		return errors.New("unknown contract")
	}
	if c == ContractHochzeit && !holdsMarriagePair(g.Players[player].Hand) {
		return errors.New("hochzeit requires both clubs queens")
	}

	b.Declarations[player] = c
	b.Queue = b.Queue[1:]
	if len(b.Queue) == 0 {
		resolveContract(g)
	} else {
		b.Turn = b.Queue[0]
	}
	return nil
}

func holdsMarriagePair(hand []Card) bool {
	queens := 0
	for _, c := range hand {
		if c.Suit == SuitClubs && c.Rank == RankQ {
			queens++
		}
	}
	return queens >= 2
}

// resolveContract picks the winning declaration (priority first, then the
// seat closest to the forehand clockwise), fixes teams and trump mode, and
// discards the bidding state.
func resolveContract(g *GameState) {
	b := g.Round.Bidding
	winner := -1
	contract := ContractNormal
	for i := 0; i < g.Rules.Players; i++ {
		p := (g.Round.Forehand + i) % g.Rules.Players
		c, ok := b.Declarations[p]
		if !ok {
			continue
		}
		if winner == -1 || c.priority() > contract.priority() {
			winner = p
			contract = c
		}
	}

	g.Round.Bidding = nil
	g.Round.Phase = PhasePlayTricks
	g.Round.Leader = g.Round.Forehand

	switch {
	case winner == -1 || contract == ContractNormal:
		// Normal game; clubs-queen teams from the deal stand.
		g.Round.Contract = ContractNormal
		g.Round.Declarer = -1
		g.Round.Trump = TrumpDiamonds
	case contract == ContractHochzeit:
		g.Round.Contract = contract
		g.Round.Declarer = winner
		g.Round.Trump = TrumpDiamonds
		for i := range g.Players {
			g.Players[i].Team = TeamKontra
		}
		g.Players[winner].Team = TeamRe
		g.Round.Hochzeit = &HochzeitState{
			Active:             true,
			Seeker:             winner,
			Partner:            -1,
			ClarificationTrick: 3,
		}
	default:
		g.Round.Contract = contract
		g.Round.Declarer = winner
		g.Round.Trump = contract.Mode()
		for i := range g.Players {
			g.Players[i].Team = TeamKontra
		}
		g.Players[winner].Team = TeamRe
		g.Round.Schweinerei = nil // double-aces bonus is suppressed for solos
	}
}

// clarifyHochzeit runs after each completed trick while the partner search
// is open. The first trick led by a non-trump card and won by someone other
// than the seeker fixes the partner; if none occurs within the
// clarification window the marriage collapses to a solo.
func clarifyHochzeit(g *GameState, t Trick, trickNumber int) {
	h := g.Round.Hochzeit
	if h == nil || !h.Active {
		return
	}
	if lead, ok := t.Lead(); ok && !IsTrump(lead, g.Round.Trump) && t.Winner != h.Seeker {
		h.Active = false
		h.Partner = t.Winner
		resolved := trickNumber
		if resolved > h.ClarificationTrick {
			resolved = h.ClarificationTrick
		}
		h.ResolvedTrick = resolved
		g.Players[t.Winner].Team = TeamRe
		return
	}
	if trickNumber >= h.ClarificationTrick {
		h.Active = false
	}
}
