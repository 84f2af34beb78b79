package engine

import "errors"

type ActionType int

const (
	ActionBid ActionType = iota
	ActionDeclare
	ActionPlayCard
	ActionAnnounce
)

type Action struct {
	Type         ActionType
	Bid          Bid
	Contract     Contract
	Card         *Card
	Announcement Announcement
}

// LegalActions lists every action the player could take right now. Play
// actions are turn-bound; announcements are not.
func LegalActions(g GameState, player int) []Action {
	switch g.Round.Phase {
	case PhaseBidding:
		b := g.Round.Bidding
		if b == nil || player != b.Turn {
			return nil
		}
		return []Action{
			{Type: ActionBid, Bid: BidHealthy},
			{Type: ActionBid, Bid: BidReservation},
		}
	case PhaseDeclaring:
		b := g.Round.Bidding
		if b == nil || len(b.Queue) == 0 || player != b.Queue[0] {
			return nil
		}
		out := []Action{{Type: ActionDeclare, Contract: ContractNormal}}
		if holdsMarriagePair(g.Players[player].Hand) {
			out = append(out, Action{Type: ActionDeclare, Contract: ContractHochzeit})
		}
		for c := ContractSoloDiamonds; c <= ContractSoloAces; c++ {
			out = append(out, Action{Type: ActionDeclare, Contract: c})
		}
		return out
	case PhasePlayTricks:
		var out []Action
		if p, ok := CurrentPlayer(g); ok && p == player {
			for _, c := range ComputeLegalCards(g.Players[player].Hand, g.Round.CurrentTrick, g.Round.Trump) {
				card := c
				out = append(out, Action{Type: ActionPlayCard, Card: &card})
			}
		}
		return append(out, legalAnnouncements(g, player)...)
	default:
		return nil
	}
}

func legalAnnouncements(g GameState, player int) []Action {
	team := g.Players[player].Team
	if team == TeamNone {
		return nil
	}
	handSize := len(g.Players[player].Hand)
	rec := g.Round.Announcements.team(team)

	var out []Action
	if !rec.Announced {
		a := AnnounceRe
		if team == TeamKontra {
			a = AnnounceKontra
		}
		if handSize >= MinimumHandSizeFor(&g, player, a) {
			out = append(out, Action{Type: ActionAnnounce, Announcement: a})
		}
	}
	for l := AnnounceNo90; l <= AnnounceSchwarz; l++ {
		if rec.HasLevel(l) {
			continue
		}
		ok := true
		for m := AnnounceNo90; m <= l; m++ {
			if !rec.HasLevel(m) && handSize < MinimumHandSizeFor(&g, player, m) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, Action{Type: ActionAnnounce, Announcement: l})
		}
	}
	return out
}

// CurrentPlayer returns the player expected to act in the current phase.
func CurrentPlayer(g GameState) (int, bool) {
	switch g.Round.Phase {
	case PhaseBidding:
		if g.Round.Bidding == nil {
			return -1, false
		}
		return g.Round.Bidding.Turn, true
	case PhaseDeclaring:
		b := g.Round.Bidding
		if b == nil || len(b.Queue) == 0 {
			return -1, false
		}
		return b.Queue[0], true
	case PhasePlayTricks:
		if len(g.Round.CompletedTricks) >= g.Rules.TricksPerRound {
			return -1, false
		}
		return (g.Round.Leader + len(g.Round.CurrentTrick.Entries)) % g.Rules.Players, true
	default:
		return -1, false
	}
}

// ApplyAction validates the action and mutates state on success. A rejected
// action leaves the state untouched.
func ApplyAction(g *GameState, player int, a Action) error {
	if player < 0 || player >= g.Rules.Players {
		return errors.New("unknown player")
	}
	switch a.Type {
	case ActionBid:
		return applyBid(g, player, a.Bid)
	case ActionDeclare:
		return applyDeclaration(g, player, a.Contract)
	case ActionPlayCard:
		return applyPlay(g, player, a)
	case ActionAnnounce:
		return applyAnnouncement(g, player, a.Announcement)
	default:
		return errors.New("invalid action")
	}
}

func applyPlay(g *GameState, player int, a Action) error {
	if g.Round.Phase != PhasePlayTricks {
		return errors.New("no trick in progress")
	}
	if a.Card == nil {
		return errors.New("card required")
	}
	cur, ok := CurrentPlayer(*g)
	if !ok || player != cur {
		return errors.New("not your turn to play")
	}
	legal := ComputeLegalCards(g.Players[player].Hand, g.Round.CurrentTrick, g.Round.Trump)
	if !containsCard(legal, *a.Card) {
		return errors.New("illegal card play")
	}
	if !removeCard(&g.Players[player].Hand, *a.Card) {
		return errors.New("card not in hand")
	}

	g.Round.CurrentTrick.Entries = append(g.Round.CurrentTrick.Entries, TrickEntry{Card: *a.Card, Player: player})
	if len(g.Round.CurrentTrick.Entries) == g.Rules.Players {
		completeTrick(g)
	}
	return nil
}

func completeTrick(g *GameState) {
	t := g.Round.CurrentTrick
	final := len(g.Round.CompletedTricks) == g.Rules.TricksPerRound-1
	t.Winner = DetermineWinner(t, g.Round.Trump, g.Round.Schweinerei, final)
	t.Points = CalculateTrickPoints(t)
	t.Completed = true

	g.Round.CompletedTricks = append(g.Round.CompletedTricks, t)
	g.Players[t.Winner].Tricks = append(g.Players[t.Winner].Tricks, t)
	g.Round.Leader = t.Winner
	g.Round.CurrentTrick = Trick{}

	clarifyHochzeit(g, t, len(g.Round.CompletedTricks))

	if len(g.Round.CompletedTricks) == g.Rules.TricksPerRound {
		finishRound(g)
	}
}

func finishRound(g *GameState) {
	res := ScoreRound(g)
	g.LastResult = &res
	applyGamePoints(g, res)

	g.RoundNumber++
	if g.RoundNumber >= g.Rules.RoundsPerSession {
		g.Round.Phase = PhaseGameOver
		return
	}
	g.Round.Dealer = (g.Round.Dealer + 1) % g.Rules.Players
	g.ResetRound()
}

// applyGamePoints books the net differential per seat, zero-sum: a lone re
// player (solo or collapsed marriage) carries the full opposing total.
func applyGamePoints(g *GameState, res GamePointsResult) {
	var re, kontra []int
	for i := range g.Players {
		if g.Players[i].Team == TeamRe {
			re = append(re, i)
		} else {
			kontra = append(kontra, i)
		}
	}
	if len(re) == 0 || len(kontra) == 0 {
		return
	}
	for _, p := range re {
		g.Players[p].GameScore += res.Net * len(kontra) / len(re)
	}
	for _, p := range kontra {
		g.Players[p].GameScore -= res.Net
	}
}

func containsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

func removeCard(hand *[]Card, card Card) bool {
	for i, c := range *hand {
		if c == card {
			*hand = append((*hand)[:i], (*hand)[i+1:]...)
			return true
		}
	}
	return false
}
