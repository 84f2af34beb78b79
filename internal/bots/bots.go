package bots

import (
	"math/rand"

	"doppelkopf/internal/engine"
)

type Bot interface {
	ChooseAction(state engine.GameState, player int) engine.Action
}

type EasyBot struct {
	RNG *rand.Rand
}

func NewEasy(seed int64) *EasyBot {
	return &EasyBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *EasyBot) ChooseAction(state engine.GameState, player int) engine.Action {
	legal := engine.LegalActions(state, player)
	if len(legal) == 0 {
		return engine.Action{}
	}
	return legal[b.RNG.Intn(len(legal))]
}

type NormalBot struct {
	RNG *rand.Rand
}

func NewNormal(seed int64) *NormalBot {
	return &NormalBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *NormalBot) ChooseAction(state engine.GameState, player int) engine.Action {
	legal := engine.LegalActions(state, player)
	if len(legal) == 0 {
		return engine.Action{}
	}
	switch state.Round.Phase {
	case engine.PhaseBidding:
		return bidByHeuristic(state, player)
	case engine.PhaseDeclaring:
		return declareByHeuristic(legal)
	case engine.PhasePlayTricks:
		return playHeuristic(state, player, legal)
	default:
		return legal[0]
	}
}

// bidByHeuristic reserves only for a marriage; everything else stays
// healthy. Solos are not worth declaring without hand reading.
func bidByHeuristic(state engine.GameState, player int) engine.Action {
	if clubQueens(state.Players[player].Hand) >= 2 {
		return engine.Action{Type: engine.ActionBid, Bid: engine.BidReservation}
	}
	return engine.Action{Type: engine.ActionBid, Bid: engine.BidHealthy}
}

func declareByHeuristic(legal []engine.Action) engine.Action {
	for _, a := range legal {
		if a.Type == engine.ActionDeclare && a.Contract == engine.ContractHochzeit {
			return a
		}
	}
	return legal[0]
}

func playHeuristic(state engine.GameState, player int, legal []engine.Action) engine.Action {
	// Announce the team declaration on a trump-heavy hand while the
	// window is open.
	if trumpCount(state, player) >= 8 {
		for _, a := range legal {
			if a.Type == engine.ActionAnnounce &&
				(a.Announcement == engine.AnnounceRe || a.Announcement == engine.AnnounceKontra) {
				return a
			}
		}
	}

	cards := cardActions(legal)
	if len(cards) == 0 {
		return legal[0]
	}
	if len(state.Round.CurrentTrick.Entries) == 0 {
		// Lead the strongest card.
		best := cards[0]
		bestStrength := -1
		for _, a := range cards {
			s := leadStrength(state, player, *a.Card)
			if s > bestStrength {
				bestStrength = s
				best = a
			}
		}
		return best
	}
	// Win with the cheapest winning card, otherwise shed the fewest points.
	var winning engine.Action
	winningStrength := -1
	found := false
	for _, a := range cards {
		if s, wins := winsIfPlayed(state, player, *a.Card); wins {
			if !found || s < winningStrength {
				winningStrength = s
				winning = a
				found = true
			}
		}
	}
	if found {
		return winning
	}
	lowest := cards[0]
	lowestScore := 1 << 30
	for _, a := range cards {
		score := engine.CardPoints(a.Card.Rank)*10 + engine.RankStrength(a.Card.Rank)
		if score < lowestScore {
			lowestScore = score
			lowest = a
		}
	}
	return lowest
}

func cardActions(legal []engine.Action) []engine.Action {
	var out []engine.Action
	for _, a := range legal {
		if a.Type == engine.ActionPlayCard && a.Card != nil {
			out = append(out, a)
		}
	}
	return out
}

func clubQueens(hand []engine.Card) int {
	n := 0
	for _, c := range hand {
		if c.Suit == engine.SuitClubs && c.Rank == engine.RankQ {
			n++
		}
	}
	return n
}

func trumpCount(state engine.GameState, player int) int {
	n := 0
	for _, c := range state.Players[player].Hand {
		if engine.IsTrump(c, state.Round.Trump) {
			n++
		}
	}
	return n
}

func leadStrength(state engine.GameState, player int, c engine.Card) int {
	return strengthOf(c, player, c, state.Round.Trump, state.Round.Schweinerei)
}

func winsIfPlayed(state engine.GameState, player int, c engine.Card) (int, bool) {
	t := state.Round.CurrentTrick
	lead, ok := t.Lead()
	if !ok {
		return 0, true
	}
	mine := strengthOf(c, player, lead, state.Round.Trump, state.Round.Schweinerei)
	for _, e := range t.Entries {
		// Equal strength keeps the earlier card in front.
		if strengthOf(e.Card, e.Player, lead, state.Round.Trump, state.Round.Schweinerei) >= mine {
			return mine, false
		}
	}
	return mine, true
}

// local copy of the trick ordering to avoid exposing engine internals
func strengthOf(c engine.Card, player int, lead engine.Card, m engine.TrumpMode, schweinerei map[int]bool) int {
	if !engine.IsTrump(c, m) {
		if engine.IsTrump(lead, m) || c.Suit != lead.Suit {
			return 0
		}
		return engine.RankStrength(c.Rank)
	}
	if c.Suit == engine.SuitDiamonds && c.Rank == engine.RankA && schweinerei[player] {
		return 500
	}
	switch {
	case c.Suit == engine.SuitHearts && c.Rank == engine.Rank10:
		return 400
	case c.Rank == engine.RankQ:
		return 300 + int(c.Suit)
	case c.Rank == engine.RankJ:
		return 200 + int(c.Suit)
	default:
		return 100 + engine.RankStrength(c.Rank)
	}
}
