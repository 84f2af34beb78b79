package engine

import "math/rand"

// BuildDeck returns the 48-card double deck: two instances of every
// suit/rank combination.
func BuildDeck() []Card {
	deck := make([]Card, 0, 48)
	suits := []Suit{SuitDiamonds, SuitHearts, SuitSpades, SuitClubs}
	ranks := []Rank{Rank9, RankJ, RankQ, RankK, Rank10, RankA}
	for _, s := range suits {
		for _, r := range ranks {
			deck = append(deck, Card{Suit: s, Rank: r, Instance: 0})
			deck = append(deck, Card{Suit: s, Rank: r, Instance: 1})
		}
	}
	return deck
}

func Shuffle(deck []Card, seed int64) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// DealRound deals twelve cards to each seat and opens the bidding poll at
// the forehand seat. Deterministic for a given seed and round number.
func DealRound(g *GameState) {
	deck := Shuffle(BuildDeck(), g.Seed+int64(g.RoundNumber))
	players := g.Rules.Players
	handSize := g.Rules.HandSize

	if handSize*players != len(deck) {
		panic("invalid deal configuration: does not exhaust deck")
	}

	idx := 0
	for p := 0; p < players; p++ {
		g.Players[p].Hand = append([]Card(nil), deck[idx:idx+handSize]...)
		idx += handSize
	}

	forehand := (g.Round.Dealer + 1) % players
	g.Round.HandsDealt = true
	g.Round.Phase = PhaseBidding
	g.Round.Forehand = forehand
	g.Round.Leader = forehand
	g.Round.Contract = ContractNormal
	g.Round.Trump = TrumpDiamonds
	g.Round.Bidding = &BiddingState{
		Turn:         forehand,
		Bids:         make(map[int]Bid),
		Declarations: make(map[int]Contract),
	}
	g.Round.Schweinerei = schweinereiHolders(g)
	assignQueenTeams(g)
}

// schweinereiHolders finds the player dealt both diamond aces, if any.
func schweinereiHolders(g *GameState) map[int]bool {
	holders := map[int]bool{}
	for i := range g.Players {
		aces := 0
		for _, c := range g.Players[i].Hand {
			if c.Suit == SuitDiamonds && c.Rank == RankA {
				aces++
			}
		}
		if aces == 2 {
			holders[i] = true
		}
	}
	return holders
}

// assignQueenTeams fixes the normal-game team split by clubs-queen
// possession. Contract resolution overrides it for solos and marriages.
func assignQueenTeams(g *GameState) {
	for i := range g.Players {
		g.Players[i].Team = TeamKontra
		for _, c := range g.Players[i].Hand {
			if c.Suit == SuitClubs && c.Rank == RankQ {
				g.Players[i].Team = TeamRe
				break
			}
		}
	}
}
