package engine

// Strength tiers for trick resolution. Within a tier the rank or suit value
// breaks the tie; across tiers the higher tier always wins.
const (
	strengthTrumpSuit   = 100
	strengthJack        = 200
	strengthQueen       = 300
	strengthDulle       = 400
	strengthSchweinerei = 500
)

func isDulle(c Card) bool {
	return c.Suit == SuitHearts && c.Rank == Rank10
}

// IsTrump reports whether the card counts as trump under the mode. The Dulle
// (10 of hearts) is always trump, checked before the mode.
func IsTrump(c Card, m TrumpMode) bool {
	if isDulle(c) {
		return true
	}
	switch m {
	case TrumpQueens:
		return c.Rank == RankQ
	case TrumpJacks:
		return c.Rank == RankJ
	case TrumpNone:
		return false
	default:
		s, _ := m.TrumpSuit()
		return c.Rank == RankJ || c.Rank == RankQ || c.Suit == s
	}
}

// RankStrength orders cards of the same non-trump suit.
func RankStrength(r Rank) int {
	switch r {
	case RankA:
		return 6
	case Rank10:
		return 5
	case RankK:
		return 4
	case RankQ:
		return 3
	case RankJ:
		return 2
	case Rank9:
		return 1
	default:
		return 0
	}
}

// CardPoints is the fixed card-point value; the 48-card deck totals 240.
func CardPoints(r Rank) int {
	switch r {
	case RankA:
		return 11
	case Rank10:
		return 10
	case RankK:
		return 4
	case RankQ:
		return 3
	case RankJ:
		return 2
	case Rank9:
		return 0
	default:
		return 0
	}
}

// cardStrength maps a played card to its numeric strength in the trick.
// Zero means the card cannot win (off-suit, non-trump).
func cardStrength(e TrickEntry, lead Card, m TrumpMode, schweinerei map[int]bool) int {
	c := e.Card
	if !IsTrump(c, m) {
		if IsTrump(lead, m) || c.Suit != lead.Suit {
			return 0
		}
		return RankStrength(c.Rank)
	}
	if c.Suit == SuitDiamonds && c.Rank == RankA && schweinerei[e.Player] {
		return strengthSchweinerei
	}
	switch {
	case isDulle(c):
		return strengthDulle
	case c.Rank == RankQ:
		return strengthQueen + int(c.Suit)
	case c.Rank == RankJ:
		return strengthJack + int(c.Suit)
	default:
		return strengthTrumpSuit + RankStrength(c.Rank)
	}
}

// ComputeLegalCards returns the playable subset of hand given the cards
// already in the trick. Leading allows everything; a trump lead must be
// followed with trump; a plain-suit lead must be followed with a non-trump
// card of that suit (the suit's trump cards do not satisfy it).
func ComputeLegalCards(hand []Card, trick Trick, m TrumpMode) []Card {
	lead, ok := trick.Lead()
	if !ok {
		return append([]Card(nil), hand...)
	}

	var follow []Card
	if IsTrump(lead, m) {
		for _, c := range hand {
			if IsTrump(c, m) {
				follow = append(follow, c)
			}
		}
	} else {
		for _, c := range hand {
			if c.Suit == lead.Suit && !IsTrump(c, m) {
				follow = append(follow, c)
			}
		}
	}
	if len(follow) > 0 {
		return follow
	}
	return append([]Card(nil), hand...)
}

// DetermineWinner resolves a completed four-card trick. On the final trick
// of suit-based modes only, when both Dulle copies land in the same trick,
// the second-played copy wins outright.
func DetermineWinner(t Trick, m TrumpMode, schweinerei map[int]bool, finalTrick bool) int {
	if len(t.Entries) != 4 {
		panic("trick resolution requires a full trick")
	}

	if _, suitMode := m.TrumpSuit(); finalTrick && suitMode {
		dulles := 0
		second := -1
		for i, e := range t.Entries {
			if isDulle(e.Card) {
				dulles++
				second = i
			}
		}
		if dulles == 2 {
			return t.Entries[second].Player
		}
	}

	lead := t.Entries[0].Card
	best := 0
	bestStrength := cardStrength(t.Entries[0], lead, m, schweinerei)
	for i := 1; i < len(t.Entries); i++ {
		if s := cardStrength(t.Entries[i], lead, m, schweinerei); s > bestStrength {
			best = i
			bestStrength = s
		}
	}
	return t.Entries[best].Player
}

// CalculateTrickPoints sums the card points captured in the trick.
func CalculateTrickPoints(t Trick) int {
	points := 0
	for _, e := range t.Entries {
		points += CardPoints(e.Card.Rank)
	}
	return points
}
