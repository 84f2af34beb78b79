package engine

import "fmt"

type Suit int

type Rank int

const (
	SuitDiamonds Suit = iota
	SuitHearts
	SuitSpades
	SuitClubs
)

const (
	Rank9 Rank = iota
	RankJ
	RankQ
	RankK
	Rank10
	RankA
)

func (s Suit) String() string {
	switch s {
	case SuitDiamonds:
		return "D"
	case SuitHearts:
		return "H"
	case SuitSpades:
		return "S"
	case SuitClubs:
		return "C"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch r {
	case Rank9:
		return "9"
	case RankJ:
		return "J"
	case RankQ:
		return "Q"
	case RankK:
		return "K"
	case Rank10:
		return "10"
	case RankA:
		return "A"
	default:
		return "?"
	}
}

// Card is one of 48 physical cards. The deck holds two copies of every
// suit/rank combination; Instance (0 or 1) tells the copies apart and is
// preserved through dealing, play, and trick history.
type Card struct {
	Suit     Suit
	Rank     Rank
	Instance int
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s.%d", c.Rank.String(), c.Suit.String(), c.Instance)
}

// TrumpMode determines which cards count as trump and their ranking.
type TrumpMode int

const (
	TrumpDiamonds TrumpMode = iota // normal game: jacks, queens, diamonds
	TrumpHearts
	TrumpSpades
	TrumpClubs
	TrumpQueens
	TrumpJacks
	TrumpNone
)

// TrumpSuit returns the trump suit for suit-based modes.
func (m TrumpMode) TrumpSuit() (Suit, bool) {
	switch m {
	case TrumpDiamonds:
		return SuitDiamonds, true
	case TrumpHearts:
		return SuitHearts, true
	case TrumpSpades:
		return SuitSpades, true
	case TrumpClubs:
		return SuitClubs, true
	default:
		return SuitDiamonds, false
	}
}

func (m TrumpMode) String() string {
	switch m {
	case TrumpDiamonds:
		return "diamonds"
	case TrumpHearts:
		return "hearts"
	case TrumpSpades:
		return "spades"
	case TrumpClubs:
		return "clubs"
	case TrumpQueens:
		return "queens"
	case TrumpJacks:
		return "jacks"
	case TrumpNone:
		return "none"
	default:
		return "?"
	}
}

// Contract is a concrete game declaration resolved out of the bidding phase.
type Contract int

const (
	ContractNormal Contract = iota
	ContractHochzeit
	ContractSoloDiamonds
	ContractSoloHearts
	ContractSoloSpades
	ContractSoloClubs
	ContractSoloQueens
	ContractSoloJacks
	ContractSoloAces // trumpless ("Fleischloser")
)

func (c Contract) IsSolo() bool {
	return c >= ContractSoloDiamonds
}

// Mode returns the trump mode the contract plays under.
func (c Contract) Mode() TrumpMode {
	switch c {
	case ContractSoloDiamonds:
		return TrumpDiamonds
	case ContractSoloHearts:
		return TrumpHearts
	case ContractSoloSpades:
		return TrumpSpades
	case ContractSoloClubs:
		return TrumpClubs
	case ContractSoloQueens:
		return TrumpQueens
	case ContractSoloJacks:
		return TrumpJacks
	case ContractSoloAces:
		return TrumpNone
	default:
		return TrumpDiamonds
	}
}

// priority orders conflicting declarations: solo beats marriage beats a
// withdrawal to normal.
func (c Contract) priority() int {
	switch {
	case c.IsSolo():
		return 2
	case c == ContractHochzeit:
		return 1
	default:
		return 0
	}
}

func (c Contract) String() string {
	switch c {
	case ContractNormal:
		return "normal"
	case ContractHochzeit:
		return "hochzeit"
	case ContractSoloDiamonds:
		return "solo_diamonds"
	case ContractSoloHearts:
		return "solo_hearts"
	case ContractSoloSpades:
		return "solo_spades"
	case ContractSoloClubs:
		return "solo_clubs"
	case ContractSoloQueens:
		return "solo_queens"
	case ContractSoloJacks:
		return "solo_jacks"
	case ContractSoloAces:
		return "solo_aces"
	default:
		return "?"
	}
}

type Team int

const (
	TeamNone Team = iota
	TeamRe
	TeamKontra
)

func (t Team) Other() Team {
	switch t {
	case TeamRe:
		return TeamKontra
	case TeamKontra:
		return TeamRe
	default:
		return TeamNone
	}
}

func (t Team) String() string {
	switch t {
	case TeamRe:
		return "re"
	case TeamKontra:
		return "kontra"
	default:
		return "none"
	}
}

type Bid int

const (
	BidHealthy Bid = iota
	BidReservation
)

type Phase int

const (
	PhaseDeal Phase = iota
	PhaseBidding
	PhaseDeclaring
	PhasePlayTricks
	PhaseGameOver
)

// TrickEntry is one card played into a trick.
type TrickEntry struct {
	Card   Card
	Player int
}

// Trick is an ordered sequence of up to four plays, appended in turn order
// starting from the leader. Immutable once Completed.
type Trick struct {
	Entries   []TrickEntry
	Completed bool
	Winner    int
	Points    int
}

func (t Trick) Lead() (Card, bool) {
	if len(t.Entries) == 0 {
		return Card{}, false
	}
	return t.Entries[0].Card, true
}

// Announcement identifies a team declaration (re/kontra) or one of the
// escalating point announcements.
type Announcement int

const (
	AnnounceRe Announcement = iota
	AnnounceKontra
	AnnounceNo90
	AnnounceNo60
	AnnounceNo30
	AnnounceSchwarz
)

func (a Announcement) isLevel() bool {
	return a >= AnnounceNo90
}

func (a Announcement) String() string {
	switch a {
	case AnnounceRe:
		return "re"
	case AnnounceKontra:
		return "kontra"
	case AnnounceNo90:
		return "no90"
	case AnnounceNo60:
		return "no60"
	case AnnounceNo30:
		return "no30"
	case AnnounceSchwarz:
		return "schwarz"
	default:
		return "?"
	}
}

// TeamAnnouncements records one team's declarations for the round. Levels is
// ordered and never contains a level without all lower levels present.
type TeamAnnouncements struct {
	Announced bool
	Player    int
	Levels    []Announcement
}

func (ta TeamAnnouncements) HasLevel(a Announcement) bool {
	for _, l := range ta.Levels {
		if l == a {
			return true
		}
	}
	return false
}

func (ta TeamAnnouncements) HighestLevel() (Announcement, bool) {
	if len(ta.Levels) == 0 {
		return 0, false
	}
	return ta.Levels[len(ta.Levels)-1], true
}

type Announcements struct {
	Re     TeamAnnouncements
	Kontra TeamAnnouncements
}

func (a *Announcements) team(t Team) *TeamAnnouncements {
	if t == TeamRe {
		return &a.Re
	}
	return &a.Kontra
}

// HochzeitState tracks the hidden-marriage partner search. Present only for
// marriage-contract rounds; immutable once a partner is found or the
// clarification deadline passes.
type HochzeitState struct {
	Active             bool
	Seeker             int
	Partner            int // -1 until found
	ClarificationTrick int
	ResolvedTrick      int // 0 while unresolved
}

// BiddingState is the transient per-round poll of healthy/reservation bids
// and contract declarations. Discarded once the contract is resolved.
type BiddingState struct {
	Turn         int
	Bids         map[int]Bid
	Declarations map[int]Contract
	Queue        []int
}

type PlayerState struct {
	ID        int
	Hand      []Card
	Team      Team
	Tricks    []Trick
	GameScore int
}

type RoundState struct {
	Phase           Phase
	Dealer          int
	Forehand        int
	Leader          int
	HandsDealt      bool
	Bidding         *BiddingState
	Contract        Contract
	Declarer        int // -1 for normal games
	Trump           TrumpMode
	Hochzeit        *HochzeitState
	CurrentTrick    Trick
	CompletedTricks []Trick
	Announcements   Announcements
	Schweinerei     map[int]bool // players dealt both diamond aces
}

type Rules struct {
	Players          int
	HandSize         int
	TricksPerRound   int
	RoundsPerSession int
}

func TournamentPreset() Rules {
	return Rules{
		Players:          4,
		HandSize:         12,
		TricksPerRound:   12,
		RoundsPerSession: 24,
	}
}

type GameState struct {
	Rules       Rules
	Seed        int64
	RoundNumber int
	Round       RoundState
	Players     []PlayerState
	LastResult  *GamePointsResult
}

func NewGame(r Rules, seed int64) GameState {
	players := make([]PlayerState, r.Players)
	for i := 0; i < r.Players; i++ {
		players[i] = PlayerState{ID: i}
	}

	return GameState{
		Rules: r,
		Seed:  seed,
		Round: RoundState{
			Phase:    PhaseDeal,
			Dealer:   0,
			Declarer: -1,
		},
		Players: players,
	}
}

func (g *GameState) ResetRound() {
	g.Round = RoundState{
		Phase:    PhaseDeal,
		Dealer:   g.Round.Dealer,
		Declarer: -1,
	}
	for i := range g.Players {
		g.Players[i].Hand = nil
		g.Players[i].Team = TeamNone
		g.Players[i].Tricks = nil
	}
}
