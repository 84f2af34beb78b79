package server

import "doppelkopf/internal/engine"

type PlayerView struct {
	ID        int       `json:"id"`
	Hand      []CardDTO `json:"hand,omitempty"`
	HandCount int       `json:"handCount"`
	Team      string    `json:"team,omitempty"`
	Tricks    int       `json:"tricks"`
	GameScore int       `json:"gameScore"`
}

type TrickEntryView struct {
	Card   CardDTO `json:"card"`
	Player int     `json:"player"`
}

type AnnouncementsView struct {
	Re     TeamAnnouncementsView `json:"re"`
	Kontra TeamAnnouncementsView `json:"kontra"`
}

type TeamAnnouncementsView struct {
	Announced bool     `json:"announced"`
	Player    int      `json:"player,omitempty"`
	Levels    []string `json:"levels,omitempty"`
}

type HochzeitView struct {
	Seeker  int  `json:"seeker"`
	Partner int  `json:"partner"` // -1 until found
	Open    bool `json:"open"`
}

type ScoreEntryView struct {
	Label string `json:"label"`
	Team  string `json:"team"`
	Value int    `json:"value"`
}

type RoundResultView struct {
	ReWon        bool             `json:"reWon"`
	KontraWon    bool             `json:"kontraWon"`
	RePoints     int              `json:"rePoints"`
	KontraPoints int              `json:"kontraPoints"`
	Entries      []ScoreEntryView `json:"entries"`
	Net          int              `json:"net"`
}

type RoundView struct {
	Phase           string             `json:"phase"`
	Dealer          int                `json:"dealer"`
	Forehand        int                `json:"forehand"`
	Leader          int                `json:"leader"`
	Contract        string             `json:"contract,omitempty"`
	Trump           string             `json:"trump,omitempty"`
	BidTurn         int                `json:"bidTurn"`
	Bids            map[int]string     `json:"bids,omitempty"`
	DeclareQueue    []int              `json:"declareQueue,omitempty"`
	Trick           []TrickEntryView   `json:"trick"`
	CompletedTricks int                `json:"completedTricks"`
	Announcements   AnnouncementsView  `json:"announcements"`
	Hochzeit        *HochzeitView      `json:"hochzeit,omitempty"`
}

type RulesView struct {
	Players          int `json:"players"`
	HandSize         int `json:"handSize"`
	TricksPerRound   int `json:"tricksPerRound"`
	RoundsPerSession int `json:"roundsPerSession"`
}

type GameView struct {
	SessionID    string           `json:"sessionId"`
	RoundNumber  int              `json:"roundNumber"`
	Players      []PlayerView     `json:"players"`
	Round        RoundView        `json:"round"`
	Rules        RulesView        `json:"rules"`
	LastResult   *RoundResultView `json:"lastResult,omitempty"`
	LegalActions []ActionDTO      `json:"legalActions"`
}

// BuildGameView renders the state as seen from one seat. Other hands are
// reduced to counts, and team membership stays hidden until play reveals it.
func BuildGameView(g engine.GameState, viewer int, sessionID string) *GameView {
	public := publicTeams(g)
	players := make([]PlayerView, 0, len(g.Players))
	for i, p := range g.Players {
		view := PlayerView{
			ID:        p.ID,
			HandCount: len(p.Hand),
			Tricks:    len(p.Tricks),
			GameScore: p.GameScore,
		}
		if i == viewer {
			for _, c := range p.Hand {
				view.Hand = append(view.Hand, *cardToDTO(c))
			}
			view.Team = teamToString(p.Team)
		} else if public[i] {
			view.Team = teamToString(p.Team)
		}
		players = append(players, view)
	}

	round := RoundView{
		Phase:           phaseToString(g.Round.Phase),
		Dealer:          g.Round.Dealer,
		Forehand:        g.Round.Forehand,
		Leader:          g.Round.Leader,
		BidTurn:         -1,
		Trick:           []TrickEntryView{},
		CompletedTricks: len(g.Round.CompletedTricks),
		Announcements:   buildAnnouncementsView(g.Round.Announcements),
	}
	if g.Round.Phase >= engine.PhasePlayTricks || g.Round.Phase == engine.PhaseDeclaring {
		round.Contract = contractToString(g.Round.Contract)
	}
	if g.Round.Phase == engine.PhasePlayTricks || g.Round.Phase == engine.PhaseGameOver {
		round.Trump = g.Round.Trump.String()
	}
	if b := g.Round.Bidding; b != nil {
		round.BidTurn = b.Turn
		round.Bids = map[int]string{}
		for p, bid := range b.Bids {
			round.Bids[p] = bidToString(bid)
		}
		round.DeclareQueue = append([]int(nil), b.Queue...)
	}
	for _, e := range g.Round.CurrentTrick.Entries {
		round.Trick = append(round.Trick, TrickEntryView{Card: *cardToDTO(e.Card), Player: e.Player})
	}
	if h := g.Round.Hochzeit; h != nil {
		round.Hochzeit = &HochzeitView{Seeker: h.Seeker, Partner: h.Partner, Open: h.Active}
	}

	legal := []ActionDTO{}
	for _, a := range engine.LegalActions(g, viewer) {
		legal = append(legal, ActionFromEngine(a))
	}

	return &GameView{
		SessionID:   sessionID,
		RoundNumber: g.RoundNumber,
		Players:     players,
		Round:       round,
		Rules: RulesView{
			Players:          g.Rules.Players,
			HandSize:         g.Rules.HandSize,
			TricksPerRound:   g.Rules.TricksPerRound,
			RoundsPerSession: g.Rules.RoundsPerSession,
		},
		LastResult:   buildResultView(g.LastResult),
		LegalActions: legal,
	}
}

// publicTeams marks seats whose side is common knowledge: the declarer of a
// solo, a marriage seeker and their found partner, and anyone who made an
// announcement.
func publicTeams(g engine.GameState) map[int]bool {
	public := map[int]bool{}
	if g.Round.Contract.IsSolo() && g.Round.Declarer >= 0 {
		for i := range g.Players {
			public[i] = true
		}
	}
	if h := g.Round.Hochzeit; h != nil {
		public[h.Seeker] = true
		if h.Partner >= 0 {
			public[h.Partner] = true
		}
	}
	ann := g.Round.Announcements
	if ann.Re.Announced {
		public[ann.Re.Player] = true
	}
	if ann.Kontra.Announced {
		public[ann.Kontra.Player] = true
	}
	if g.Round.Phase == engine.PhaseGameOver || g.LastResult != nil && len(g.Round.CompletedTricks) == 0 {
		for i := range g.Players {
			public[i] = true
		}
	}
	return public
}

func buildAnnouncementsView(a engine.Announcements) AnnouncementsView {
	return AnnouncementsView{
		Re:     buildTeamAnnouncementsView(a.Re),
		Kontra: buildTeamAnnouncementsView(a.Kontra),
	}
}

func buildTeamAnnouncementsView(ta engine.TeamAnnouncements) TeamAnnouncementsView {
	v := TeamAnnouncementsView{Announced: ta.Announced, Player: ta.Player}
	for _, l := range ta.Levels {
		v.Levels = append(v.Levels, announcementToString(l))
	}
	return v
}

func buildResultView(res *engine.GamePointsResult) *RoundResultView {
	if res == nil {
		return nil
	}
	out := &RoundResultView{
		ReWon:        res.ReWon,
		KontraWon:    res.KontraWon,
		RePoints:     res.RePoints,
		KontraPoints: res.KontraPoints,
		Net:          res.Net,
	}
	for _, e := range res.Entries {
		out.Entries = append(out.Entries, ScoreEntryView{
			Label: e.Label,
			Team:  teamToString(e.Team),
			Value: e.Value,
		})
	}
	return out
}

func phaseToString(p engine.Phase) string {
	switch p {
	case engine.PhaseDeal:
		return "Deal"
	case engine.PhaseBidding:
		return "Bidding"
	case engine.PhaseDeclaring:
		return "Declaring"
	case engine.PhasePlayTricks:
		return "PlayTricks"
	case engine.PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
