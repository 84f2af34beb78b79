package engine

// ScoreEntry is one itemised game-point line from the tournament rule book.
type ScoreEntry struct {
	Label string
	Team  Team
	Value int
}

// GamePointsResult is the scoring engine's output for one finished round.
type GamePointsResult struct {
	ReWon        bool
	KontraWon    bool
	RePoints     int
	KontraPoints int
	ReTricks     int
	KontraTricks int
	Entries      []ScoreEntry
	Net          int // re total minus kontra total
}

func levelTarget(a Announcement) int {
	switch a {
	case AnnounceNo90:
		return 151
	case AnnounceNo60:
		return 181
	default:
		return 211 // no30; schwarz is trick-based
	}
}

func levelFloor(a Announcement) int {
	switch a {
	case AnnounceNo90:
		return 90
	case AnnounceNo60:
		return 60
	default:
		return 30 // no30; schwarz is trick-based
	}
}

func levelLabel(a Announcement) string {
	switch a {
	case AnnounceNo90:
		return "Keine 90"
	case AnnounceNo60:
		return "Keine 60"
	case AnnounceNo30:
		return "Keine 30"
	default:
		return "Schwarz"
	}
}

func beatThreshold(a Announcement) int {
	switch a {
	case AnnounceNo90:
		return 120
	case AnnounceNo60:
		return 90
	case AnnounceNo30:
		return 60
	default:
		return 30
	}
}

func beatLabel(a Announcement) string {
	switch a {
	case AnnounceNo90:
		return "120 gegen Keine 90"
	case AnnounceNo60:
		return "90 gegen Keine 60"
	case AnnounceNo30:
		return "60 gegen Keine 30"
	default:
		return "30 gegen Schwarz"
	}
}

// teamWins decides one team's win condition: the literal target of its own
// highest announcement first, then the defensive floor against the opposing
// announcement for a team with no announcement of its own, then the plain
// card-point threshold.
func teamWins(team Team, res GamePointsResult, ann Announcements) bool {
	var ownPoints, ownTricks, oppTricks int
	if team == TeamRe {
		ownPoints, ownTricks, oppTricks = res.RePoints, res.ReTricks, res.KontraTricks
	} else {
		ownPoints, ownTricks, oppTricks = res.KontraPoints, res.KontraTricks, res.ReTricks
	}
	own := ann.team(team)
	opp := ann.team(team.Other())

	if l, ok := own.HighestLevel(); ok {
		if l == AnnounceSchwarz {
			return oppTricks == 0
		}
		return ownPoints >= levelTarget(l)
	}
	if l, ok := opp.HighestLevel(); ok {
		if l == AnnounceSchwarz {
			return ownTricks >= 1
		}
		return ownPoints >= levelFloor(l)
	}
	if team == TeamRe {
		return ownPoints >= 121
	}
	if ann.Kontra.Announced {
		// kontra's own declaration removes the one-point asymmetry
		return ownPoints >= 121
	}
	return ownPoints >= 120
}

// soloRound reports whether the round scores as a solo, which suppresses
// the normal-game-only bonuses. A marriage that never found a partner
// counts as a solo.
func soloRound(g *GameState) bool {
	if g.Round.Contract.IsSolo() {
		return true
	}
	if g.Round.Contract == ContractHochzeit {
		return g.Round.Hochzeit == nil || g.Round.Hochzeit.Partner < 0
	}
	return false
}

// ScoreRound computes the round's game points once all tricks are complete.
func ScoreRound(g *GameState) GamePointsResult {
	if len(g.Round.CompletedTricks) != g.Rules.TricksPerRound {
		panic("scoring requires a finished round")
	}

	var res GamePointsResult
	for _, t := range g.Round.CompletedTricks {
		if g.Players[t.Winner].Team == TeamRe {
			res.RePoints += t.Points
			res.ReTricks++
		} else {
			res.KontraPoints += t.Points
			res.KontraTricks++
		}
	}

	ann := g.Round.Announcements
	res.ReWon = teamWins(TeamRe, res, ann)
	res.KontraWon = teamWins(TeamKontra, res, ann)

	winner := TeamNone
	switch {
	case res.ReWon:
		winner = TeamRe
	case res.KontraWon:
		winner = TeamKontra
	}

	add := func(label string, team Team, value int) {
		res.Entries = append(res.Entries, ScoreEntry{Label: label, Team: team, Value: value})
	}

	if winner != TeamNone {
		loserPoints, loserTricks := res.KontraPoints, res.KontraTricks
		if winner == TeamKontra {
			loserPoints, loserTricks = res.RePoints, res.ReTricks
		}
		add("Keine 120", winner, 1)
		if loserPoints < 90 {
			add("Keine 90", winner, 1)
		}
		if loserPoints < 60 {
			add("Keine 60", winner, 1)
		}
		if loserPoints < 30 {
			add("Keine 30", winner, 1)
		}
		if loserTricks == 0 {
			add("Schwarz", winner, 1)
		}
		if ann.Re.Announced {
			add("Re angesagt", winner, 2)
		}
		if ann.Kontra.Announced {
			add("Kontra angesagt", winner, 2)
		}
		for _, l := range ann.Re.Levels {
			add(levelLabel(l)+" angesagt", winner, 1)
		}
		for _, l := range ann.Kontra.Levels {
			add(levelLabel(l)+" angesagt", winner, 1)
		}
	}

	// Beaten announcement thresholds count for the accused team regardless
	// of the overall outcome.
	for _, l := range ann.Kontra.Levels {
		if res.RePoints >= beatThreshold(l) {
			add(beatLabel(l), TeamRe, 1)
		}
	}
	for _, l := range ann.Re.Levels {
		if res.KontraPoints >= beatThreshold(l) {
			add(beatLabel(l), TeamKontra, 1)
		}
	}

	if !soloRound(g) {
		if res.KontraWon {
			add("Gegen die Alten", TeamKontra, 1)
		}
		last := len(g.Round.CompletedTricks) - 1
		for i, t := range g.Round.CompletedTricks {
			winnerTeam := g.Players[t.Winner].Team
			if t.Points >= 40 {
				add("Doppelkopf", winnerTeam, 1)
			}
			for _, e := range t.Entries {
				if e.Card.Suit == SuitDiamonds && e.Card.Rank == RankA && g.Players[e.Player].Team != winnerTeam {
					add("Fuchs gefangen", winnerTeam, 1)
				}
			}
			if i == last {
				for _, e := range t.Entries {
					if e.Player == t.Winner && e.Card.Suit == SuitClubs && e.Card.Rank == RankJ {
						add("Karlchen", winnerTeam, 1)
					}
				}
			}
		}
	}

	reTotal, kontraTotal := 0, 0
	for _, e := range res.Entries {
		if e.Team == TeamRe {
			reTotal += e.Value
		} else {
			kontraTotal += e.Value
		}
	}
	res.Net = reTotal - kontraTotal
	return res
}
