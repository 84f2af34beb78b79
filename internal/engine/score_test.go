package engine

import "testing"

func scoringGame(contract Contract) GameState {
	g := NewGame(TournamentPreset(), 1)
	g.Round.Phase = PhasePlayTricks
	g.Round.Contract = contract
	g.Round.Trump = TrumpDiamonds
	if contract.IsSolo() {
		g.Round.Trump = contract.Mode()
		g.Players[0].Team = TeamRe
		for i := 1; i < 4; i++ {
			g.Players[i].Team = TeamKontra
		}
		return g
	}
	teams := []Team{TeamRe, TeamKontra, TeamRe, TeamKontra}
	for i, tm := range teams {
		g.Players[i].Team = tm
	}
	return g
}

func addTrick(g *GameState, winner, points int) {
	g.Round.CompletedTricks = append(g.Round.CompletedTricks, Trick{
		Completed: true,
		Winner:    winner,
		Points:    points,
	})
}

// fillTricks books the given card points onto the two sides in chunks small
// enough not to trip the Doppelkopf bonus, six tricks each.
func fillTricks(g *GameState, rePoints, kontraPoints int) {
	for i := 0; i < 6; i++ {
		chunk := rePoints
		if chunk > 39 {
			chunk = 39
		}
		rePoints -= chunk
		addTrick(g, 0, chunk)
	}
	for i := 0; i < 6; i++ {
		chunk := kontraPoints
		if chunk > 39 {
			chunk = 39
		}
		kontraPoints -= chunk
		addTrick(g, 1, chunk)
	}
}

func entryCount(res GamePointsResult, label string, team Team) int {
	n := 0
	for _, e := range res.Entries {
		if e.Label == label && e.Team == team {
			n += e.Value
		}
	}
	return n
}

func TestScoreBareWin(t *testing.T) {
	g := scoringGame(ContractNormal)
	fillTricks(&g, 130, 110)

	res := ScoreRound(&g)
	if !res.ReWon || res.KontraWon {
		t.Fatalf("130/110 must be a re win: %+v", res)
	}
	if got := entryCount(res, "Keine 120", TeamRe); got != 1 {
		t.Fatalf("Keine 120: got %d, want 1", got)
	}
	if res.Net != 1 {
		t.Fatalf("net: got %d, want 1", res.Net)
	}
}

func TestScoreBeatenNo90(t *testing.T) {
	g := scoringGame(ContractNormal)
	g.Round.Announcements.Kontra.Levels = []Announcement{AnnounceNo90}
	fillTricks(&g, 125, 115)

	res := ScoreRound(&g)
	// Kontra fails its 151 target; re holds the 90-point floor and also
	// clears the 120 counter threshold.
	if !res.ReWon || res.KontraWon {
		t.Fatalf("expected re win against a failed no90: %+v", res)
	}
	if got := entryCount(res, "Keine 90 angesagt", TeamRe); got != 1 {
		t.Fatalf("announcement bonus: got %d, want 1", got)
	}
	if got := entryCount(res, "120 gegen Keine 90", TeamRe); got != 1 {
		t.Fatalf("counter threshold: got %d, want 1", got)
	}
	if res.Net != 3 {
		t.Fatalf("net: got %d, want 3", res.Net)
	}
}

func TestScoreKontraAnnouncementRaisesBase(t *testing.T) {
	g := scoringGame(ContractNormal)
	g.Round.Announcements.Kontra = TeamAnnouncements{Announced: true, Player: 1}
	fillTricks(&g, 120, 120)

	res := ScoreRound(&g)
	if res.ReWon || res.KontraWon {
		t.Fatalf("120/120 with kontra announced has no winner: %+v", res)
	}
	if res.Net != 0 {
		t.Fatalf("net: got %d, want 0", res.Net)
	}
}

func TestScoreKontraWinsAt120WhenSilent(t *testing.T) {
	g := scoringGame(ContractNormal)
	fillTricks(&g, 120, 120)

	res := ScoreRound(&g)
	if res.ReWon || !res.KontraWon {
		t.Fatalf("silent kontra wins 120/120: %+v", res)
	}
	if got := entryCount(res, "Gegen die Alten", TeamKontra); got != 1 {
		t.Fatalf("Gegen die Alten: got %d, want 1", got)
	}
}

func TestScoreSchwarzSweep(t *testing.T) {
	g := scoringGame(ContractNormal)
	for i := 0; i < 12; i++ {
		addTrick(&g, 0, 20)
	}

	res := ScoreRound(&g)
	if !res.ReWon {
		t.Fatalf("sweep must win")
	}
	for _, label := range []string{"Keine 120", "Keine 90", "Keine 60", "Keine 30", "Schwarz"} {
		if got := entryCount(res, label, TeamRe); got != 1 {
			t.Fatalf("%s: got %d, want 1", label, got)
		}
	}
	if res.Net != 5 {
		t.Fatalf("net: got %d, want 5", res.Net)
	}
}

func TestScoreSchwarzAnnouncementIsTrickBased(t *testing.T) {
	g := scoringGame(ContractNormal)
	g.Round.Announcements.Re = TeamAnnouncements{
		Announced: true,
		Player:    0,
		Levels:    []Announcement{AnnounceNo90, AnnounceNo60, AnnounceNo30, AnnounceSchwarz},
	}
	for i := 0; i < 11; i++ {
		addTrick(&g, 0, 20)
	}
	addTrick(&g, 1, 20) // one trick is enough to defeat an announced schwarz

	res := ScoreRound(&g)
	if res.ReWon {
		t.Fatalf("announced schwarz fails on a single lost trick")
	}
	if !res.KontraWon {
		t.Fatalf("one trick against an announced schwarz wins for kontra")
	}
}

func TestScoreSoloSuppressesBonuses(t *testing.T) {
	g := scoringGame(ContractSoloHearts)
	fillTricks(&g, 100, 140)

	res := ScoreRound(&g)
	if res.ReWon || !res.KontraWon {
		t.Fatalf("expected the soloist to lose: %+v", res)
	}
	if got := entryCount(res, "Gegen die Alten", TeamKontra); got != 0 {
		t.Fatalf("solo rounds pay no Gegen die Alten")
	}
	if res.Net != -1 {
		t.Fatalf("net: got %d, want -1", res.Net)
	}
}

func TestScoreCollapsedMarriageIsSolo(t *testing.T) {
	g := scoringGame(ContractNormal)
	g.Round.Contract = ContractHochzeit
	g.Round.Hochzeit = &HochzeitState{Seeker: 0, Partner: -1, ClarificationTrick: 3}
	g.Players[2].Team = TeamKontra
	fillTricks(&g, 100, 140)

	res := ScoreRound(&g)
	if got := entryCount(res, "Gegen die Alten", TeamKontra); got != 0 {
		t.Fatalf("a partnerless marriage scores as a solo")
	}
}

func TestScoreNormalGameBonuses(t *testing.T) {
	g := scoringGame(ContractNormal)

	// Trick 1: a kontra fox falls to re. Trick 2: forty points in one
	// trick. Last trick: won with the clubs jack.
	fox := Trick{Completed: true, Winner: 0, Points: 22, Entries: []TrickEntry{
		{Card: Card{Suit: SuitDiamonds, Rank: RankA}, Player: 1},
		{Card: Card{Suit: SuitDiamonds, Rank: RankQ}, Player: 0},
		{Card: Card{Suit: SuitDiamonds, Rank: RankK}, Player: 2},
		{Card: Card{Suit: SuitDiamonds, Rank: Rank9}, Player: 3},
	}}
	g.Round.CompletedTricks = append(g.Round.CompletedTricks, fox)
	g.Players[0].Tricks = append(g.Players[0].Tricks, fox)
	addTrick(&g, 0, 44)
	for i := 0; i < 9; i++ {
		addTrick(&g, 0, 10)
	}
	karlchen := Trick{Completed: true, Winner: 0, Points: 8, Entries: []TrickEntry{
		{Card: Card{Suit: SuitClubs, Rank: RankJ}, Player: 0},
		{Card: Card{Suit: SuitHearts, Rank: Rank9}, Player: 1},
		{Card: Card{Suit: SuitSpades, Rank: Rank9}, Player: 2},
		{Card: Card{Suit: SuitHearts, Rank: RankK}, Player: 3},
	}}
	g.Round.CompletedTricks = append(g.Round.CompletedTricks, karlchen)

	res := ScoreRound(&g)
	if got := entryCount(res, "Fuchs gefangen", TeamRe); got != 1 {
		t.Fatalf("Fuchs gefangen: got %d, want 1", got)
	}
	if got := entryCount(res, "Doppelkopf", TeamRe); got != 1 {
		t.Fatalf("Doppelkopf: got %d, want 1", got)
	}
	if got := entryCount(res, "Karlchen", TeamRe); got != 1 {
		t.Fatalf("Karlchen: got %d, want 1", got)
	}
}

func TestScoreFoxInOwnTeamNotCaught(t *testing.T) {
	g := scoringGame(ContractNormal)
	own := Trick{Completed: true, Winner: 0, Points: 11, Entries: []TrickEntry{
		{Card: Card{Suit: SuitDiamonds, Rank: RankA}, Player: 2},
		{Card: Card{Suit: SuitDiamonds, Rank: RankQ}, Player: 0},
		{Card: Card{Suit: SuitDiamonds, Rank: Rank9}, Player: 1},
		{Card: Card{Suit: SuitDiamonds, Rank: Rank9, Instance: 1}, Player: 3},
	}}
	g.Round.CompletedTricks = append(g.Round.CompletedTricks, own)
	for i := 0; i < 11; i++ {
		addTrick(&g, 0, 20)
	}

	res := ScoreRound(&g)
	if got := entryCount(res, "Fuchs gefangen", TeamRe); got != 0 {
		t.Fatalf("a fox kept inside its team is not caught")
	}
}

func TestScoreRoundPanicsOnUnfinishedRound(t *testing.T) {
	g := scoringGame(ContractNormal)
	addTrick(&g, 0, 40)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on an unfinished round")
		}
	}()
	ScoreRound(&g)
}
