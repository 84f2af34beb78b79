package engine

import "testing"

func playOneRound(t *testing.T, g *GameState) {
	t.Helper()
	for steps := 0; steps < 64; steps++ {
		if g.Round.Phase != PhasePlayTricks {
			return
		}
		cur, ok := CurrentPlayer(*g)
		if !ok {
			t.Fatalf("no current player during play")
		}
		var played bool
		for _, a := range LegalActions(*g, cur) {
			if a.Type == ActionPlayCard {
				if err := ApplyAction(g, cur, a); err != nil {
					t.Fatalf("play: %v", err)
				}
				played = true
				break
			}
		}
		if !played {
			t.Fatalf("player %d has no legal card", cur)
		}
	}
	t.Fatalf("round did not finish")
}

func TestRoundPlaysToCompletion(t *testing.T) {
	g := NewGame(TournamentPreset(), 7)
	DealRound(&g)
	bidAll(t, &g, BidHealthy, BidHealthy, BidHealthy, BidHealthy)
	playOneRound(t, &g)

	if g.LastResult == nil {
		t.Fatalf("finished round must record a result")
	}
	if g.RoundNumber != 1 {
		t.Fatalf("round number: got %d, want 1", g.RoundNumber)
	}
	if g.Round.Phase != PhaseDeal {
		t.Fatalf("phase after round: got %v, want deal", g.Round.Phase)
	}
	if g.Round.Dealer != 1 {
		t.Fatalf("dealer must rotate: got %d", g.Round.Dealer)
	}
}

func TestGamePointsZeroSum(t *testing.T) {
	g := NewGame(TournamentPreset(), 11)
	DealRound(&g)
	bidAll(t, &g, BidHealthy, BidHealthy, BidHealthy, BidHealthy)
	playOneRound(t, &g)

	sum := 0
	for _, p := range g.Players {
		sum += p.GameScore
	}
	if sum != 0 {
		t.Fatalf("game points must be zero-sum, got %d", sum)
	}
}

func TestOutOfTurnPlayRejected(t *testing.T) {
	g := NewGame(TournamentPreset(), 3)
	DealRound(&g)
	bidAll(t, &g, BidHealthy, BidHealthy, BidHealthy, BidHealthy)

	cur, _ := CurrentPlayer(g)
	wrong := (cur + 1) % 4
	card := g.Players[wrong].Hand[0]
	before := len(g.Players[wrong].Hand)
	if err := ApplyAction(&g, wrong, Action{Type: ActionPlayCard, Card: &card}); err == nil {
		t.Fatalf("expected out-of-turn play to be rejected")
	}
	if len(g.Players[wrong].Hand) != before || len(g.Round.CurrentTrick.Entries) != 0 {
		t.Fatalf("rejected play must not mutate state")
	}
}

func TestIllegalCardRejected(t *testing.T) {
	g := announcingGame()
	g.Round.Leader = 0
	g.Players[0].Hand = []Card{card(SuitHearts, RankA)}
	g.Players[1].Hand = []Card{card(SuitHearts, RankK), card(SuitSpades, RankA)}

	lead := g.Players[0].Hand[0]
	if err := ApplyAction(&g, 0, Action{Type: ActionPlayCard, Card: &lead}); err != nil {
		t.Fatalf("lead: %v", err)
	}

	// Player 1 can follow hearts, so the spades ace is illegal.
	offSuit := card(SuitSpades, RankA)
	if err := ApplyAction(&g, 1, Action{Type: ActionPlayCard, Card: &offSuit}); err == nil {
		t.Fatalf("expected a revoke to be rejected")
	}
	if len(g.Players[1].Hand) != 2 || len(g.Round.CurrentTrick.Entries) != 1 {
		t.Fatalf("rejected play must not mutate state")
	}
}

func TestTrickCompletionAdvancesLeader(t *testing.T) {
	g := announcingGame()
	g.Round.Leader = 0
	hands := [][]Card{
		{card(SuitHearts, RankA)},
		{card(SuitHearts, Rank9)},
		{card(SuitHearts, RankK)},
		{card(SuitHearts, Rank10)}, // the Dulle trumps the trick
	}
	for i, h := range hands {
		g.Players[i].Hand = h
	}

	for i := 0; i < 4; i++ {
		c := hands[i][0]
		if err := ApplyAction(&g, i, Action{Type: ActionPlayCard, Card: &c}); err != nil {
			t.Fatalf("play %d: %v", i, err)
		}
	}

	if len(g.Round.CompletedTricks) != 1 {
		t.Fatalf("trick not completed")
	}
	won := g.Round.CompletedTricks[0]
	if won.Winner != 3 {
		t.Fatalf("winner: got %d, want 3", won.Winner)
	}
	if won.Points != 25 {
		t.Fatalf("trick points: got %d, want 25", won.Points)
	}
	if g.Round.Leader != 3 {
		t.Fatalf("winner must lead the next trick, got %d", g.Round.Leader)
	}
	if len(g.Players[3].Tricks) != 1 {
		t.Fatalf("winner must collect the trick")
	}
}

func TestSessionEndsAfterConfiguredRounds(t *testing.T) {
	g := NewGame(Rules{Players: 4, HandSize: 12, TricksPerRound: 12, RoundsPerSession: 1}, 5)
	DealRound(&g)
	bidAll(t, &g, BidHealthy, BidHealthy, BidHealthy, BidHealthy)
	playOneRound(t, &g)

	if g.Round.Phase != PhaseGameOver {
		t.Fatalf("single-round session must end, phase %v", g.Round.Phase)
	}
	if _, ok := CurrentPlayer(g); ok {
		t.Fatalf("no player acts after game over")
	}
}
