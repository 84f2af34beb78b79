package sim

import (
	"fmt"
	"math/rand"

	"doppelkopf/internal/engine"
)

type ActionRecord struct {
	Round int
	Step  int
	Phase engine.Phase
	P     int
	A     engine.Action
}

// RunSelfPlayRounds drives whole rounds with randomly chosen legal actions
// and checks the cross-round invariants: play always terminates, every
// trick has a winner among its participants, and the card points of a
// round always sum to 240.
func RunSelfPlayRounds(seed int64, rounds int, maxStepsPerRound int) error {
	rules := engine.TournamentPreset()
	rules.RoundsPerSession = rounds
	state := engine.NewGame(rules, seed)
	rng := rand.New(rand.NewSource(seed))

	for r := 0; r < rounds; r++ {
		engine.DealRound(&state)

		records := []ActionRecord{}
		startRound := state.RoundNumber
		for step := 0; step < maxStepsPerRound; step++ {
			if state.RoundNumber != startRound || state.Round.Phase == engine.PhaseGameOver {
				break
			}
			player, ok := engine.CurrentPlayer(state)
			if !ok {
				return fmt.Errorf("seed %d round %d step %d: no current player in phase %v", seed, r, step, state.Round.Phase)
			}
			legal := engine.LegalActions(state, player)
			if len(legal) == 0 {
				return fmt.Errorf("seed %d round %d step %d: player %d has no legal action", seed, r, step, player)
			}
			a := legal[rng.Intn(len(legal))]
			if err := engine.ApplyAction(&state, player, a); err != nil {
				return fmt.Errorf("seed %d round %d step %d: apply %v by %d: %v (after %d actions)", seed, r, step, a.Type, player, err, len(records))
			}
			records = append(records, ActionRecord{Round: r, Step: step, Phase: state.Round.Phase, P: player, A: a})
		}
		if state.RoundNumber == startRound && state.Round.Phase != engine.PhaseGameOver {
			return fmt.Errorf("seed %d round %d: did not finish within %d steps", seed, r, maxStepsPerRound)
		}
		res := state.LastResult
		if res == nil {
			return fmt.Errorf("seed %d round %d: no result after round end", seed, r)
		}
		if res.RePoints+res.KontraPoints != 240 {
			return fmt.Errorf("seed %d round %d: card points sum to %d, want 240", seed, r, res.RePoints+res.KontraPoints)
		}
		if res.ReTricks+res.KontraTricks != rules.TricksPerRound {
			return fmt.Errorf("seed %d round %d: trick counts sum to %d", seed, r, res.ReTricks+res.KontraTricks)
		}
	}
	return nil
}
