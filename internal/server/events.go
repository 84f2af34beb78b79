package server

import "doppelkopf/internal/engine"

type EventPayload struct {
	Player       int              `json:"player"`
	Bid          string           `json:"bid,omitempty"`
	Contract     string           `json:"contract,omitempty"`
	Card         *CardDTO         `json:"card,omitempty"`
	Announcement string           `json:"announcement,omitempty"`
	Partner      int              `json:"partner,omitempty"`
	Trick        int              `json:"trick,omitempty"`
	Result       *RoundResultView `json:"result,omitempty"`
}

func buildEvents(prev engine.GameState, next engine.GameState, player int, action engine.Action) []Event {
	events := []Event{}
	switch action.Type {
	case engine.ActionBid:
		events = append(events, Event{Type: "bid_made", Data: EventPayload{Player: player, Bid: bidToString(action.Bid)}})
	case engine.ActionDeclare:
		events = append(events, Event{Type: "contract_declared", Data: EventPayload{Player: player, Contract: contractToString(action.Contract)}})
	case engine.ActionPlayCard:
		if action.Card != nil {
			events = append(events, Event{Type: "card_played", Data: EventPayload{Player: player, Card: cardToDTO(*action.Card)}})
		}
	case engine.ActionAnnounce:
		events = append(events, Event{Type: "announced", Data: EventPayload{Player: player, Announcement: announcementToString(action.Announcement)}})
	}

	if len(next.Round.CompletedTricks) > len(prev.Round.CompletedTricks) {
		t := next.Round.CompletedTricks[len(next.Round.CompletedTricks)-1]
		events = append(events, Event{Type: "trick_won", Data: EventPayload{
			Player: t.Winner,
			Trick:  len(next.Round.CompletedTricks),
		}})
	}

	prevPartner, nextPartner := -1, -1
	if prev.Round.Hochzeit != nil {
		prevPartner = prev.Round.Hochzeit.Partner
	}
	if next.Round.Hochzeit != nil {
		nextPartner = next.Round.Hochzeit.Partner
	}
	if prevPartner < 0 && nextPartner >= 0 {
		events = append(events, Event{Type: "marriage_clarified", Data: EventPayload{
			Player:  next.Round.Hochzeit.Seeker,
			Partner: nextPartner,
		}})
	}
	if prev.Round.Hochzeit != nil && prev.Round.Hochzeit.Active &&
		next.Round.Hochzeit != nil && !next.Round.Hochzeit.Active && nextPartner < 0 {
		events = append(events, Event{Type: "marriage_collapsed", Data: EventPayload{
			Player: next.Round.Hochzeit.Seeker,
		}})
	}

	if next.RoundNumber > prev.RoundNumber && next.LastResult != nil {
		events = append(events, Event{Type: "round_scored", Data: EventPayload{
			Result: buildResultView(next.LastResult),
		}})
	}
	if prev.Round.Phase != engine.PhaseGameOver && next.Round.Phase == engine.PhaseGameOver {
		events = append(events, Event{Type: "game_over"})
	}
	return events
}
