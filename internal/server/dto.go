package server

import (
	"errors"

	"doppelkopf/internal/engine"
)

type CardDTO struct {
	Suit     string `json:"suit"`
	Rank     string `json:"rank"`
	Instance int    `json:"instance"`
}

type ActionDTO struct {
	Type         string   `json:"type"`
	Bid          string   `json:"bid,omitempty"`
	Contract     string   `json:"contract,omitempty"`
	Card         *CardDTO `json:"card,omitempty"`
	Announcement string   `json:"announcement,omitempty"`
}

func (a *ActionDTO) ToEngine() (engine.Action, error) {
	if a == nil {
		return engine.Action{}, errors.New("action missing")
	}
	switch a.Type {
	case "bid":
		b, err := parseBid(a.Bid)
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionBid, Bid: b}, nil
	case "declare":
		c, err := parseContract(a.Contract)
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionDeclare, Contract: c}, nil
	case "play_card":
		if a.Card == nil {
			return engine.Action{}, errors.New("card required")
		}
		card, err := a.Card.toEngine()
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionPlayCard, Card: &card}, nil
	case "announce":
		an, err := parseAnnouncement(a.Announcement)
		if err != nil {
			return engine.Action{}, err
		}
		return engine.Action{Type: engine.ActionAnnounce, Announcement: an}, nil
	default:
		return engine.Action{}, errors.New("unknown action type")
	}
}

func ActionFromEngine(a engine.Action) ActionDTO {
	switch a.Type {
	case engine.ActionBid:
		return ActionDTO{Type: "bid", Bid: bidToString(a.Bid)}
	case engine.ActionDeclare:
		return ActionDTO{Type: "declare", Contract: contractToString(a.Contract)}
	case engine.ActionPlayCard:
		if a.Card == nil {
			return ActionDTO{Type: "play_card"}
		}
		return ActionDTO{Type: "play_card", Card: cardToDTO(*a.Card)}
	case engine.ActionAnnounce:
		return ActionDTO{Type: "announce", Announcement: announcementToString(a.Announcement)}
	default:
		return ActionDTO{Type: "unknown"}
	}
}

func (c CardDTO) toEngine() (engine.Card, error) {
	s, err := parseSuit(c.Suit)
	if err != nil {
		return engine.Card{}, err
	}
	r, err := parseRank(c.Rank)
	if err != nil {
		return engine.Card{}, err
	}
	if c.Instance < 0 || c.Instance > 1 {
		return engine.Card{}, errors.New("invalid card instance")
	}
	return engine.Card{Suit: s, Rank: r, Instance: c.Instance}, nil
}

func cardToDTO(c engine.Card) *CardDTO {
	return &CardDTO{Suit: suitToString(c.Suit), Rank: rankToString(c.Rank), Instance: c.Instance}
}

func parseSuit(s string) (engine.Suit, error) {
	switch s {
	case "D":
		return engine.SuitDiamonds, nil
	case "H":
		return engine.SuitHearts, nil
	case "S":
		return engine.SuitSpades, nil
	case "C":
		return engine.SuitClubs, nil
	default:
		return engine.SuitDiamonds, errors.New("invalid suit")
	}
}

func parseRank(r string) (engine.Rank, error) {
	switch r {
	case "9":
		return engine.Rank9, nil
	case "J":
		return engine.RankJ, nil
	case "Q":
		return engine.RankQ, nil
	case "K":
		return engine.RankK, nil
	case "10":
		return engine.Rank10, nil
	case "A":
		return engine.RankA, nil
	default:
		return engine.Rank9, errors.New("invalid rank")
	}
}

func suitToString(s engine.Suit) string {
	switch s {
	case engine.SuitDiamonds:
		return "D"
	case engine.SuitHearts:
		return "H"
	case engine.SuitSpades:
		return "S"
	case engine.SuitClubs:
		return "C"
	default:
		return "?"
	}
}

func rankToString(r engine.Rank) string {
	switch r {
	case engine.Rank9:
		return "9"
	case engine.RankJ:
		return "J"
	case engine.RankQ:
		return "Q"
	case engine.RankK:
		return "K"
	case engine.Rank10:
		return "10"
	case engine.RankA:
		return "A"
	default:
		return "?"
	}
}

func parseBid(b string) (engine.Bid, error) {
	switch b {
	case "healthy":
		return engine.BidHealthy, nil
	case "reservation":
		return engine.BidReservation, nil
	default:
		return engine.BidHealthy, errors.New("invalid bid")
	}
}

func bidToString(b engine.Bid) string {
	if b == engine.BidReservation {
		return "reservation"
	}
	return "healthy"
}

func parseContract(c string) (engine.Contract, error) {
	switch c {
	case "normal":
		return engine.ContractNormal, nil
	case "hochzeit":
		return engine.ContractHochzeit, nil
	case "solo_diamonds":
		return engine.ContractSoloDiamonds, nil
	case "solo_hearts":
		return engine.ContractSoloHearts, nil
	case "solo_spades":
		return engine.ContractSoloSpades, nil
	case "solo_clubs":
		return engine.ContractSoloClubs, nil
	case "solo_queens":
		return engine.ContractSoloQueens, nil
	case "solo_jacks":
		return engine.ContractSoloJacks, nil
	case "solo_aces":
		return engine.ContractSoloAces, nil
	default:
		return engine.ContractNormal, errors.New("invalid contract")
	}
}

func contractToString(c engine.Contract) string {
	switch c {
	case engine.ContractNormal:
		return "normal"
	case engine.ContractHochzeit:
		return "hochzeit"
	case engine.ContractSoloDiamonds:
		return "solo_diamonds"
	case engine.ContractSoloHearts:
		return "solo_hearts"
	case engine.ContractSoloSpades:
		return "solo_spades"
	case engine.ContractSoloClubs:
		return "solo_clubs"
	case engine.ContractSoloQueens:
		return "solo_queens"
	case engine.ContractSoloJacks:
		return "solo_jacks"
	case engine.ContractSoloAces:
		return "solo_aces"
	default:
		return "?"
	}
}

func parseAnnouncement(a string) (engine.Announcement, error) {
	switch a {
	case "re":
		return engine.AnnounceRe, nil
	case "kontra":
		return engine.AnnounceKontra, nil
	case "no90":
		return engine.AnnounceNo90, nil
	case "no60":
		return engine.AnnounceNo60, nil
	case "no30":
		return engine.AnnounceNo30, nil
	case "schwarz":
		return engine.AnnounceSchwarz, nil
	default:
		return engine.AnnounceRe, errors.New("invalid announcement")
	}
}

func announcementToString(a engine.Announcement) string {
	switch a {
	case engine.AnnounceRe:
		return "re"
	case engine.AnnounceKontra:
		return "kontra"
	case engine.AnnounceNo90:
		return "no90"
	case engine.AnnounceNo60:
		return "no60"
	case engine.AnnounceNo30:
		return "no30"
	case engine.AnnounceSchwarz:
		return "schwarz"
	default:
		return "?"
	}
}

func teamToString(t engine.Team) string {
	switch t {
	case engine.TeamRe:
		return "re"
	case engine.TeamKontra:
		return "kontra"
	default:
		return ""
	}
}
