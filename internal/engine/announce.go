package engine

import (
	"errors"
	"math"
)

// AnnounceBlocked is the "infinite" threshold: no hand size satisfies it.
const AnnounceBlocked = math.MaxInt32

func baseAnnouncementThreshold(a Announcement) int {
	switch a {
	case AnnounceRe, AnnounceKontra:
		return 11
	case AnnounceNo90:
		return 10
	case AnnounceNo60:
		return 9
	case AnnounceNo30:
		return 8
	case AnnounceSchwarz:
		return 7
	default:
		return AnnounceBlocked
	}
}

// MinimumHandSizeFor computes the smallest hand size the player may still
// hold and legally make the announcement. A late-clarified marriage
// compresses every window; a team answering the other team's first
// declaration gets a one-card concession; a first re/kontra is blocked
// entirely while a marriage is unclarified.
func MinimumHandSizeFor(g *GameState, player int, a Announcement) int {
	team := g.Players[player].Team
	if team == TeamNone {
		return AnnounceBlocked
	}
	if a == AnnounceRe && team != TeamRe {
		return AnnounceBlocked
	}
	if a == AnnounceKontra && team != TeamKontra {
		return AnnounceBlocked
	}
	if !a.isLevel() {
		if h := g.Round.Hochzeit; h != nil && h.Active {
			return AnnounceBlocked
		}
	}

	base := baseAnnouncementThreshold(a)
	if h := g.Round.Hochzeit; h != nil && h.ResolvedTrick >= 2 {
		base -= h.ResolvedTrick - 1
	}
	own := g.Round.Announcements.team(team)
	opp := g.Round.Announcements.team(team.Other())
	if !own.Announced && len(own.Levels) == 0 && (opp.Announced || len(opp.Levels) > 0) {
		base--
	}
	return base
}

// applyAnnouncement validates and records an announcement. Skipped point
// levels are granted retroactively, but only if every one of them is still
// declarable at the current hand size; otherwise nothing is recorded.
func applyAnnouncement(g *GameState, player int, a Announcement) error {
	if g.Round.Phase != PhasePlayTricks {
		return errors.New("announcements are only allowed during play")
	}
	team := g.Players[player].Team
	if team == TeamNone {
		return errors.New("player has no team")
	}
	if (a == AnnounceRe && team != TeamRe) || (a == AnnounceKontra && team != TeamKontra) {
		return errors.New("announcement does not match team")
	}

	handSize := len(g.Players[player].Hand)
	rec := g.Round.Announcements.team(team)

	if !a.isLevel() {
		if rec.Announced {
			return errors.New("team has already announced")
		}
		if handSize < MinimumHandSizeFor(g, player, a) {
			return errors.New("announcement window closed")
		}
		rec.Announced = true
		rec.Player = player
		return nil
	}

	if rec.HasLevel(a) {
		return nil
	}
	for l := AnnounceNo90; l <= a; l++ {
		if rec.HasLevel(l) {
			continue
		}
		if handSize < MinimumHandSizeFor(g, player, l) {
			return errors.New("announcement window closed")
		}
	}
	for l := AnnounceNo90; l <= a; l++ {
		if !rec.HasLevel(l) {
			rec.Levels = append(rec.Levels, l)
		}
	}
	return nil
}
