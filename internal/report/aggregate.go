// Package report implements the attendance-hours aggregation engine: it
// filters training sessions to the current semester window, accumulates
// per-player per-team hours, resolves each player's home team and ranks
// players into tiers.
package report

import (
	"errors"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/VictorHugo-7/S3-Site-MauaEsports/internal/models"
)

// ErrInvalidInput marks a session input that is not a usable sequence.
var ErrInvalidInput = errors.New("invalid sessions input")

const msPerHour = 1000 * 60 * 60

// Window is an inclusive epoch-millisecond range.
type Window struct {
	StartMs int64
	EndMs   int64
}

// Contains reports whether ts falls inside the window.
func (w Window) Contains(ts int64) bool {
	return w.StartMs <= ts && ts <= w.EndMs
}

// PlayerRow is one player's final report entry, assigned to their home
// team but carrying total hours across all teams.
type PlayerRow struct {
	PlayerID    string
	Name        string
	Team        string
	Hours       float64
	LastSession int64
}

// TeamReport maps team display name to that team's player rows, keyed by
// player ID. Every team in the modality catalog has an entry, possibly
// empty.
type TeamReport map[string]map[string]PlayerRow

// eligible applies the pass-1 session filter: finished, inside the window
// and attached to a known modality.
func eligible(s models.Session, teams map[string]models.Team, win Window) bool {
	if s.Status != models.SessionEnded {
		return false
	}
	if !win.Contains(s.StartMs) {
		return false
	}
	_, ok := teams[s.ModalityID]
	return ok
}

// EligiblePlayerIDs collects the deduplicated, sorted player IDs referenced
// by attendance records of eligible sessions. Used to scope the identity
// lookup before the accumulation pass.
func EligiblePlayerIDs(teams map[string]models.Team, sessions []models.Session, win Window) []string {
	seen := make(map[string]struct{})
	for _, s := range sessions {
		if !eligible(s, teams, win) {
			continue
		}
		for _, att := range s.Attendances {
			if att.PlayerID != "" {
				seen[att.PlayerID] = struct{}{}
			}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type playerAccum struct {
	name        string
	perTeam     map[string]float64
	total       float64
	lastSession int64
}

// Aggregate runs the accumulation pass over sessions and builds the final
// team report. Sessions must be a real slice; identities may be nil, in
// which case players keep their raw IDs as display names.
//
// A record is counted only when both its entrance and exit timestamps fall
// inside the window. The duration is taken as-is: inverted intervals yield
// negative hours and pass through uncorrected, matching the upstream
// system's behavior.
func Aggregate(teams map[string]models.Team, sessions []models.Session, identities map[string]models.Identity, win Window, logger *zap.Logger) (TeamReport, error) {
	if sessions == nil {
		return nil, ErrInvalidInput
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	accums := make(map[string]*playerAccum)
	attendanceCount := 0
	sessionCount := 0

	for _, s := range sessions {
		if !eligible(s, teams, win) {
			continue
		}
		sessionCount++
		for _, att := range s.Attendances {
			if att.PlayerID == "" {
				continue
			}
			if !win.Contains(att.EntranceMs) || !win.Contains(att.ExitMs) {
				continue
			}

			acc, ok := accums[att.PlayerID]
			if !ok {
				acc = &playerAccum{
					name:    displayName(att.PlayerID, identities),
					perTeam: make(map[string]float64),
				}
				accums[att.PlayerID] = acc
			}

			hours := float64(att.ExitMs-att.EntranceMs) / msPerHour
			acc.perTeam[s.ModalityID] += hours
			acc.total += hours
			attendanceCount++

			if s.StartMs > acc.lastSession {
				acc.lastSession = s.StartMs
			}
		}
	}

	logger.Info("aggregated attendance",
		zap.Int("sessions", sessionCount),
		zap.Int("attendances", attendanceCount),
		zap.Int("players", len(accums)))

	return buildReport(teams, accums), nil
}

// buildReport assigns each player to their home team. Home team is the
// modality with the most accumulated hours; ties resolve to the smallest
// team ID so identical input always yields identical output.
func buildReport(teams map[string]models.Team, accums map[string]*playerAccum) TeamReport {
	out := make(TeamReport, len(teams))
	for _, team := range teams {
		if _, ok := out[team.Name]; !ok {
			out[team.Name] = make(map[string]PlayerRow)
		}
	}

	playerIDs := make([]string, 0, len(accums))
	for id := range accums {
		playerIDs = append(playerIDs, id)
	}
	sort.Strings(playerIDs)

	for _, pid := range playerIDs {
		acc := accums[pid]
		home := homeTeamID(acc.perTeam)
		if home == "" {
			continue
		}
		team, ok := teams[home]
		if !ok {
			continue
		}
		out[team.Name][pid] = PlayerRow{
			PlayerID:    pid,
			Name:        acc.name,
			Team:        team.Name,
			Hours:       acc.total,
			LastSession: acc.lastSession,
		}
	}
	return out
}

func homeTeamID(perTeam map[string]float64) string {
	teamIDs := make([]string, 0, len(perTeam))
	for id := range perTeam {
		teamIDs = append(teamIDs, id)
	}
	sort.Strings(teamIDs)

	home := ""
	best := math.Inf(-1)
	for _, id := range teamIDs {
		if perTeam[id] > best {
			home = id
			best = perTeam[id]
		}
	}
	return home
}

func displayName(playerID string, identities map[string]models.Identity) string {
	if identity, ok := identities[playerID]; ok && identity.Handle != "" {
		return identity.Handle
	}
	return playerID
}
