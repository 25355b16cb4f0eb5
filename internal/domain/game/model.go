package game

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	StatusUpcoming = "upcoming"
	StatusLive     = "live"
	StatusFinished = "finished"
)

const (
	// MaxPlayerSlots caps the embed entries carried by one game.
	MaxPlayerSlots = 9

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	apiIDPrefix = "api_"
)

// Game is one scheduled or completed match. Date and Time are naive
// wall clock strings in the single configured zone; Status is a
// projection recomputed by Evaluate, never authoritative.
type Game struct {
	ID             string
	HomeTeam       string
	AwayTeam       string
	League         string
	Date           string
	Time           string
	Status         string
	EmbedCodes     []string
	Viewers        int
	SEOTitle       string
	SEODescription string
	SEOKeywords    string
	FromAPI        bool
}

// APIGameID derives the namespaced internal id for a provider fixture.
// Deterministic, so repeated normalization collapses to the same id.
func APIGameID(externalID int64) string {
	return apiIDPrefix + strconv.FormatInt(externalID, 10)
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	switch status {
	case StatusUpcoming, StatusLive, StatusFinished:
		return status
	default:
		return StatusUpcoming
	}
}

func IsValidStatus(value string) bool {
	switch value {
	case StatusUpcoming, StatusLive, StatusFinished:
		return true
	default:
		return false
	}
}

// StatusFromProviderCode maps an API-Football short status code to the
// internal lifecycle state. Anything not in progress or terminal,
// including suspended/postponed/cancelled codes, reads as upcoming.
func StatusFromProviderCode(code string) string {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "1H", "2H", "HT", "ET", "P", "LIVE":
		return StatusLive
	case "FT", "AET", "PEN":
		return StatusFinished
	default:
		return StatusUpcoming
	}
}

// StatusRank orders statuses for listing: live first, then upcoming,
// then finished.
func StatusRank(status string) int {
	switch status {
	case StatusLive:
		return 0
	case StatusUpcoming:
		return 1
	default:
		return 2
	}
}

// KickoffAt combines Date and Time into an instant in loc.
func (g Game) KickoffAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout+"T"+TimeLayout, g.Date+"T"+g.Time, loc)
}

// Clone copies the game including its embed slice so callers can
// mutate the result without aliasing stored state.
func (g Game) Clone() Game {
	out := g
	if g.EmbedCodes != nil {
		out.EmbedCodes = make([]string, len(g.EmbedCodes))
		copy(out.EmbedCodes, g.EmbedCodes)
	}
	return out
}

// SortSchedule orders games by status rank, tie-broken by ascending
// kickoff. Games with an unparseable date/time sort after valid ones
// of the same rank.
func SortSchedule(games []Game, loc *time.Location) {
	sort.SliceStable(games, func(i, j int) bool {
		ri, rj := StatusRank(games[i].Status), StatusRank(games[j].Status)
		if ri != rj {
			return ri < rj
		}

		ki, errI := games[i].KickoffAt(loc)
		kj, errJ := games[j].KickoffAt(loc)
		if errI != nil {
			return false
		}
		if errJ != nil {
			return true
		}
		return ki.Before(kj)
	})
}
