package game

// Merge combines the curated subset of the store with a freshly
// normalized provider batch. The previously-synced provider partition
// is discarded wholesale; a provider game is suppressed when a manual
// game matches it exactly on (home, away, date). Manual entries always
// win, and re-running with the same feed yields the same result.
func Merge(existing []Game, apiBatch []Game) []Game {
	manual := make([]Game, 0, len(existing))
	for _, g := range existing {
		if !g.FromAPI {
			manual = append(manual, g)
		}
	}

	merged := make([]Game, 0, len(manual)+len(apiBatch))
	merged = append(merged, manual...)
	for _, api := range apiBatch {
		if hasManualDuplicate(manual, api) {
			continue
		}
		merged = append(merged, api)
	}

	return merged
}

func hasManualDuplicate(manual []Game, api Game) bool {
	for _, g := range manual {
		if g.HomeTeam == api.HomeTeam && g.AwayTeam == api.AwayTeam && g.Date == api.Date {
			return true
		}
	}
	return false
}
