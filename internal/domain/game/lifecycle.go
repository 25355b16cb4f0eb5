package game

import "time"

// LifecycleConfig carries the named constants that used to be scattered
// across call sites: how long a game counts as live after kickoff, and
// how many days a finished game is retained.
type LifecycleConfig struct {
	LiveWindow    time.Duration
	RetentionDays int
	Location      *time.Location
}

func DefaultLifecycleConfig() LifecycleConfig {
	return LifecycleConfig{
		LiveWindow:    120 * time.Minute,
		RetentionDays: 1,
		Location:      time.UTC,
	}
}

func (c LifecycleConfig) normalize() LifecycleConfig {
	defaults := DefaultLifecycleConfig()
	if c.LiveWindow <= 0 {
		c.LiveWindow = defaults.LiveWindow
	}
	if c.RetentionDays < 0 {
		c.RetentionDays = defaults.RetentionDays
	}
	if c.Location == nil {
		c.Location = defaults.Location
	}
	return c
}

// Evaluate recomputes lifecycle state and membership for the whole
// collection as a pure function of (games, now). Transitions are
// single-step: an overdue upcoming game turns live on one pass and
// finished on the next. The input slice is not mutated.
func Evaluate(games []Game, now time.Time, cfg LifecycleConfig) []Game {
	cfg = cfg.normalize()
	today := now.In(cfg.Location).Format(DateLayout)
	retention := time.Duration(cfg.RetentionDays) * 24 * time.Hour

	out := make([]Game, 0, len(games))
	for _, g := range games {
		g = g.Clone()

		if g.Date == today {
			if kickoff, err := g.KickoffAt(cfg.Location); err == nil {
				elapsed := now.Sub(kickoff)
				switch {
				case g.Status == StatusUpcoming && elapsed >= 0:
					g.Status = StatusLive
				case g.Status == StatusLive && elapsed > cfg.LiveWindow:
					g.Status = StatusFinished
				}
			}
		}

		if g.Status == StatusFinished {
			if day, err := time.ParseInLocation(DateLayout, g.Date, cfg.Location); err == nil {
				if now.Sub(day) > retention {
					continue
				}
			}
		}

		out = append(out, g)
	}

	return out
}

// EvaluateSummary counts the collection per status after evaluation.
type EvaluateSummary struct {
	Total    int
	Live     int
	Upcoming int
	Finished int
}

func Summarize(games []Game) EvaluateSummary {
	summary := EvaluateSummary{Total: len(games)}
	for _, g := range games {
		switch g.Status {
		case StatusLive:
			summary.Live++
		case StatusUpcoming:
			summary.Upcoming++
		case StatusFinished:
			summary.Finished++
		}
	}
	return summary
}
