package game

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

func testLifecycleConfig() LifecycleConfig {
	return LifecycleConfig{
		LiveWindow:    120 * time.Minute,
		RetentionDays: 1,
		Location:      time.UTC,
	}
}

func TestEvaluate_UpcomingTurnsLiveAtKickoff(t *testing.T) {
	t.Parallel()

	games := []Game{
		{ID: "1", Date: "2024-05-10", Time: "14:30", Status: StatusUpcoming},
	}

	out := Evaluate(games, testNow, testLifecycleConfig())
	if len(out) != 1 {
		t.Fatalf("expected 1 game, got %d", len(out))
	}
	if out[0].Status != StatusLive {
		t.Fatalf("expected live, got %s", out[0].Status)
	}
}

func TestEvaluate_SingleStepTransition(t *testing.T) {
	t.Parallel()

	// Kickoff far beyond the live window: one pass only moves
	// upcoming to live, the next pass finishes it.
	games := []Game{
		{ID: "1", Date: "2024-05-10", Time: "11:00", Status: StatusUpcoming},
	}
	cfg := testLifecycleConfig()

	first := Evaluate(games, testNow, cfg)
	if first[0].Status != StatusLive {
		t.Fatalf("first pass: expected live, got %s", first[0].Status)
	}

	second := Evaluate(first, testNow, cfg)
	if second[0].Status != StatusFinished {
		t.Fatalf("second pass: expected finished, got %s", second[0].Status)
	}
}

func TestEvaluate_LiveFinishesAfterWindow(t *testing.T) {
	t.Parallel()

	games := []Game{
		{ID: "1", Date: "2024-05-10", Time: "12:00", Status: StatusLive},
	}

	out := Evaluate(games, testNow, testLifecycleConfig())
	if out[0].Status != StatusFinished {
		t.Fatalf("expected finished, got %s", out[0].Status)
	}
}

func TestEvaluate_LiveInsideWindowStaysLive(t *testing.T) {
	t.Parallel()

	games := []Game{
		{ID: "1", Date: "2024-05-10", Time: "14:00", Status: StatusLive},
	}

	out := Evaluate(games, testNow, testLifecycleConfig())
	if out[0].Status != StatusLive {
		t.Fatalf("expected live, got %s", out[0].Status)
	}
}

func TestEvaluate_FutureKickoffStaysUpcoming(t *testing.T) {
	t.Parallel()

	games := []Game{
		{ID: "1", Date: "2024-05-10", Time: "16:00", Status: StatusUpcoming},
	}

	out := Evaluate(games, testNow, testLifecycleConfig())
	if out[0].Status != StatusUpcoming {
		t.Fatalf("expected upcoming, got %s", out[0].Status)
	}
}

func TestEvaluate_OtherDayGamesAreNotTransitioned(t *testing.T) {
	t.Parallel()

	games := []Game{
		{ID: "1", Date: "2024-05-11", Time: "10:00", Status: StatusUpcoming},
	}

	out := Evaluate(games, testNow, testLifecycleConfig())
	if out[0].Status != StatusUpcoming {
		t.Fatalf("expected upcoming, got %s", out[0].Status)
	}
}

func TestEvaluate_RetentionPrunesOldFinishedGames(t *testing.T) {
	t.Parallel()

	games := []Game{
		{ID: "old", Date: "2024-05-08", Time: "12:00", Status: StatusFinished},
		{ID: "today", Date: "2024-05-10", Time: "10:00", Status: StatusFinished},
	}

	out := Evaluate(games, testNow, testLifecycleConfig())
	if len(out) != 1 {
		t.Fatalf("expected 1 game after pruning, got %d", len(out))
	}
	if out[0].ID != "today" {
		t.Fatalf("expected today's game to survive, got %s", out[0].ID)
	}
}

func TestEvaluate_UnparseableDateIsKept(t *testing.T) {
	t.Parallel()

	games := []Game{
		{ID: "1", Date: "not-a-date", Time: "12:00", Status: StatusFinished},
	}

	out := Evaluate(games, testNow, testLifecycleConfig())
	if len(out) != 1 {
		t.Fatalf("expected unparseable game to be kept, got %d games", len(out))
	}
}

func TestEvaluate_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	games := []Game{
		{ID: "1", Date: "2024-05-10", Time: "14:30", Status: StatusUpcoming, EmbedCodes: []string{"a"}},
	}

	out := Evaluate(games, testNow, testLifecycleConfig())
	out[0].EmbedCodes[0] = "mutated"

	if games[0].Status != StatusUpcoming {
		t.Fatalf("input status mutated to %s", games[0].Status)
	}
	if games[0].EmbedCodes[0] != "a" {
		t.Fatalf("input embeds mutated to %s", games[0].EmbedCodes[0])
	}
}

func TestEvaluate_ZeroConfigUsesDefaults(t *testing.T) {
	t.Parallel()

	games := []Game{
		// 90 minutes in: inside the default 120m window.
		{ID: "1", Date: "2024-05-10", Time: "13:30", Status: StatusLive},
	}

	out := Evaluate(games, testNow, LifecycleConfig{})
	if out[0].Status != StatusLive {
		t.Fatalf("expected live under default window, got %s", out[0].Status)
	}
}

func TestSummarize_CountsPerStatus(t *testing.T) {
	t.Parallel()

	summary := Summarize([]Game{
		{Status: StatusLive},
		{Status: StatusLive},
		{Status: StatusUpcoming},
		{Status: StatusFinished},
	})

	if summary.Total != 4 || summary.Live != 2 || summary.Upcoming != 1 || summary.Finished != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
