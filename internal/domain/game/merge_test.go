package game

import "testing"

func TestMerge_ReplacesProviderPartition(t *testing.T) {
	t.Parallel()

	existing := []Game{
		{ID: "manual-1", HomeTeam: "A", AwayTeam: "B", Date: "2024-05-10"},
		{ID: "api_1", HomeTeam: "C", AwayTeam: "D", Date: "2024-05-10", FromAPI: true},
	}
	batch := []Game{
		{ID: "api_2", HomeTeam: "E", AwayTeam: "F", Date: "2024-05-10", FromAPI: true},
	}

	merged := Merge(existing, batch)
	if len(merged) != 2 {
		t.Fatalf("expected 2 games, got %d", len(merged))
	}
	if merged[0].ID != "manual-1" {
		t.Fatalf("expected manual game first, got %s", merged[0].ID)
	}
	if merged[1].ID != "api_2" {
		t.Fatalf("expected fresh provider game, got %s", merged[1].ID)
	}
}

func TestMerge_ManualDuplicateSuppressesProviderGame(t *testing.T) {
	t.Parallel()

	existing := []Game{
		{ID: "manual-1", HomeTeam: "Flamengo", AwayTeam: "Palmeiras", Date: "2024-05-10"},
	}
	batch := []Game{
		{ID: "api_9", HomeTeam: "Flamengo", AwayTeam: "Palmeiras", Date: "2024-05-10", FromAPI: true},
		{ID: "api_10", HomeTeam: "Santos", AwayTeam: "Gremio", Date: "2024-05-10", FromAPI: true},
	}

	merged := Merge(existing, batch)
	if len(merged) != 2 {
		t.Fatalf("expected 2 games, got %d", len(merged))
	}
	for _, g := range merged {
		if g.ID == "api_9" {
			t.Fatalf("provider duplicate of a manual game should be suppressed")
		}
	}
}

func TestMerge_MatchIsCaseAndDateSensitive(t *testing.T) {
	t.Parallel()

	existing := []Game{
		{ID: "manual-1", HomeTeam: "Flamengo", AwayTeam: "Palmeiras", Date: "2024-05-10"},
	}
	batch := []Game{
		// Different date: not a duplicate.
		{ID: "api_9", HomeTeam: "Flamengo", AwayTeam: "Palmeiras", Date: "2024-05-11", FromAPI: true},
	}

	merged := Merge(existing, batch)
	if len(merged) != 2 {
		t.Fatalf("expected both games kept, got %d", len(merged))
	}
}

func TestMerge_Idempotent(t *testing.T) {
	t.Parallel()

	existing := []Game{
		{ID: "manual-1", HomeTeam: "A", AwayTeam: "B", Date: "2024-05-10"},
	}
	batch := []Game{
		{ID: "api_1", HomeTeam: "C", AwayTeam: "D", Date: "2024-05-10", FromAPI: true},
	}

	once := Merge(existing, batch)
	twice := Merge(once, batch)

	if len(once) != len(twice) {
		t.Fatalf("merge not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("merge not idempotent at index %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}
