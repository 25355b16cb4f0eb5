package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/futemax/futemax-api/internal/domain/game"
	"github.com/futemax/futemax-api/internal/infrastructure/repository/memory"
	"github.com/futemax/futemax-api/internal/platform/id"
	"github.com/futemax/futemax-api/internal/platform/logging"
)

type fakeRefresher struct {
	syncErr         error
	syncCalls       int
	invalidateCalls int
}

func (f *fakeRefresher) SyncFixtures(context.Context) (SyncResult, error) {
	f.syncCalls++
	return SyncResult{}, f.syncErr
}

func (f *fakeRefresher) InvalidateFixtureCache(context.Context) {
	f.invalidateCalls++
}

func newTestGameService(games game.Repository, refresher FixtureRefresher) *GameService {
	svc := NewGameService(
		games,
		refresher,
		id.NewRandomGenerator(),
		game.LifecycleConfig{LiveWindow: 120 * time.Minute, RetentionDays: 1, Location: time.UTC},
		logging.NewNop(),
	)
	svc.now = func() time.Time { return syncTestNow }
	return svc
}

func validGameInput() GameInput {
	return GameInput{
		HomeTeam: "Flamengo",
		AwayTeam: "Palmeiras",
		League:   "Brasileirão",
		Date:     "2024-05-10",
		Time:     "16:00",
	}
}

func TestCreateGame_RejectsIncompleteInput(t *testing.T) {
	t.Parallel()

	svc := newTestGameService(memory.NewGameRepository(nil), nil)

	cases := map[string]GameInput{
		"missing home": {AwayTeam: "B", League: "L", Date: "2024-05-10", Time: "16:00"},
		"missing away": {HomeTeam: "A", League: "L", Date: "2024-05-10", Time: "16:00"},
		"missing time": {HomeTeam: "A", AwayTeam: "B", League: "L", Date: "2024-05-10"},
		"bad date":     {HomeTeam: "A", AwayTeam: "B", League: "L", Date: "10/05/2024", Time: "16:00"},
		"bad time":     {HomeTeam: "A", AwayTeam: "B", League: "L", Date: "2024-05-10", Time: "4pm"},
		"bad status": {
			HomeTeam: "A", AwayTeam: "B", League: "L", Date: "2024-05-10", Time: "16:00",
			Status: "paused",
		},
	}
	for name, input := range cases {
		if _, err := svc.CreateGame(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestCreateGame_RejectsTooManyEmbeds(t *testing.T) {
	t.Parallel()

	svc := newTestGameService(memory.NewGameRepository(nil), nil)

	input := validGameInput()
	input.EmbedCodes = make([]string, game.MaxPlayerSlots+1)
	for i := range input.EmbedCodes {
		input.EmbedCodes[i] = "https://stream.example/ch"
	}

	if _, err := svc.CreateGame(context.Background(), input); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateGame_NormalizesAndPersists(t *testing.T) {
	t.Parallel()

	games := memory.NewGameRepository(nil)
	refresher := &fakeRefresher{}
	svc := newTestGameService(games, refresher)

	input := validGameInput()
	input.HomeTeam = "  Flamengo  "
	input.Status = "LIVE"
	input.EmbedCodes = []string{"https://stream.example/ch1", "<iframe src=\"https://p.example\"></iframe>"}
	input.Viewers = -10

	created, err := svc.CreateGame(context.Background(), input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(created.ID) != 24 {
		t.Fatalf("expected generated 24-char id, got %q", created.ID)
	}
	if created.HomeTeam != "Flamengo" {
		t.Fatalf("expected trimmed team name, got %q", created.HomeTeam)
	}
	if created.Status != game.StatusLive {
		t.Fatalf("expected normalized live status, got %s", created.Status)
	}
	if created.Viewers != 0 {
		t.Fatalf("expected negative viewers clamped to 0, got %d", created.Viewers)
	}
	if !strings.Contains(created.EmbedCodes[0], "<iframe") || !strings.Contains(created.EmbedCodes[0], `height="400"`) {
		t.Fatalf("expected bare link converted to iframe markup, got %q", created.EmbedCodes[0])
	}
	if created.EmbedCodes[1] != "<iframe src=\"https://p.example\"></iframe>" {
		t.Fatalf("expected markup entry kept verbatim, got %q", created.EmbedCodes[1])
	}
	if created.FromAPI {
		t.Fatalf("manual game must not carry provider flag")
	}
	if refresher.invalidateCalls != 1 {
		t.Fatalf("expected cache invalidation on create, got %d", refresher.invalidateCalls)
	}

	stored, found, err := games.GetByID(context.Background(), created.ID)
	if err != nil || !found {
		t.Fatalf("expected persisted game, found=%v err=%v", found, err)
	}
	if stored.HomeTeam != "Flamengo" {
		t.Fatalf("unexpected stored game: %+v", stored)
	}
}

func TestUpdateGame_PreservesIdentityAndOrigin(t *testing.T) {
	t.Parallel()

	games := memory.NewGameRepository([]game.Game{
		{ID: "api_42", HomeTeam: "A", AwayTeam: "B", League: "L", Date: "2024-05-10", Time: "16:00", Status: game.StatusUpcoming, FromAPI: true},
	})
	refresher := &fakeRefresher{}
	svc := newTestGameService(games, refresher)

	input := validGameInput()
	updated, err := svc.UpdateGame(context.Background(), "api_42", input)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != "api_42" {
		t.Fatalf("update must keep the id, got %s", updated.ID)
	}
	if !updated.FromAPI {
		t.Fatalf("update must keep the provider origin flag")
	}
	if updated.HomeTeam != "Flamengo" {
		t.Fatalf("unexpected updated game: %+v", updated)
	}
	if refresher.invalidateCalls != 1 {
		t.Fatalf("expected cache invalidation on update, got %d", refresher.invalidateCalls)
	}
}

func TestUpdateGame_PartialMerge(t *testing.T) {
	t.Parallel()

	games := memory.NewGameRepository([]game.Game{
		{
			ID: "g1", HomeTeam: "A", AwayTeam: "B", League: "L",
			Date: "2024-05-10", Time: "16:00", Status: game.StatusUpcoming,
			EmbedCodes: []string{"<iframe src=\"https://a.example\"></iframe>"},
			Viewers:    50,
		},
	})
	svc := newTestGameService(games, nil)

	updated, err := svc.UpdateGame(context.Background(), "g1", GameInput{Time: "17:30"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Time != "17:30" {
		t.Fatalf("expected patched time, got %s", updated.Time)
	}
	if updated.HomeTeam != "A" || updated.League != "L" || updated.Viewers != 50 {
		t.Fatalf("blank patch fields must keep stored values, got %+v", updated)
	}
	if len(updated.EmbedCodes) != 1 {
		t.Fatalf("nil embed patch must keep stored embeds, got %+v", updated.EmbedCodes)
	}

	updated, err = svc.UpdateGame(context.Background(), "g1", GameInput{EmbedCodes: []string{}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.EmbedCodes) != 0 {
		t.Fatalf("explicit empty embed list must clear stored embeds, got %+v", updated.EmbedCodes)
	}

	if _, err := svc.UpdateGame(context.Background(), "g1", GameInput{Date: "10/05/2024"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad date patch: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.UpdateGame(context.Background(), "g1", GameInput{Status: "paused"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad status patch: expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateGame_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestGameService(memory.NewGameRepository(nil), nil)

	if _, err := svc.UpdateGame(context.Background(), "missing", validGameInput()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteGame(t *testing.T) {
	t.Parallel()

	games := memory.NewGameRepository([]game.Game{{ID: "g1"}})
	refresher := &fakeRefresher{}
	svc := newTestGameService(games, refresher)

	if err := svc.DeleteGame(context.Background(), "g1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if refresher.invalidateCalls != 1 {
		t.Fatalf("expected cache invalidation on delete, got %d", refresher.invalidateCalls)
	}
	if err := svc.DeleteGame(context.Background(), "g1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestGetGame_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestGameService(memory.NewGameRepository(nil), nil)

	if _, err := svc.GetGame(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetGame(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank id, got %v", err)
	}
}

func TestListGames_RejectsMalformedDateFilter(t *testing.T) {
	t.Parallel()

	svc := newTestGameService(memory.NewGameRepository(nil), nil)

	if _, err := svc.ListGames(context.Background(), ListGamesInput{Date: "10-05-2024"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListGames_RefreshFailureDegradesToStored(t *testing.T) {
	t.Parallel()

	games := memory.NewGameRepository([]game.Game{
		{ID: "g1", HomeTeam: "A", AwayTeam: "B", Date: "2024-05-10", Time: "16:00", Status: game.StatusUpcoming},
	})
	refresher := &fakeRefresher{syncErr: errors.New("provider down")}
	svc := newTestGameService(games, refresher)

	out, err := svc.ListGames(context.Background(), ListGamesInput{Refresh: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if refresher.syncCalls != 1 {
		t.Fatalf("expected one refresh attempt, got %d", refresher.syncCalls)
	}
	if len(out) != 1 || out[0].ID != "g1" {
		t.Fatalf("expected stored games to be served, got %+v", out)
	}
}

func TestListGames_FiltersByDateAndOrdersLiveFirst(t *testing.T) {
	t.Parallel()

	games := memory.NewGameRepository([]game.Game{
		{ID: "late", Date: "2024-05-10", Time: "20:00", Status: game.StatusUpcoming},
		{ID: "live", Date: "2024-05-10", Time: "11:30", Status: game.StatusLive},
		{ID: "other-day", Date: "2024-05-11", Time: "10:00", Status: game.StatusUpcoming},
		{ID: "early", Date: "2024-05-10", Time: "16:00", Status: game.StatusUpcoming},
	})
	svc := newTestGameService(games, nil)

	out, err := svc.ListGames(context.Background(), ListGamesInput{Date: "2024-05-10"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 games on the filtered day, got %d", len(out))
	}
	if out[0].ID != "live" || out[1].ID != "early" || out[2].ID != "late" {
		t.Fatalf("unexpected ordering: %s, %s, %s", out[0].ID, out[1].ID, out[2].ID)
	}
}

func TestListGames_PersistsEvaluatedStates(t *testing.T) {
	t.Parallel()

	// Kickoff one hour before the fixed clock, so the pass flips it live.
	games := memory.NewGameRepository([]game.Game{
		{ID: "g1", Date: "2024-05-10", Time: "11:00", Status: game.StatusUpcoming},
	})
	svc := newTestGameService(games, nil)

	out, err := svc.ListGames(context.Background(), ListGamesInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out[0].Status != game.StatusLive {
		t.Fatalf("expected live after evaluation, got %s", out[0].Status)
	}

	stored, _, _ := games.GetByID(context.Background(), "g1")
	if stored.Status != game.StatusLive {
		t.Fatalf("expected evaluated state to be written back, got %s", stored.Status)
	}
}

func TestResolveEmbed(t *testing.T) {
	t.Parallel()

	games := memory.NewGameRepository([]game.Game{
		{ID: "g1", Date: "2024-05-10", Time: "16:00", Status: game.StatusUpcoming, EmbedCodes: []string{
			"<iframe src=\"https://a.example\"></iframe>",
			"",
			"<iframe src=\"https://b.example\"></iframe>",
		}},
		{ID: "empty", Date: "2024-05-10", Time: "16:00", Status: game.StatusUpcoming},
	})
	svc := newTestGameService(games, nil)

	res, err := svc.ResolveEmbed(context.Background(), "g1", 0)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Players != 2 {
		t.Fatalf("blank slots must not count, got %d players", res.Players)
	}
	if res.NextSlot != 1 || res.PrevSlot != 1 {
		t.Fatalf("unexpected cycle indexes: next=%d prev=%d", res.NextSlot, res.PrevSlot)
	}
	if !strings.Contains(string(res.Markup), "a.example") {
		t.Fatalf("unexpected markup: %s", res.Markup)
	}

	// Out-of-range slots wrap back onto the available sources.
	res, err = svc.ResolveEmbed(context.Background(), "g1", 5)
	if err != nil {
		t.Fatalf("resolve wrapped slot: %v", err)
	}
	if res.Slot != 1 {
		t.Fatalf("expected slot 5 to wrap to 1, got %d", res.Slot)
	}

	if _, err := svc.ResolveEmbed(context.Background(), "empty", 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for game without transmissions, got %v", err)
	}
}

func TestEvaluateNow_PersistsTransitionsAndSummarizes(t *testing.T) {
	t.Parallel()

	games := memory.NewGameRepository([]game.Game{
		{ID: "to-live", Date: "2024-05-10", Time: "11:30", Status: game.StatusUpcoming},
		{ID: "stays", Date: "2024-05-10", Time: "18:00", Status: game.StatusUpcoming},
		{ID: "done", Date: "2024-05-10", Time: "08:00", Status: game.StatusLive},
	})
	svc := newTestGameService(games, nil)

	summary, err := svc.EvaluateNow(context.Background())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if summary.Total != 3 || summary.Live != 1 || summary.Upcoming != 1 || summary.Finished != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	stored, _, _ := games.GetByID(context.Background(), "done")
	if stored.Status != game.StatusFinished {
		t.Fatalf("expected finished to be persisted, got %s", stored.Status)
	}
}
