package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/scroller/internal/storage"
)

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestMenuListsGamesAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	last := m.items[len(m.items)-1]
	if !last.quit || last.Title != "Quit" {
		t.Errorf("Expected Quit as last item, got %+v", last)
	}

	found := false
	for _, item := range m.items {
		if item.GameID == stubID {
			found = true
		}
	}
	if !found {
		t.Error("Expected registered game in menu")
	}

	if view := m.View(); !strings.Contains(view, "S C R O L L E R") {
		t.Errorf("Expected title in view, got %q", view)
	}
}

func TestMenuSelectGame(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	for m.items[m.cursor].GameID != stubID {
		m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.result()
	if res.Quit || res.WantsScoreboard || res.GameID != stubID {
		t.Errorf("Unexpected result: %+v", res)
	}
}

func TestMenuSelectQuit(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	for i, n := 0, len(m.items)+2; i < n; i++ {
		m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Fatalf("Cursor should stop at the last item, got %d", m.cursor)
	}

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.result().Quit {
		t.Error("Expected quit result")
	}
}

func TestMenuScoreboard(t *testing.T) {
	m := menuKey(t, NewMenuModel(nil, testConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.result().WantsScoreboard {
		t.Error("Expected scoreboard request from tab")
	}

	m = NewMenuModel(nil, testConfig())
	for !m.items[m.cursor].scores {
		m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.result().WantsScoreboard {
		t.Error("Expected scoreboard request from the Scores item")
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "menu.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore(stubID, 420)

	m := NewMenuModel(store, testConfig())
	if !strings.Contains(m.View(), "(best 420)") {
		t.Error("Expected best score in menu")
	}
}

func TestScoreboardLoadsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "board.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.RunRecord{GameID: stubID, Seed: 9, Ticks: 100, Distance: 4.5, Score: 45, Cause: "fell"})

	m := NewScoreboardModel(store, 100, 30)
	for m.games[m.gameCursor].ID != stubID {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}

	if len(m.runs) != 1 || m.runs[0].Score != 45 {
		t.Fatalf("Expected the stored run, got %+v", m.runs)
	}
	if !m.withSeed {
		t.Error("Expected seed column on wide terminals")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("Expected esc to go back")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if m.withSeed {
		t.Error("Expected seed column hidden on narrow terminals")
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("Expected empty message without a store")
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), "tester")

	update := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	for s.menu.items[s.menu.cursor].GameID != stubID {
		update(tea.KeyMsg{Type: tea.KeyDown})
	}
	update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame {
		t.Fatalf("Expected game screen, got %v", s.screen)
	}

	// The stub ends after three ticks
	for i := 0; i < 5; i++ {
		update(TickMsg{})
	}
	update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("Expected menu after leaving a finished game, got %v", s.screen)
	}

	update(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatalf("Expected scoreboard screen, got %v", s.screen)
	}
	update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("Expected menu after scoreboard, got %v", s.screen)
	}

	update(runeKey('q'))
	if !s.quitting {
		t.Error("Expected session to quit")
	}
}
