package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/ssh"

	"github.com/vovakirdan/wampus-world/internal/games/wampus"
)

// fakeSession answers the calls the tea handler makes; anything else
// panics on the nil embedded session.
type fakeSession struct {
	ssh.Session
	user string
	pty  bool
}

func (s fakeSession) User() string { return s.user }

func (s fakeSession) Pty() (ssh.Pty, <-chan ssh.Window, bool) {
	if !s.pty {
		return ssh.Pty{}, nil, false
	}
	return ssh.Pty{Term: "xterm", Window: ssh.Window{Width: 100, Height: 30}}, nil, true
}

func newTestHost(logs *bytes.Buffer) *SSHServer {
	cfg := DefaultSSHServerConfig()
	cfg.Log = logs
	return newSessionHost(cfg)
}

func TestTeaHandlerGivesEachSessionItsOwnGame(t *testing.T) {
	var logs bytes.Buffer
	srv := newTestHost(&logs)

	first, opts := srv.teaHandler(fakeSession{user: "alice", pty: true})
	second, _ := srv.teaHandler(fakeSession{user: "bob", pty: true})

	if len(opts) == 0 {
		t.Error("expected program options for a PTY session")
	}

	a, ok := first.(Model)
	if !ok {
		t.Fatalf("first handler returned %T", first)
	}
	b, ok := second.(Model)
	if !ok {
		t.Fatalf("second handler returned %T", second)
	}

	ga, _ := a.game.(*wampus.Game)
	gb, _ := b.game.(*wampus.Game)
	if ga == nil || gb == nil {
		t.Fatalf("sessions should run a wampus game, got %T and %T", a.game, b.game)
	}
	if ga == gb {
		t.Error("two sessions share one game")
	}
	if a.config.ScreenW != 100 || a.config.ScreenH != 30 {
		t.Errorf("screen = %dx%d, expected the PTY size 100x30", a.config.ScreenW, a.config.ScreenH)
	}
	if a.config.Seed == 0 {
		t.Error("session seed should be filled in")
	}
}

func TestTeaHandlerRejectsSessionWithoutPty(t *testing.T) {
	var logs bytes.Buffer
	srv := newTestHost(&logs)

	model, opts := srv.teaHandler(fakeSession{user: "carol"})
	if model != nil || opts != nil {
		t.Errorf("expected no program, got %T with %d options", model, len(opts))
	}
	if !strings.Contains(logs.String(), "no PTY requested") {
		t.Errorf("missing warning in logs:\n%s", logs.String())
	}
}

func TestSessionConfigKeepsFixedSeed(t *testing.T) {
	srv := newTestHost(new(bytes.Buffer))
	srv.config.Runtime.Seed = 42

	cfg := srv.sessionConfig(ssh.Window{Width: 80, Height: 24})
	if cfg.Seed != 42 {
		t.Errorf("seed = %d, expected 42", cfg.Seed)
	}
	if cfg.TickRate != srv.config.Runtime.TickRate {
		t.Errorf("tick rate = %d, expected %d", cfg.TickRate, srv.config.Runtime.TickRate)
	}
}

func TestResolveHostKeyPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath: %v", err)
	}
	if expected := filepath.Join(home, ".wampus", "host_key"); path != expected {
		t.Errorf("path = %q, expected %q", path, expected)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}

	custom := filepath.Join(t.TempDir(), "keys", "server_key")
	path, err = resolveHostKeyPath(custom)
	if err != nil {
		t.Fatalf("resolveHostKeyPath(%q): %v", custom, err)
	}
	if path != custom {
		t.Errorf("path = %q, expected %q", path, custom)
	}
	if _, err := os.Stat(filepath.Dir(custom)); err != nil {
		t.Errorf("custom key directory not created: %v", err)
	}
}
