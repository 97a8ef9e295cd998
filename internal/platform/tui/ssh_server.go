package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"
)

const shutdownGrace = 10 * time.Second

type sessionIDKey struct{}

// SSHServerConfig configures the SSH host. Env is shared by every
// connection: all players see the same history and scoreboard.
type SSHServerConfig struct {
	Address     string
	HostKeyPath string // generated under ~/.promptarcade when empty
	IdleTimeout time.Duration
	Env         Env
}

// DefaultSSHServerConfig listens on :23234 and drops connections idle for
// half an hour.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer gives each SSH connection its own prompt arcade session. It does
// not own Env.Store; the caller closes it after Serve returns.
type SSHServer struct {
	addr   string
	env    Env
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer prepares the host key directory and the wish middleware
// chain. Nothing listens until Serve.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	keyPath, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	// Seeds are filled per session so connections do not share one.
	logger := cfg.Env.Logger
	if logger == nil {
		logger = cfg.Env.withDefaults().Logger
	}
	s := &SSHServer{
		addr:   cfg.Address,
		env:    cfg.Env,
		logger: logger.WithPrefix("ssh"),
	}

	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			s.trackSession,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: create SSH server: %w", err)
	}
	return s, nil
}

func hostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: locate home directory: %w", err)
		}
		path = filepath.Join(home, ".promptarcade", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: create host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the Bubble Tea program for one connection, sized to the
// client's PTY.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("connection without PTY", "user", sess.User())
		return nil, nil
	}

	id, _ := sess.Context().Value(sessionIDKey{}).(string)
	if id == "" {
		id = uuid.NewString()
	}
	env := s.env.resize(pty.Window.Width, pty.Window.Height)
	return NewSessionModel(env, id), []tea.ProgramOption{tea.WithAltScreen()}
}

// trackSession assigns the connection a session id and logs how long it
// stayed.
func (s *SSHServer) trackSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id := uuid.NewString()
		sess.Context().SetValue(sessionIDKey{}, id)
		logger := s.logger.With("session", id, "user", sess.User())

		logger.Info("connected", "remote", sess.RemoteAddr().String())
		start := time.Now()
		next(sess)
		logger.Info("disconnected", "after", time.Since(start).Round(time.Second))
	}
}

// Serve accepts connections until ctx is cancelled, then shuts down,
// giving open sessions a few seconds to finish.
func (s *SSHServer) Serve(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "address", s.addr)
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: serve SSH: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("tui: shut down SSH: %w", err)
	}
	return nil
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.addr
}
