package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/SparshMishra09/Astroid-Shooter/internal/app"
	"github.com/SparshMishra09/Astroid-Shooter/internal/config"
	"github.com/SparshMishra09/Astroid-Shooter/internal/draw"
	"github.com/SparshMishra09/Astroid-Shooter/internal/score"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = ".ssh/astroid_host_key"

	// Sessions get this long to show the countdown before the listener
	// closes under them.
	shutdownNotice  = 12 * time.Second
	shutdownTimeout = 5 * time.Second
)

// sshApp is the state shared by every session: one score store, the logger,
// and the shutdown broadcast channel.
type sshApp struct {
	logger   *log.Logger
	store    *score.Store
	idleKick bool

	shutdown   chan struct{}
	notifyOnce sync.Once
	sessions   sync.WaitGroup
}

// announceShutdown closes the broadcast channel so every running session
// switches to the countdown screen.
func (a *sshApp) announceShutdown() {
	a.notifyOnce.Do(func() { close(a.shutdown) })
}

// middleware runs one private game session per SSH connection. Sessions
// share nothing but the score store.
func (a *sshApp) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := a.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("session started",
			"terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		tracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				tracker.update(win.Width, win.Height)
			}
		}()

		a.sessions.Add(1)
		defer a.sessions.Done()

		game := app.New(bufio.NewReader(sess), sess, app.Options{
			TermSizeFunc:     tracker.size,
			Logger:           logger,
			Store:            a.store,
			Shutdown:         a.shutdown,
			DisconnectOnIdle: a.idleKick,
		})
		if err := game.Run(); err != nil {
			logger.Error("session failed", "err", err)
		}

		logger.Info("session ended")
		next(sess)
	}
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ssh",
	})

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)

	shared := &sshApp{
		logger:   logger,
		store:    score.NewStore(config.GetEnv("SCORE_FILE", score.DefaultPath())),
		idleKick: config.GetEnvBool("SSH_IDLE_KICK", true),
		shutdown: make(chan struct{}),
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			shared.middleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// TCP_NODELAY keeps input latency down for the game loop.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("could not create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "host", host, "port", port)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down, notifying players")
	shared.announceShutdown()

	waited := make(chan struct{})
	go func() {
		shared.sessions.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-time.After(shutdownNotice):
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		logger.Error("shutdown error", "err", err)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) size() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.size satisfies draw.TermSizeFunc.
var _ draw.TermSizeFunc = (*sizeTracker)(nil).size
