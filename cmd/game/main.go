package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/SparshMishra09/Astroid-Shooter/internal/app"
	"github.com/SparshMishra09/Astroid-Shooter/internal/config"
	"github.com/SparshMishra09/Astroid-Shooter/internal/score"
)

// openLogger returns a discarding logger unless ASTROID_LOG points at a
// file. The terminal is the game screen, so nothing may log to it.
func openLogger() (*log.Logger, func()) {
	path := config.GetEnv("ASTROID_LOG", "")
	if path == "" {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	logger := log.NewWithOptions(f, log.Options{ReportTimestamp: true})
	return logger, func() { _ = f.Close() }
}

func main() {
	logger, closeLogger := openLogger()
	defer closeLogger()

	store := score.NewStore(config.GetEnv("SCORE_FILE", score.DefaultPath()))

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	a := app.New(reader, os.Stdout, app.Options{
		Logger: logger,
		Store:  store,
	})
	if err := a.Run(); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
