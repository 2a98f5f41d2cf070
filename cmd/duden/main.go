package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/akarpinski/duden"
	"github.com/akarpinski/duden/anki"
	"github.com/akarpinski/duden/goquery"
	"github.com/akarpinski/duden/htmltomarkdown"
	dudenhttp "github.com/akarpinski/duden/http"
	"github.com/akarpinski/duden/lookup"
	dudenslog "github.com/akarpinski/duden/slog"
	"github.com/akarpinski/duden/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config controls paths and network behavior. Set before calling Run().
	Config Config

	// SQLite database used by the word cache.
	DB *sqlite.DB

	// WordService for end-to-end testing.
	WordService duden.WordService
}

// NewMain returns a new instance of Main with configuration read from the
// environment.
func NewMain() *Main {
	return &Main{Config: ReadConfig()}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Logger: newLogger(stderr, m.Config.Verbose),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("duden"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'duden --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open the cache database
	m.DB = sqlite.NewDB(m.Config.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DUDEN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.Config.DBPath, err)
	}
	defer m.Close()

	m.WordService = sqlite.NewWordService(m.DB)
	deps.DB = m.DB
	deps.Words = m.WordService

	// Commands that hit the network get a rate-limited fetcher and the
	// full lookup pipeline.
	if cmd == "meaning" || cmd == "lookup" || cmd == "deck" {
		fetcher := dudenslog.NewLoggingFetcher(
			dudenhttp.NewFetcher(
				dudenhttp.WithTimeout(m.Config.FetchTimeout),
				dudenhttp.WithRequestsPerSecond(m.Config.RequestsPerSecond),
				dudenhttp.WithUserAgent(m.Config.UserAgent),
			),
			deps.Logger,
		)
		defer fetcher.Close()

		conv := htmltomarkdown.NewConverter()

		deps.Lookuper = &lookup.Lookuper{
			Fetcher: fetcher,
			Parser:  goquery.NewParser(conv),
			Words:   m.WordService,
			BaseURL: m.Config.BaseURL,
		}
	}

	if cmd == "deck" {
		deps.Decks = anki.NewWriter()
	}

	return kongCtx.Run(deps)
}

// newLogger builds the CLI logger. Logs go to stderr so they don't mix
// with command output; debug level is opt-in.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}
