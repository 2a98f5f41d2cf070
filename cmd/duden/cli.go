package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/akarpinski/duden"
	"github.com/akarpinski/duden/lookup"
	"github.com/akarpinski/duden/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Words    duden.WordService
	Lookuper *lookup.Lookuper
	Decks    duden.DeckWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Meaning MeaningCmd `cmd:"" help:"Look up a word and print its meanings"`
	Lookup  LookupCmd  `cmd:"" help:"Fetch several words into the cache"`
	Words   WordsCmd   `cmd:"" help:"List cached words"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a word from the cache"`
	Deck    DeckCmd    `cmd:"" help:"Build an Anki deck interactively"`
}

// MeaningCmd is the "meaning" subcommand.
type MeaningCmd struct {
	Word    string `arg:"" help:"Word to look up"`
	Refresh bool   `short:"r" help:"Bypass the cache and fetch a fresh entry"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Words       []string `arg:"" help:"Words to fetch"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Refresh     bool     `short:"r" help:"Bypass the cache and fetch fresh entries"`
}

// WordsCmd is the "words" subcommand.
type WordsCmd struct {
	Limit int `short:"n" help:"Show at most this many words"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Word  string `arg:"" help:"Word to delete"`
	Force bool   `help:"Confirm deletion"`
}

// DeckCmd is the "deck" subcommand.
type DeckCmd struct {
	Output string `short:"o" help:"Output .apkg path (defaults to a timestamped name)"`
	Name   string `help:"Deck name (defaults to a timestamped name)"`
}
