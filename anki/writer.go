// Package anki writes flashcard decks as Anki .apkg packages.
//
// An .apkg file is a zip archive holding a SQLite database named
// collection.anki2 plus a media manifest. The schema and the JSON blobs in
// the col table follow the format Anki's importer expects.
package anki

import (
	"archive/zip"
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/akarpinski/duden"
)

// Ensure Writer implements duden.DeckWriter at compile time.
var _ duden.DeckWriter = (*Writer)(nil)

// modelID identifies the note model. It is fixed so that re-importing a
// deck updates existing notes instead of duplicating them.
const modelID = 1923456780

// fieldSeparator joins note fields in the flds column.
const fieldSeparator = "\x1f"

// Writer writes decks to .apkg files.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteDeck writes the deck as an .apkg package at path.
func (w *Writer) WriteDeck(path string, deck *duden.Deck) error {
	if err := deck.Validate(); err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "duden-anki-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	collectionPath := filepath.Join(tmpDir, "collection.anki2")
	if err := writeCollection(collectionPath, deck); err != nil {
		return err
	}

	return writePackage(path, collectionPath)
}

// writePackage zips the collection database and an empty media manifest
// into the .apkg file at path.
func writePackage(path, collectionPath string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	entry, err := zw.Create("collection.anki2")
	if err != nil {
		return fmt.Errorf("failed to create collection entry: %w", err)
	}
	src, err := os.Open(collectionPath)
	if err != nil {
		return fmt.Errorf("failed to open collection: %w", err)
	}
	if _, err := io.Copy(entry, src); err != nil {
		src.Close()
		return fmt.Errorf("failed to write collection: %w", err)
	}
	src.Close()

	media, err := zw.Create("media")
	if err != nil {
		return fmt.Errorf("failed to create media entry: %w", err)
	}
	if _, err := media.Write([]byte("{}")); err != nil {
		return fmt.Errorf("failed to write media manifest: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize package: %w", err)
	}
	return out.Close()
}

// writeCollection builds the collection.anki2 database at path.
func writeCollection(path string, deck *duden.Deck) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open collection database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(collectionSchema); err != nil {
		return fmt.Errorf("failed to create collection schema: %w", err)
	}

	now := time.Now()
	deckID := generateDeckID()

	if err := insertCol(db, now, deckID, deck.Name); err != nil {
		return err
	}
	if err := insertNotes(db, now, deckID, deck.Cards); err != nil {
		return err
	}
	return nil
}

// generateDeckID returns a random deck ID in the range Anki reserves for
// user-created decks.
func generateDeckID() int64 {
	return 1<<30 + rand.Int64N(1<<30)
}

func insertCol(db *sql.DB, now time.Time, deckID int64, deckName string) error {
	models, err := modelsJSON(now)
	if err != nil {
		return err
	}
	decks, err := decksJSON(now, deckID, deckName)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO col (id, crt, mod, scm, ver, dty, usn, ls, conf, models, decks, dconf, tags)
		 VALUES (1, ?, ?, ?, 11, 0, 0, 0, ?, ?, ?, ?, '{}')`,
		now.Unix(), now.UnixMilli(), now.UnixMilli(),
		defaultConf, models, decks, defaultDconf,
	)
	if err != nil {
		return fmt.Errorf("failed to insert collection row: %w", err)
	}
	return nil
}

func insertNotes(db *sql.DB, now time.Time, deckID int64, cards []duden.Card) error {
	noteStmt, err := db.Prepare(
		`INSERT INTO notes (id, guid, mid, mod, usn, tags, flds, sfld, csum, flags, data)
		 VALUES (?, ?, ?, ?, -1, '', ?, ?, ?, 0, '')`,
	)
	if err != nil {
		return fmt.Errorf("failed to prepare note insert: %w", err)
	}
	defer noteStmt.Close()

	cardStmt, err := db.Prepare(
		`INSERT INTO cards (id, nid, did, ord, mod, usn, type, queue, due, ivl, factor,
		 reps, lapses, left, odue, odid, flags, data)
		 VALUES (?, ?, ?, ?, ?, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, '')`,
	)
	if err != nil {
		return fmt.Errorf("failed to prepare card insert: %w", err)
	}
	defer cardStmt.Close()

	// Note and card IDs are millisecond timestamps; keep them unique by
	// spacing them out from a common base.
	id := now.UnixMilli()
	for _, card := range cards {
		fields := []string{card.Word, card.Definition, card.Hint, card.Grammar, card.Example}
		flds := strings.Join(fields, fieldSeparator)

		noteID := id
		id++
		if _, err := noteStmt.Exec(
			noteID, noteGUID(flds), modelID, now.Unix(),
			flds, card.Word, fieldChecksum(card.Word),
		); err != nil {
			return fmt.Errorf("failed to insert note for %q: %w", card.Word, err)
		}

		for ord := range modelTemplates {
			if _, err := cardStmt.Exec(id, noteID, deckID, ord, now.Unix()); err != nil {
				return fmt.Errorf("failed to insert card for %q: %w", card.Word, err)
			}
			id++
		}
	}
	return nil
}

// noteGUID derives a stable note identifier from the field values, so that
// importing the same deck twice updates notes in place.
func noteGUID(flds string) string {
	return strconv.FormatUint(xxhash.Sum64String(flds), 36)
}

// fieldChecksum is the integer value of the first 8 hex digits of the
// SHA1 of the sort field. Anki uses it for duplicate detection.
func fieldChecksum(sfld string) int64 {
	sum := sha1.Sum([]byte(sfld))
	n, _ := strconv.ParseInt(hex.EncodeToString(sum[:])[:8], 16, 64)
	return n
}

type modelTemplate struct {
	name string
	qfmt string
	afmt string
}

var modelTemplates = []modelTemplate{
	{
		name: "Simple German Definition",
		qfmt: "{{Word}} {{Hint}}",
		afmt: `{{Word}}<hr id="answer">{{Grammar}}<hr>{{Definition}}<hr>{{Example}}`,
	},
	{
		name: "Simple German Explain",
		qfmt: "{{Definition}}",
		afmt: `{{Definition}}<hr id="answer">{{Word}}`,
	},
}

var modelFields = []string{"Word", "Definition", "Hint", "Grammar", "Example"}

func modelsJSON(now time.Time) (string, error) {
	flds := make([]map[string]any, len(modelFields))
	for i, name := range modelFields {
		flds[i] = map[string]any{
			"name":   name,
			"ord":    i,
			"sticky": false,
			"rtl":    false,
			"font":   "Arial",
			"size":   20,
			"media":  []string{},
		}
	}

	tmpls := make([]map[string]any, len(modelTemplates))
	for i, t := range modelTemplates {
		tmpls[i] = map[string]any{
			"name":  t.name,
			"ord":   i,
			"qfmt":  t.qfmt,
			"afmt":  t.afmt,
			"did":   nil,
			"bqfmt": "",
			"bafmt": "",
		}
	}

	model := map[string]any{
		"id":        modelID,
		"name":      "Simple German Model",
		"type":      0,
		"mod":       now.Unix(),
		"usn":       -1,
		"sortf":     0,
		"did":       1,
		"vers":      []string{},
		"tags":      []string{},
		"flds":      flds,
		"tmpls":     tmpls,
		"req":       [][]any{{0, "all", []int{0}}, {1, "all", []int{1}}},
		"css":       defaultCSS,
		"latexPre":  defaultLatexPre,
		"latexPost": defaultLatexPost,
	}

	b, err := json.Marshal(map[string]any{strconv.Itoa(modelID): model})
	if err != nil {
		return "", fmt.Errorf("failed to encode models: %w", err)
	}
	return string(b), nil
}

func decksJSON(now time.Time, deckID int64, name string) (string, error) {
	newDeck := func(id int64, name string) map[string]any {
		return map[string]any{
			"id":               id,
			"name":             name,
			"mod":              now.Unix(),
			"usn":              -1,
			"desc":             "",
			"dyn":              0,
			"conf":             1,
			"collapsed":        false,
			"browserCollapsed": false,
			"extendNew":        0,
			"extendRev":        50,
			"newToday":         []int{0, 0},
			"revToday":         []int{0, 0},
			"lrnToday":         []int{0, 0},
			"timeToday":        []int{0, 0},
		}
	}

	decks := map[string]any{"1": newDeck(1, "Default")}
	decks[strconv.FormatInt(deckID, 10)] = newDeck(deckID, name)

	b, err := json.Marshal(decks)
	if err != nil {
		return "", fmt.Errorf("failed to encode decks: %w", err)
	}
	return string(b), nil
}

const defaultCSS = `.card {
 font-family: arial;
 font-size: 20px;
 text-align: center;
 color: black;
 background-color: white;
}`

const defaultLatexPre = `\documentclass[12pt]{article}
\special{papersize=3in,5in}
\usepackage[utf8]{inputenc}
\usepackage{amssymb,amsmath}
\pagestyle{empty}
\setlength{\parindent}{0in}
\begin{document}
`

const defaultLatexPost = `\end{document}`

const defaultConf = `{"activeDecks": [1], "curDeck": 1, "newSpread": 0, "collapseTime": 1200, "timeLim": 0, "estTimes": true, "dueCounts": true, "curModel": null, "nextPos": 1, "sortType": "noteFld", "sortBackwards": false, "addToCur": true, "dayLearnFirst": false}`

const defaultDconf = `{"1": {"id": 1, "name": "Default", "mod": 0, "usn": 0, "maxTaken": 60, "autoplay": true, "timer": 0, "replayq": true, "new": {"bury": true, "delays": [1, 10], "initialFactor": 2500, "ints": [1, 4, 7], "order": 1, "perDay": 20, "separate": true}, "rev": {"bury": true, "ease4": 1.3, "fuzz": 0.05, "ivlFct": 1, "maxIvl": 36500, "minSpace": 1, "perDay": 100}, "lapse": {"delays": [10], "leechAction": 0, "leechFails": 8, "minInt": 1, "mult": 0}, "dyn": false}}`

const collectionSchema = `
CREATE TABLE col (
	id INTEGER PRIMARY KEY,
	crt INTEGER NOT NULL,
	mod INTEGER NOT NULL,
	scm INTEGER NOT NULL,
	ver INTEGER NOT NULL,
	dty INTEGER NOT NULL,
	usn INTEGER NOT NULL,
	ls INTEGER NOT NULL,
	conf TEXT NOT NULL,
	models TEXT NOT NULL,
	decks TEXT NOT NULL,
	dconf TEXT NOT NULL,
	tags TEXT NOT NULL
);
CREATE TABLE notes (
	id INTEGER PRIMARY KEY,
	guid TEXT NOT NULL,
	mid INTEGER NOT NULL,
	mod INTEGER NOT NULL,
	usn INTEGER NOT NULL,
	tags TEXT NOT NULL,
	flds TEXT NOT NULL,
	sfld INTEGER NOT NULL,
	csum INTEGER NOT NULL,
	flags INTEGER NOT NULL,
	data TEXT NOT NULL
);
CREATE TABLE cards (
	id INTEGER PRIMARY KEY,
	nid INTEGER NOT NULL,
	did INTEGER NOT NULL,
	ord INTEGER NOT NULL,
	mod INTEGER NOT NULL,
	usn INTEGER NOT NULL,
	type INTEGER NOT NULL,
	queue INTEGER NOT NULL,
	due INTEGER NOT NULL,
	ivl INTEGER NOT NULL,
	factor INTEGER NOT NULL,
	reps INTEGER NOT NULL,
	lapses INTEGER NOT NULL,
	left INTEGER NOT NULL,
	odue INTEGER NOT NULL,
	odid INTEGER NOT NULL,
	flags INTEGER NOT NULL,
	data TEXT NOT NULL
);
CREATE TABLE revlog (
	id INTEGER PRIMARY KEY,
	cid INTEGER NOT NULL,
	usn INTEGER NOT NULL,
	ease INTEGER NOT NULL,
	ivl INTEGER NOT NULL,
	lastIvl INTEGER NOT NULL,
	factor INTEGER NOT NULL,
	time INTEGER NOT NULL,
	type INTEGER NOT NULL
);
CREATE TABLE graves (
	usn INTEGER NOT NULL,
	oid INTEGER NOT NULL,
	type INTEGER NOT NULL
);
CREATE INDEX ix_notes_usn ON notes (usn);
CREATE INDEX ix_cards_usn ON cards (usn);
CREATE INDEX ix_revlog_usn ON revlog (usn);
CREATE INDEX ix_cards_nid ON cards (nid);
CREATE INDEX ix_cards_sched ON cards (did, queue, due);
CREATE INDEX ix_revlog_cid ON revlog (cid);
CREATE INDEX ix_notes_csum ON notes (csum);
`
