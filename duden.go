// Package duden provides a CLI tool for looking up German words on
// duden.de and turning them into Anki flashcards. It fetches a word's
// spelling page, extracts a normalized word record (word class,
// pronunciation, hyphenation, meanings with examples) from the page
// markup, caches looked-up words locally, and builds flashcard decks
// interactively.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, anki/).
package duden
