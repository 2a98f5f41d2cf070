package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/akarpinski/duden"
)

// Run executes the deck command. It reads words from stdin, looks each
// one up, and asks for a hint and an example per sense before writing
// the collected cards as an .apkg package.
func (c *DeckCmd) Run(deps *Dependencies) error {
	name := c.Name
	if name == "" {
		name = "Deutsch " + time.Now().Format("02 January 2006 15:04:05")
	}
	output := c.Output
	if output == "" {
		output = name + ".apkg"
	}

	deck := &duden.Deck{Name: name}
	in := bufio.NewScanner(deps.Stdin)

	for {
		word, ok := prompt(in, deps.Stdout, "Ask for word (q for quit): ")
		if !ok || word == "q" {
			break
		}
		if word == "" {
			continue
		}

		entry, err := deps.Lookuper.Lookup(deps.Ctx, word)
		if err != nil {
			deps.Logger.Error("no card generated", "word", word, "error", duden.ErrorMessage(err))
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", word, duden.ErrorMessage(err))
			continue
		}

		for _, meaning := range entry.Meanings {
			card := duden.Card{
				Word:       entry.Word,
				Definition: meaning.Text,
				Grammar:    cardGrammar(entry, meaning),
			}
			if len(entry.Meanings) > 1 {
				card.Hint = askHint(in, deps.Stdout, meaning.Text)
			}
			card.Example = askExample(in, deps.Stdout, meaning.Examples)

			deck.Cards = append(deck.Cards, card)
		}
	}

	if len(deck.Cards) == 0 {
		fmt.Fprintln(deps.Stdout, "No cards collected.")
		return nil
	}

	if err := deps.Decks.WriteDeck(output, deck); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", duden.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d cards to %s\n", len(deck.Cards), output)
	return nil
}

// cardGrammar builds the grammar line for a card. Nouns get their
// definite article plus any declension note; verbs get the conjugation
// note as-is.
func cardGrammar(word *duden.Word, meaning duden.Meaning) string {
	switch {
	case word.Class.IsNoun():
		parts := []string{"Artikel - " + word.Class.DefiniteArticle()}
		if meaning.Grammar != "" {
			parts = append(parts, meaning.Grammar)
		}
		return strings.Join(parts, ", ")
	case word.Class.IsVerb():
		return meaning.Grammar
	}
	return ""
}

// askHint lets the user pick a hint word out of the definition, enter a
// custom one, or skip. Picked hints are reduced to their letters and
// wrapped in slashes so they stand out on the card front.
func askHint(in *bufio.Scanner, out io.Writer, definition string) string {
	defined := strings.Fields(definition)

	enumerated := make([]string, len(defined))
	for i, w := range defined {
		enumerated[i] = fmt.Sprintf("%s /%d/", w, i)
	}

	for {
		fmt.Fprintf(out, "Definition: %s\n", strings.Join(enumerated, " "))
		answer, ok := prompt(in, out, "Enter the number of the hint word, s for skip, n for new: ")
		if !ok {
			return ""
		}

		switch answer {
		case "s":
			return ""
		case "n":
			hint, _ := prompt(in, out, "Enter a hint: ")
			if hint == "" {
				return ""
			}
			return "/" + hint + "/"
		}

		idx, err := strconv.Atoi(answer)
		if err != nil {
			continue
		}
		if idx < 0 || idx >= len(defined) {
			fmt.Fprintf(out, "Specified number outside of length: %d\n", len(defined))
			continue
		}
		if hint := letters(defined[idx]); hint != "" {
			return "/" + hint + "/"
		}
		return ""
	}
}

// askExample lets the user pick one of the sense's examples, enter a
// custom one, or skip.
func askExample(in *bufio.Scanner, out io.Writer, examples []string) string {
	answer, ok := prompt(in, out, "Add example y/n: ")
	for ok && answer != "y" && answer != "n" {
		answer, ok = prompt(in, out, "Add example y/n: ")
	}
	if !ok || answer == "n" {
		return ""
	}

	for i, e := range examples {
		fmt.Fprintf(out, "  %d. %s\n", i+1, e)
	}

	for {
		answer, ok := prompt(in, out, "Enter the number of the example, s for skip, n for new: ")
		if !ok || answer == "s" {
			return ""
		}
		if answer == "n" {
			example, _ := prompt(in, out, "Enter an example: ")
			return example
		}

		idx, err := strconv.Atoi(answer)
		if err != nil {
			continue
		}
		if idx < 1 || idx > len(examples) {
			fmt.Fprintf(out, "Enter a number between 1 and %d\n", len(examples))
			continue
		}
		return examples[idx-1]
	}
}

// prompt prints a message and reads one trimmed line. The second return
// value is false when input is exhausted.
func prompt(in *bufio.Scanner, out io.Writer, msg string) (string, bool) {
	fmt.Fprint(out, msg)
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}

// letters keeps only the letters of a token, dropping punctuation that
// clings to words lifted out of a definition.
func letters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
