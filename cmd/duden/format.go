package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/akarpinski/duden"
)

// printGrammar writes the headword overview: class, article, hyphenation,
// frequency, and pronunciation.
func printGrammar(w io.Writer, word *duden.Word) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "Wort\t%s\n", word.Word)
	fmt.Fprintf(tw, "Wortart\t%s\n", word.Class)
	if article := word.Class.DefiniteArticle(); article != "" {
		fmt.Fprintf(tw, "Artikel\t%s\n", article)
	}
	if word.Hyphenation != "" {
		fmt.Fprintf(tw, "Worttrennung\t%s\n", word.Hyphenation)
	}
	if word.Frequency != duden.FrequencyUnknown {
		fmt.Fprintf(tw, "Häufigkeit\t%s\n", formatFrequency(word.Frequency))
	}
	if p := word.Pronunciation; p != nil {
		if p.IPA != "" {
			fmt.Fprintf(tw, "Aussprache\t%s\n", p.IPA)
		}
		if p.Stress != "" {
			fmt.Fprintf(tw, "Betonung\t%s\n", p.Stress)
		}
	}
	tw.Flush()
}

// printMeanings writes the numbered sense list with examples, grammar
// notes, and idioms.
func printMeanings(w io.Writer, word *duden.Word) {
	for i, m := range word.Meanings {
		fmt.Fprintf(w, "%d. %s\n", i+1, m.Text)
		if m.Grammar != "" {
			fmt.Fprintf(w, "   Grammatik: %s\n", m.Grammar)
		}
		if len(m.Examples) > 0 {
			fmt.Fprintln(w, "   Beispiele:")
			for _, e := range m.Examples {
				fmt.Fprintf(w, "     - %s\n", e)
			}
		}
		if len(m.Usages) > 0 {
			fmt.Fprintln(w, "   Wendungen:")
			for _, u := range m.Usages {
				fmt.Fprintf(w, "     - %s\n", u)
			}
		}
	}
}

// formatFrequency renders a frequency tier as a five-step gauge.
func formatFrequency(f duden.Frequency) string {
	n := int(f)
	if n < int(duden.FrequencyMin) || n > int(duden.FrequencyMax) {
		return "unbekannt"
	}
	return strings.Repeat("▮", n) + strings.Repeat("▯", int(duden.FrequencyMax)-n)
}
