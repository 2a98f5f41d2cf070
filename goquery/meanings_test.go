package goquery_test

import (
	"testing"

	"github.com/akarpinski/duden"
	gq "github.com/akarpinski/duden/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMeanings(t *testing.T) {
	t.Parallel()

	t.Run("single-meaning layout yields one record", func(t *testing.T) {
		t.Parallel()

		sel := parseDoc(t, `<article><div id="bedeutung">
			<p>mit hoher Geschwindigkeit</p>
			<dl class="tuple"><dt>Beispiele</dt><dd><ul>
				<li>ein schnelles Auto</li>
				<li>schnell laufen; schnell denken</li>
			</ul></dd></dl>
		</div></article>`)

		meanings, err := gq.ParseMeanings(sel)

		require.NoError(t, err)
		require.Len(t, meanings, 1)
		assert.Equal(t, "mit hoher Geschwindigkeit", meanings[0].Text)
		assert.Equal(t, []string{"ein schnelles Auto", "schnell laufen", "schnell denken"}, meanings[0].Examples)
	})

	t.Run("multi-meaning layout yields records in document order", func(t *testing.T) {
		t.Parallel()

		sel := parseDoc(t, `<article><div id="bedeutungen"><ol>
			<li id="Bedeutung-1"><div><p>erste Bedeutung</p></div></li>
			<li id="Bedeutung-2"><div><p>zweite Bedeutung</p></div></li>
			<li id="Bedeutung-3"><div><p>dritte Bedeutung</p></div></li>
		</ol></div></article>`)

		meanings, err := gq.ParseMeanings(sel)

		require.NoError(t, err)
		require.Len(t, meanings, 3)
		assert.Equal(t, "erste Bedeutung", meanings[0].Text)
		assert.Equal(t, "zweite Bedeutung", meanings[1].Text)
		assert.Equal(t, "dritte Bedeutung", meanings[2].Text)
	})

	t.Run("single-meaning container wins over enumerated list", func(t *testing.T) {
		t.Parallel()

		sel := parseDoc(t, `<article>
			<div id="bedeutung"><p>die eine Bedeutung</p></div>
			<div id="bedeutungen"><ol>
				<li id="Bedeutung-1"><p>sollte ignoriert werden</p></li>
			</ol></div>
		</article>`)

		meanings, err := gq.ParseMeanings(sel)

		require.NoError(t, err)
		require.Len(t, meanings, 1)
		assert.Equal(t, "die eine Bedeutung", meanings[0].Text)
	})

	t.Run("items without meaning text are dropped", func(t *testing.T) {
		t.Parallel()

		sel := parseDoc(t, `<article><div id="bedeutungen"><ol>
			<li id="Bedeutung-1"><p>  </p></li>
			<li id="Bedeutung-2"><p>echte Bedeutung</p></li>
			<li id="andere"><p>kein Bedeutungseintrag</p></li>
		</ol></div></article>`)

		meanings, err := gq.ParseMeanings(sel)

		require.NoError(t, err)
		require.Len(t, meanings, 1)
		assert.Equal(t, "echte Bedeutung", meanings[0].Text)
	})

	t.Run("neither layout present is a hard failure", func(t *testing.T) {
		t.Parallel()

		sel := parseDoc(t, `<article><div class="lemma"><h1><span class="lemma__main">Wort</span></h1></div></article>`)

		_, err := gq.ParseMeanings(sel)

		require.Error(t, err)
		assert.Equal(t, duden.ENOTFOUND, duden.ErrorCode(err))
	})

	t.Run("all items empty is a hard failure", func(t *testing.T) {
		t.Parallel()

		sel := parseDoc(t, `<article><div id="bedeutungen"><ol>
			<li id="Bedeutung-1"><p></p></li>
		</ol></div></article>`)

		_, err := gq.ParseMeanings(sel)

		require.Error(t, err)
		assert.Equal(t, duden.ENOTFOUND, duden.ErrorCode(err))
	})

	t.Run("extracts grammar note and usages per sense", func(t *testing.T) {
		t.Parallel()

		sel := parseDoc(t, `<article><div id="bedeutung">
			<p>jemanden begleiten</p>
			<dl class="tuple"><dt>Grammatik</dt><dd>mit Akkusativ</dd></dl>
			<dl class="tuple"><dt>Wendungen, Redensarten, Sprichwörter</dt><dd><ul>
				<li>mit jemandem gehen</li>
				<li>sich gehen lassen</li>
			</ul></dd></dl>
		</div></article>`)

		meanings, err := gq.ParseMeanings(sel)

		require.NoError(t, err)
		require.Len(t, meanings, 1)
		assert.Equal(t, "mit Akkusativ", meanings[0].Grammar)
		assert.Equal(t, []string{"mit jemandem gehen", "sich gehen lassen"}, meanings[0].Usages)
	})

	t.Run("deletes spelling-rule links from meaning text", func(t *testing.T) {
		t.Parallel()

		sel := parseDoc(t, `<article><div id="bedeutung">
			<p>Schreibung in Zweifelsfällen <a href="/sprachwissen/rechtschreibregeln">Regel 205</a></p>
		</div></article>`)

		meanings, err := gq.ParseMeanings(sel)

		require.NoError(t, err)
		require.Len(t, meanings, 1)
		assert.Equal(t, "Schreibung in Zweifelsfällen", meanings[0].Text)
	})
}
