package blackbird

import (
	"slices"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFormatEnvelopes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "s power 1!", FormatSystem("power 1"))
	assert.Equal(t, "r status!", FormatReport("status"))
	assert.Equal(t, "s in 1 av out 2!", FormatSystem("in 1 av out 2"))
	assert.Equal(t, "r !", FormatReport(""))
}

func TestPropertyFormatWrapsBodyVerbatim(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		body := rapid.String().Draw(t, "body")

		sys := FormatSystem(body)
		rep := FormatReport(body)

		if sys != "s "+body+"!" {
			t.Fatalf("system envelope: got %q for body %q", sys, body)
		}
		if rep != "r "+body+"!" {
			t.Fatalf("report envelope: got %q for body %q", rep, body)
		}
	})
}

func TestReplyDecoderCarriesSplitRune(t *testing.T) {
	t.Parallel()

	var dec replyDecoder
	dec.feed([]byte("sıcaklık \xe2\x82"))
	dec.feed([]byte("\xac 5"))

	got, err := dec.finish()
	require.NoError(t, err)
	assert.Equal(t, "sıcaklık € 5", got)
	assert.Equal(t, 2, dec.chunks)
}

func TestReplyDecoderRejectsMalformedChunk(t *testing.T) {
	t.Parallel()

	var dec replyDecoder
	dec.feed([]byte("link in 1 "))
	dec.feed([]byte{0xff, 'x'})
	dec.feed([]byte("ignored"))

	_, err := dec.finish()
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, "link in 1 ", decErr.Partial)
	assert.Equal(t, []byte{0xff, 'x'}, decErr.Bytes)
	assert.Equal(t, 3, dec.chunks)
}

func TestReplyDecoderIncompleteRuneAtEnd(t *testing.T) {
	t.Parallel()

	var dec replyDecoder
	dec.feed([]byte("OK\xc3"))

	_, err := dec.finish()
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, "OK", decErr.Partial)
}

func TestReplyDecoderTruncateDropsPartialRune(t *testing.T) {
	t.Parallel()

	var dec replyDecoder
	dec.feed([]byte("sıcaklık \xe2\x82"))
	dec.truncate()

	got, err := dec.finish()
	require.NoError(t, err)
	assert.Equal(t, "sıcaklık ", got)
}

func TestReplyDecoderEmpty(t *testing.T) {
	t.Parallel()

	var dec replyDecoder
	got, err := dec.finish()
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestPropertyReplyDecoderSplitAnywhere: geçerli UTF-8 metin hangi bayt
// sınırlarından bölünürse bölünsün aynen geri çözülür.
func TestPropertyReplyDecoderSplitAnywhere(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		data := []byte(text)
		cuts := rapid.SliceOfN(rapid.IntRange(0, len(data)), 0, 6).Draw(t, "cuts")

		var dec replyDecoder
		prev := 0
		for _, c := range sortedUnique(cuts) {
			if c > prev {
				dec.feed(data[prev:c])
				prev = c
			}
		}
		if prev < len(data) {
			dec.feed(data[prev:])
		}

		got, err := dec.finish()
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", text, err)
		}
		if got != text {
			t.Fatalf("got %q, want %q", got, text)
		}
	})
}

func TestPropertyReplyDecoderNeverReturnsInvalidUTF8(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		chunks := rapid.SliceOfN(rapid.SliceOf(rapid.Byte()), 0, 5).Draw(t, "chunks")

		var dec replyDecoder
		for _, c := range chunks {
			dec.feed(c)
		}
		got, err := dec.finish()
		if err != nil {
			return
		}
		if !utf8.ValidString(got) {
			t.Fatalf("decoder returned invalid UTF-8: %q", got)
		}
		if got != string(joinChunks(chunks)) {
			t.Fatalf("decoded text %q differs from input", got)
		}
	})
}

func sortedUnique(xs []int) []int {
	out := slices.Clone(xs)
	slices.Sort(out)
	return slices.Compact(out)
}

func joinChunks(chunks [][]byte) []byte {
	var out []byte
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}
