package words

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wrdl/internal/game"
)

func TestLoadEveryPlayableLength(t *testing.T) {
	for n := 2; n <= 15; n++ {
		lex, err := Load(n)
		require.NoError(t, err, "length %d", n)
		assert.Equal(t, n, lex.Length())
		assert.NotZero(t, lex.Size())
		assert.True(t, sort.StringsAreSorted(lex.Words()), "length %d", n)
		for _, w := range lex.Words() {
			require.Len(t, w, n)
			require.True(t, isAlpha(w), w)
		}
	}
}

func TestLoadMissingLength(t *testing.T) {
	for _, n := range []int{0, 1, 16, 40} {
		_, err := Load(n)
		require.ErrorIs(t, err, game.ErrNoSuchDictionary, "length %d", n)
	}
	_, err := Load(16)
	assert.EqualError(t, err, "No dictionary loaded for 16-letter words.")
}

func TestEmbeddedDictionaryHasKnownWords(t *testing.T) {
	lex, err := Load(5)
	require.NoError(t, err)
	for _, w := range []string{"SPILT", "THICK", "BLOOM", "OZONE", "THROW"} {
		assert.True(t, lex.Contains(w), w)
	}
	assert.False(t, lex.Contains("spilt"), "membership is on normalized words")
}

func TestStats(t *testing.T) {
	s := Stats()
	assert.NotZero(t, s[5])
	assert.Zero(t, s[1])
}

func TestNewLexiconNormalizes(t *testing.T) {
	lex := NewLexicon(5, []string{" thick ", "Spilt", "SPILT", "sp-lt", "bloo", "bloomy", "", "crane"})
	assert.Equal(t, []string{"CRANE", "SPILT", "THICK"}, lex.Words())
	assert.Equal(t, 3, lex.Size())
}

func TestValidate(t *testing.T) {
	lex := NewLexicon(5, []string{"spilt", "thick"})

	w, err := lex.Validate("  tHiCk\n")
	require.NoError(t, err)
	assert.Equal(t, "THICK", w)

	tests := []struct {
		raw  string
		want error
	}{
		{"", game.ErrInvalidGuessLength},
		{"spil", game.ErrInvalidGuessLength},
		{"spilts", game.ErrInvalidGuessLength},
		{"sp1lt", game.ErrInvalidGuessChars},
		{"spl t", game.ErrInvalidGuessChars},
		{"aaaaa", game.ErrUnknownWord},
	}
	for _, tt := range tests {
		_, err := lex.Validate(tt.raw)
		assert.ErrorIs(t, err, tt.want, "%q", tt.raw)
	}

	_, err = lex.Validate("spil")
	var ge *game.Error
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, 4, ge.Length)
	assert.Equal(t, 5, ge.Want)
}

func TestGroup(t *testing.T) {
	got := group([]string{"am", "AM", "ox", "spilt", "it's", "  bloom  ", "Ümlaut"})
	assert.Equal(t, map[int][]string{
		2: {"AM", "OX"},
		5: {"BLOOM", "SPILT"},
	}, got)
}

func TestReadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("spilt\nthick\n\nbloom\n"), 0o600))

	lines, err := readWordFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"spilt", "thick", "", "bloom"}, lines)

	_, err = readWordFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
