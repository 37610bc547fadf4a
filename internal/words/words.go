// internal/words/words.go
//
// Provides the lexicon (valid words of a given length) for the game engine.
//
// Responsibilities:
//   - Load the dictionary once, from a file named by the environment or from
//     the embedded default.
//   - Normalize entries (trim, upper-case, letters only) and group them by length.
//   - Hand out a Lexicon per requested length (NoSuchDictionary if none).
//
// Environment variables:
//   WRDL_DICTIONARY_FILE=/path/to/words.txt   one word per line, any case
//
// Constraints:
//   • Words are A–Z only and upper-cased.
//   • Duplicates are removed; each length's list is sorted.
//   • The dictionary source is read once (sync.Once).

package words

import (
	"bufio"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wrdl/assets"
	"github.com/robalobadob/wrdl/internal/game"
)

var (
	initOnce   sync.Once
	byLength   map[int][]string // normalized, deduplicated, sorted
	initialErr error
)

// Init loads the dictionary exactly once.
func Init() error {
	initOnce.Do(func() {
		var lines []string
		if path := os.Getenv("WRDL_DICTIONARY_FILE"); path != "" {
			lines, initialErr = readWordFile(path)
			if initialErr != nil {
				return
			}
			log.Info().Str("path", path).Int("lines", len(lines)).Msg("loaded dictionary file")
		} else {
			lines, initialErr = assets.DictionaryLines()
			if initialErr != nil {
				return
			}
		}
		byLength = group(lines)
	})
	return initialErr
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// group normalizes raw lines and buckets them by length.
func group(lines []string) map[int][]string {
	sets := make(map[int]map[string]struct{})
	for _, line := range lines {
		w, ok := normalize(line)
		if !ok {
			continue
		}
		if sets[len(w)] == nil {
			sets[len(w)] = make(map[string]struct{})
		}
		sets[len(w)][w] = struct{}{}
	}
	out := make(map[int][]string, len(sets))
	for n, set := range sets {
		list := make([]string, 0, len(set))
		for w := range set {
			list = append(list, w)
		}
		sort.Strings(list)
		out[n] = list
	}
	return out
}

// normalize trims and upper-cases s, rejecting anything that is not A–Z.
func normalize(s string) (string, bool) {
	w := strings.ToUpper(strings.TrimSpace(s))
	if w == "" || !isAlpha(w) {
		return "", false
	}
	return w, true
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Load returns the lexicon for words of exactly length letters.
func Load(length int) (*Lexicon, error) {
	if err := Init(); err != nil {
		return nil, &game.Error{Kind: game.KindNoSuchDictionary, Length: length, Err: err}
	}
	list := byLength[length]
	if len(list) == 0 {
		return nil, &game.Error{Kind: game.KindNoSuchDictionary, Length: length}
	}
	return NewLexicon(length, list), nil
}

// Stats returns the number of loaded words per length.
func Stats() map[int]int {
	_ = Init()
	out := make(map[int]int, len(byLength))
	for n, list := range byLength {
		out[n] = len(list)
	}
	return out
}
