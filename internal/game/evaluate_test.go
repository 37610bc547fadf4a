package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	E = VerdictExact
	P = VerdictPresent
	A = VerdictAbsent
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		guess  string
		want   Result
	}{
		{"single exact amid misses", "SPILT", "THICK", Result{P, A, E, A, A}},
		{"misplaced copy with one exact", "BLOOM", "OZONE", Result{P, A, E, A, A}},
		{"surplus copies are absent", "BLOOM", "OOOOO", Result{A, A, E, E, A}},
		{"exact consumes before earlier present", "CLOSE", "LOOPS", Result{P, A, E, A, P}},
		{"both copies present", "SPEED", "EERIE", Result{P, P, A, A, A}},
		{"repeated letter split exact/present", "ABBEY", "BABES", Result{P, P, E, E, A}},
		{"exact at both ends", "TOAST", "TTTTT", Result{E, A, A, A, E}},
		{"one copy, guessed twice", "THROW", "OOZED", Result{P, A, A, A, A}},
		{"full match", "CHEAT", "CHEAT", Result{E, E, E, E, E}},
		{"two letters", "AM", "MA", Result{P, P}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.secret, tt.guess))
		})
	}
}

func TestEvaluatePanicsOnLengthMismatch(t *testing.T) {
	require.Panics(t, func() { Evaluate("SPILT", "SPILTS") })
}

// propertyWords is heavy on repeated letters on purpose.
var propertyWords = []string{
	"SPILT", "THICK", "BLOOM", "OZONE", "LOOPS", "CLOSE", "SPEED", "EERIE",
	"ABBEY", "BABES", "TOAST", "TTTTT", "OOOOO", "LLAMA", "ALLAY", "EEEEE",
	"GEESE", "SHEEP", "ELBOW", "BELLE",
}

func TestEvaluateProperties(t *testing.T) {
	for _, secret := range propertyWords {
		for _, guess := range propertyWords {
			res := Evaluate(secret, guess)
			require.Len(t, res, len(secret))

			exact := 0
			for i := range secret {
				if secret[i] == guess[i] {
					exact++
					assert.Equal(t, VerdictExact, res[i], "%s/%s pos %d", secret, guess, i)
				}
			}
			assert.Equal(t, exact, res.Count(VerdictExact), "%s/%s exact count", secret, guess)

			var inSecret, credited [26]int
			for i := range secret {
				inSecret[secret[i]-'A']++
				if res[i] != VerdictAbsent {
					credited[guess[i]-'A']++
				}
			}
			for c := 0; c < 26; c++ {
				assert.LessOrEqual(t, credited[c], inSecret[c], "%s/%s letter %c", secret, guess, 'A'+c)
			}

			// Deterministic regardless of call history.
			assert.Equal(t, res, Evaluate(secret, guess))
		}
		assert.True(t, Evaluate(secret, secret).Solved(), secret)
	}
}

func TestResultHelpers(t *testing.T) {
	r := Result{E, P, A, E}
	assert.Equal(t, "2102", r.Score())
	assert.Equal(t, 2, r.Count(VerdictExact))
	assert.False(t, r.Solved())
	assert.False(t, Result{}.Solved())
	assert.True(t, Result{E, E}.Solved())
}

func TestVerdictRank(t *testing.T) {
	assert.Greater(t, VerdictExact.Rank(), VerdictPresent.Rank())
	assert.Greater(t, VerdictPresent.Rank(), VerdictAbsent.Rank())
	assert.Greater(t, VerdictAbsent.Rank(), Verdict("").Rank())
}
