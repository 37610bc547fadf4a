package game

import "fmt"

// Evaluate grades guess against secret using the two-pass rule.
//
// Pass 1:
//   - Mark exact matches and consume one copy of the letter from the secret.
//
// Pass 2:
//   - For each remaining position, left to right: if the secret still has an
//     unconsumed copy of the letter, mark Present and consume it; otherwise Absent.
//
// A guess carrying more copies of a letter than the secret therefore gets at
// most that many Exact+Present verdicts for it, exact positions counted first.
//
// Both words must be uppercase A–Z of equal length; anything else is a caller
// bug and panics.
func Evaluate(secret, guess string) Result {
	n := len(secret)
	if len(guess) != n {
		panic(fmt.Sprintf("game: evaluate %q against %q: length mismatch", guess, secret))
	}
	res := make(Result, n)

	var total, used [26]int
	for i := 0; i < n; i++ {
		total[idx(secret[i])]++
	}

	// First pass: exact matches.
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res[i] = VerdictExact
			used[idx(guess[i])]++
		}
	}

	// Second pass: present/absent for everything else.
	for i := 0; i < n; i++ {
		if res[i] == VerdictExact {
			continue
		}
		j := idx(guess[i])
		if used[j] < total[j] {
			res[i] = VerdictPresent
			used[j]++
		} else {
			res[i] = VerdictAbsent
		}
	}
	return res
}

// idx maps an uppercase ASCII letter to 0..25.
func idx(c byte) int {
	if c < 'A' || c > 'Z' {
		panic(fmt.Sprintf("game: %q is not an uppercase letter", c))
	}
	return int(c - 'A')
}
