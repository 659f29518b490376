// Package quiz holds the pure rules behind daily sets, grading, the wrong pool and streaks.
// Nothing in here touches the database or the clock.
package quiz

import (
	"math"
	"strconv"
)

// SeededRandom maps seed to a value in [0,1). The same seed always gives the same value.
// It is not suitable for anything security related.
func SeededRandom(seed string) float64 {
	sum := 0
	for _, r := range seed {
		sum += int(r)
	}
	x := math.Sin(float64(sum)) * 10000
	return x - math.Floor(x)
}

// Shuffle returns a permutation of items decided only by seed (Fisher-Yates, backward pass).
// The input slice is left untouched.
func Shuffle[T any](items []T, seed string) []T {
	out := make([]T, len(items))
	copy(out, items)

	for i := len(out) - 1; i > 0; i-- {
		j := int(math.Floor(SeededRandom(seed+"-"+strconv.Itoa(i)) * float64(i+1)))
		if j > i {
			j = i
		}
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// DailySeed is the seed shared by every user of a faculty on a given day.
func DailySeed(date, faculty string) string {
	return date + "::" + faculty
}
