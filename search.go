package exercises

import (
	"strings"

	"github.com/npillmayer/exercises/maybe"
	"github.com/samber/lo"
)

// FirstThenApply finds the first element of xs satisfying p and returns f of it.
// If no element satisfies p, Nothing is returned and f is not called.
func FirstThenApply[A, B any](xs []A, p func(A) bool, f func(A) B) maybe.Maybe[B] {
	if x, found := lo.Find(xs, p); found {
		return maybe.Just(f(x))
	}
	return maybe.Nothing[B]()
}

// FirstThenLowerCase returns the first string of xs satisfying p in lower case.
func FirstThenLowerCase(xs []string, p func(string) bool) maybe.Maybe[string] {
	return FirstThenApply(xs, p, strings.ToLower)
}
