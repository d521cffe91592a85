package regexlib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// wordsOver enumerates every string over alpha up to maxLen runes,
// shortest first.
func wordsOver(alpha string, maxLen int) []string {
	words := []string{""}
	prev := []string{""}
	for l := 0; l < maxLen; l++ {
		var next []string
		for _, w := range prev {
			for _, c := range alpha {
				next = append(next, w+string(c))
			}
		}
		words = append(words, next...)
		prev = next
	}
	return words
}

func acc(t *testing.T, re *Regex, in string, want bool) {
	t.Helper()
	if got := re.Match(in); got != want {
		t.Fatalf("pattern %q on %q want %v got %v", re.Pattern(), in, want, got)
	}
}

func TestSmoke(t *testing.T) {
	re := MustCompile("[bm]e*(at|f{4})")
	acc(t, re, "beef", false)
	acc(t, re, "beeeeeeeeffff", true)
	acc(t, re, "meat", true)
	acc(t, re, "beaffff", false)
	acc(t, re, "mffff", true)
	acc(t, re, "eat", false)
}

func TestStarAcceptsEmpty(t *testing.T) {
	for _, p := range []string{"a", "ab", "a|b", "[xyz]", "a{2,3}"} {
		re := MustCompile("(" + p + ")*")
		acc(t, re, "", true)
	}
	acc(t, MustCompile("a*"), "", true)
}

func TestLiteralSelfMatch(t *testing.T) {
	lits := []string{"a", "hello", "x1y2", "go"}
	for _, s := range lits {
		re := MustCompile(s)
		acc(t, re, s, true)
		for _, other := range lits {
			if other != s {
				acc(t, re, other, false)
			}
		}
		acc(t, re, s+"x", false)
		acc(t, re, s[:len(s)-1], false)
	}
}

func TestAlternationIsDisjunction(t *testing.T) {
	pats := []string{"a", "ab", "b*", "a|c"}
	inputs := wordsOver("abc", 3)
	for _, p1 := range pats {
		for _, p2 := range pats {
			both := MustCompile("(" + p1 + ")|(" + p2 + ")")
			r1, r2 := MustCompile(p1), MustCompile(p2)
			for _, in := range inputs {
				want := r1.Match(in) || r2.Match(in)
				if got := both.Match(in); got != want {
					t.Fatalf("(%s)|(%s) on %q: want %v got %v", p1, p2, in, want, got)
				}
			}
		}
	}
}

func TestRepeatMatchesSomePower(t *testing.T) {
	// p{m,n} accepts x iff p^k accepts x for some k in [m,n]
	pats := []string{"a", "ab", "a|b"}
	inputs := wordsOver("ab", 4)
	for _, p := range pats {
		for m := 0; m <= 3; m++ {
			for n := m; n <= 3; n++ {
				re := MustCompile("(" + p + "){" + string(rune('0'+m)) + "," + string(rune('0'+n)) + "}")
				for _, in := range inputs {
					want := false
					for k := m; k <= n && !want; k++ {
						power := strings.Repeat("("+p+")", k)
						if k == 0 {
							want = in == ""
						} else {
							want = MustCompile(power).Match(in)
						}
					}
					if got := re.Match(in); got != want {
						t.Fatalf("(%s){%d,%d} on %q: want %v got %v", p, m, n, in, want, got)
					}
				}
			}
		}
	}
}

func TestWildcard(t *testing.T) {
	re := MustCompile("a.c")
	acc(t, re, "abc", true)
	acc(t, re, "axc", true)
	acc(t, re, "a.c", true)
	acc(t, re, "ac", false)
	acc(t, re, "abbc", false)
}

func TestMatchFacade(t *testing.T) {
	ok, err := Match("a*", "")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Match("ab|c", "zz")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMatchPropagatesSyntaxError(t *testing.T) {
	_, err := Match("(a|b", "anything")
	require.Error(t, err)
	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, 0, serr.Pos)
}

func TestMustCompilePanics(t *testing.T) {
	require.Panics(t, func() { MustCompile("a{2,1}") })
}

func BenchmarkMillionAs(b *testing.B) {
	re := MustCompile("a*")
	txt := strings.Repeat("a", 1_000_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = re.Match(txt)
	}
}
