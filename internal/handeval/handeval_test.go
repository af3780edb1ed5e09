package handeval

import (
	"testing"

	"github.com/lox/podds/internal/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHand(t *testing.T, tokens ...string) []int {
	t.Helper()
	cs := make([]int, len(tokens))
	for i, tok := range tokens {
		c, err := cards.Parse(tok)
		require.NoError(t, err)
		cs[i] = c
	}
	return cs
}

func eval5Of(t *testing.T, tokens ...string) int64 {
	t.Helper()
	require.Len(t, tokens, 5)
	cs := parseHand(t, tokens...)
	SortDescending(cs)
	return Eval5([5]int{cs[0], cs[1], cs[2], cs[3], cs[4]})
}

func eval7Of(t *testing.T, tokens ...string) int64 {
	t.Helper()
	require.Len(t, tokens, 7)
	cs := parseHand(t, tokens...)
	SortDescending(cs)
	return Eval7([7]int{cs[0], cs[1], cs[2], cs[3], cs[4], cs[5], cs[6]})
}

func TestRoyalFlushClassifiesAsStraightFlush(t *testing.T) {
	score := eval5Of(t, "As", "Ks", "Qs", "Js", "Ts")
	assert.Equal(t, StraightFlush, Category(score))
}

func TestAceLowStraightFlushWeakerThanSixHigh(t *testing.T) {
	aceLow := eval5Of(t, "As", "5s", "4s", "3s", "2s")
	sixHigh := eval5Of(t, "6s", "5s", "4s", "3s", "2s")
	assert.Less(t, aceLow, sixHigh)
	assert.Equal(t, StraightFlush, Category(aceLow))
	assert.Equal(t, StraightFlush, Category(sixHigh))
}

func TestFourOfAKindBeatsFlush(t *testing.T) {
	quads := eval5Of(t, "Ah", "Ad", "Ac", "As", "2h")
	flush := eval5Of(t, "Ah", "Jh", "9h", "7h", "5h")
	assert.Greater(t, quads, flush)
}

func TestTwoPairKickerTieBreak(t *testing.T) {
	lower := eval5Of(t, "As", "Ah", "Ks", "Kh", "2c")
	higher := eval5Of(t, "As", "Ah", "Ks", "Kh", "3c")
	equal := eval5Of(t, "Ad", "Ac", "Kd", "Kc", "Qc")
	equalAgain := eval5Of(t, "As", "Ah", "Ks", "Kh", "Qc")

	assert.Less(t, lower, higher)
	assert.Equal(t, equal, equalAgain)
}

func TestFullHouseBeatsFlushAndStraight(t *testing.T) {
	full := eval5Of(t, "Kh", "Kd", "Kc", "2h", "2d")
	flush := eval5Of(t, "Ah", "Jh", "9h", "7h", "5h")
	straight := eval5Of(t, "9h", "8d", "7c", "6h", "5s")
	assert.Greater(t, full, flush)
	assert.Greater(t, full, straight)
}

func TestCategoryClassifiesEveryHandType(t *testing.T) {
	cases := []struct {
		name     string
		tokens   []string
		expected int
	}{
		{"high card", []string{"Ah", "Jd", "8c", "5h", "2s"}, HighCard},
		{"pair", []string{"Ah", "Ad", "8c", "5h", "2s"}, Pair},
		{"two pair", []string{"Ah", "Ad", "8c", "8h", "2s"}, TwoPairs},
		{"trips", []string{"Ah", "Ad", "Ac", "5h", "2s"}, ThreeOfAKind},
		{"straight", []string{"9h", "8d", "7c", "6h", "5s"}, Straight},
		{"flush", []string{"Ah", "Jh", "9h", "7h", "5h"}, Flush},
		{"full house", []string{"Kh", "Kd", "Kc", "2h", "2d"}, FullHouse},
		{"quads", []string{"Ah", "Ad", "Ac", "As", "2h"}, FourOfAKind},
		{"straight flush", []string{"9s", "8s", "7s", "6s", "5s"}, StraightFlush},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := eval5Of(t, tc.tokens...)
			assert.Equal(t, tc.expected, Category(score))
		})
	}
}

func TestEval7IsMaxOfCombinations(t *testing.T) {
	cs := parseHand(t, "Ah", "Kh", "Qh", "Jh", "Th", "2c", "3d")
	SortDescending(cs)
	var hand [7]int
	copy(hand[:], cs)

	var want int64
	for _, combo := range combinations {
		five := [5]int{hand[combo[0]], hand[combo[1]], hand[combo[2]], hand[combo[3]], hand[combo[4]]}
		if v := Eval5(five); v > want {
			want = v
		}
	}

	assert.Equal(t, want, Eval7(hand))
}

func TestCompare7AgreesWithEval7(t *testing.T) {
	heroTokens := []string{"Ah", "Ad", "Ks", "Kh", "2c", "3d", "4s"}
	oppTokens := []string{"Qh", "Qd", "Js", "Jh", "2d", "3d", "4s"}

	hero := parseHand(t, heroTokens...)
	SortDescending(hero)
	var heroHand [7]int
	copy(heroHand[:], hero)

	opp := parseHand(t, oppTokens...)
	SortDescending(opp)
	var oppHand [7]int
	copy(oppHand[:], opp)

	target := Eval7(heroHand)
	oppScore := Eval7(oppHand)

	switch {
	case oppScore > target:
		assert.Equal(t, Loss, Compare7(oppHand, target))
	case oppScore == target:
		assert.Equal(t, Draw, Compare7(oppHand, target))
	default:
		assert.Equal(t, Win, Compare7(oppHand, target))
	}
}

func TestCompare7SelfIsDraw(t *testing.T) {
	cs := parseHand(t, "Ah", "Ad", "Ks", "Kh", "2c", "3d", "4s")
	SortDescending(cs)
	var hand [7]int
	copy(hand[:], cs)
	target := Eval7(hand)
	assert.Equal(t, Draw, Compare7(hand, target))
}

func TestCategoryNameCoversAll(t *testing.T) {
	names := map[int]string{
		HighCard:      "high-card",
		Pair:          "pair",
		TwoPairs:      "two-pairs",
		ThreeOfAKind:  "three-of-a-kind",
		Straight:      "straight",
		Flush:         "flush",
		FullHouse:     "full-house",
		FourOfAKind:   "four-of-a-kind",
		StraightFlush: "straight-flush",
	}
	for cat, name := range names {
		assert.Equal(t, name, CategoryName(cat))
	}
}
