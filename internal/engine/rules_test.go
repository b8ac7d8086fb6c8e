package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sligocki/bbc/internal/tape"
)

// stepOnce parses a configuration, applies exactly one rule, and returns the
// result.
func stepOnce(t *testing.T, in string) tape.Configuration {
	t.Helper()
	conf, err := tape.ParseConfiguration(in)
	require.NoError(t, err, "parse %q", in)
	reason := StepMany(&conf, nil, nil, StepConfig{StepLimit: conf.Steps + 1})
	require.Equal(t, StopBudgetReached, reason, "stepping %q", in)
	return conf
}

func TestRuleRewrites(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"boundary left", "< 3x", "1: 1 > DP"},
		{"boundary right run", "x >", "1: < 3xP"},
		{"boundary right delim", "D >", "1: < x"},

		{"delim double counter", "> D33", "1: P0 >"},
		{"delim counter", "> D3", "1: xP >"},

		{"pass run left", "2 x^4 <", "1: 2 < x^4"},
		{"pass counter3 left", "3 <", "1: < 3"},
		{"counter 0 increments", "0 <", "1: 1x >"},
		{"counter 1 increments", "1 <", "1: 2 >"},
		{"counter 2 increments", "2 <", "1: 3x >"},

		{"run meets counter3", "x^5 > 3", "1: x^4 0 >"},

		{"chain x33 start", "0 > 3", "1: L(2332) >"},
		{"chain 2332", "L(2332) <", "1: L(2301) x >"},
		{"chain 2301", "L(2301) <", "1: L(252) >"},
		{"chain 252", "L(252) <", "1: PDx >"},

		{"pivot delim counter3 run", "> PD3x", "1: L(2301) D > P"},
		{"pivot delim counter3 long run", "> PD3 x^2", "1: L(2301) D > Px"},
		{"pivot double delim run", "> PDD x^3", "1: 21D > x^2"},

		{"chain 13 start", "2 > 3", "1: L(432) >"},
		{"chain 432", "L(432) <", "1: L(401) x >"},
		{"chain 401", "L(401) <", "1: L(62) >"},
		{"chain 62", "L(62) <", "1: L(31) x >"},
		{"chain 31", "x L(31) <", "1: P1D >"},

		{"pivot run fold", "> P x^5", "1: x^5 > P"},
		{"pivot delim pivot", "> PDP", "1: 1D >"},
		{"pivot delim run", "> PD x^4", "1: 1D > P x^3"},
		{"pivot counter3 run", "> P3x", "1: < PDP"},
		{"pivot at edge", "> P", "1: < P"},
		{"pivot pair", "> PP", "1: x >"},
		{"pass delim right", "> D", "1: D >"},
		{"pass run right", "> x^7", "1: x^7 >"},
		{"pass run right merges", "x^2 > x^7", "1: x^9 >"},

		{"pass block right", "> b^2", "1: b^2 >"},
		{"pass block right merges", "b^3 > b^2", "1: b^5 >"},
		{"pass block left", "b^2 <", "1: < b^2"},
		{"block expansion", "c^2 <", "1: c^1 1D x^72141 1D x^3075 1D x^1537 1D x^299 1D x^30825 <"},
		{"block expansion exhausts", "c^1 <", "1: 1D x^72141 1D x^3075 1D x^1537 1D x^299 1D x^30825 <"},
		{"pivot before block", "> P b^3", "1: c^3 >"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stepOnce(t, tc.in)
			want, err := tape.ParseConfiguration(tc.want)
			require.NoError(t, err, "parse %q", tc.want)
			require.True(t, got.Equal(want), "got %v, want %v", got, want)
		})
	}
}

func TestBlockCompaction(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"motif a folds at threshold",
			"2 x^7640 D x^10345 > 3",
			"1: a^1 0 >",
		},
		{
			"motif a merges into existing block",
			"a^1 2 x^7640 D x^10345 > 3",
			"1: a^2 0 >",
		},
		{
			"below threshold stays literal",
			"2 x^7640 D x^10344 > 3",
			"1: 2 x^7640 D x^10343 0 >",
		},
		{
			"motif b folds at threshold",
			"D x^72142 D x^3076 D x^1538 D x^300 D > x^30826",
			"1: b^1 >",
		},
		{
			"motif b merges into existing block",
			"b^1 D x^72142 D x^3076 D x^1538 D x^300 D > x^30826",
			"1: b^2 >",
		},
		{
			"threshold without motif stays literal",
			"P x^72142 D x^3076 D x^1538 D x^300 D > x^30826",
			"1: P x^72142 D x^3076 D x^1538 D x^300 D x^30826 >",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stepOnce(t, tc.in)
			want, err := tape.ParseConfiguration(tc.want)
			require.NoError(t, err)
			require.True(t, got.Equal(want), "got %v, want %v", got, want)
		})
	}
}

func TestCatalogOrderCounterThreeBeforeGeneric(t *testing.T) {
	// A counter 3 on the left must pass through, never increment: the
	// pass-through rule sits above the generic increment rule.
	got := stepOnce(t, "3 <")
	require.Empty(t, got.Left)
	require.True(t, got.Right.EndsWith(tape.C(3)))
	require.Equal(t, tape.Left, got.Dir)
}
