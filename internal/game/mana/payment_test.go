package mana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opts(sets ...Set) []Option {
	out := make([]Option, len(sets))
	for i, s := range sets {
		out[i] = Option{Colors: s}
	}
	return out
}

func TestPlan_ExactColoredPayment(t *testing.T) {
	cost := Cost{Blue: 1, Black: 1}
	plan, ok := Plan(cost, opts(Set{Blue}, Set{Black}))

	require.True(t, ok)
	require.Len(t, plan, 2)
	assert.Equal(t, Blue, plan[0].Color)
	assert.Equal(t, Black, plan[1].Color)
}

func TestPlan_FailsWhenShortOnLands(t *testing.T) {
	cost := Cost{Generic: 2, Black: 1}
	_, ok := Plan(cost, opts(Set{Black}, Set{Green}))
	assert.False(t, ok)
}

func TestPlan_ScarcityBeatsGreedyOrder(t *testing.T) {
	// {1}{U} with a dual as the only blue source. Assigning the dual to
	// the generic slot first would make the cost unpayable; scarcity
	// ordering pays blue from the dual and generic from the swamp.
	cost := Cost{Generic: 1, Blue: 1}
	plan, ok := Plan(cost, opts(Set{Blue, Black}, Set{Black}))

	require.True(t, ok)
	require.Len(t, plan, 2)
	assert.Equal(t, Assignment{Index: 0, Color: Blue}, plan[0])
	assert.Equal(t, Assignment{Index: 1, Color: Black}, plan[1])
}

func TestPlan_LeastFlexibleFirst(t *testing.T) {
	// Both lands can pay {U}; the mono-colored one must be taken so the
	// tri-land can still cover the green pip.
	cost := Cost{Blue: 1, Green: 1}
	plan, ok := Plan(cost, opts(Set{Blue, Black, Green}, Set{Blue}))

	require.True(t, ok)
	byIndex := map[int]Color{}
	for _, a := range plan {
		byIndex[a.Index] = a.Color
	}
	assert.Equal(t, Green, byIndex[0])
	assert.Equal(t, Blue, byIndex[1])
}

func TestPlan_RarestColorPaidFirst(t *testing.T) {
	// Green has one candidate, blue has two. Green must claim the
	// flexible land before blue consumes it.
	cost := Cost{Blue: 1, Green: 1}
	plan, ok := Plan(cost, opts(Set{Blue, Green}, Set{Blue}))

	require.True(t, ok)
	byIndex := map[int]Color{}
	for _, a := range plan {
		byIndex[a.Index] = a.Color
	}
	assert.Equal(t, Green, byIndex[0])
	assert.Equal(t, Blue, byIndex[1])
}

func TestPlan_AssignmentCountEqualsCostValue(t *testing.T) {
	cost := Cost{Generic: 2, Blue: 1, Black: 2}
	lands := opts(Set{Blue}, Set{Black}, Set{Black}, Set{Green}, Set{Green}, Set{Blue, Black})
	plan, ok := Plan(cost, lands)

	require.True(t, ok)
	assert.Len(t, plan, cost.Value())

	seen := map[int]bool{}
	for _, a := range plan {
		assert.False(t, seen[a.Index], "land %d assigned twice", a.Index)
		seen[a.Index] = true
	}
}

func TestPlan_EmptyColorSetCannotPayGeneric(t *testing.T) {
	cost := Cost{Generic: 1}
	_, ok := Plan(cost, opts(Set{}))
	assert.False(t, ok)

	plan, ok := Plan(cost, opts(Set{}, Set{Green}))
	require.True(t, ok)
	require.Len(t, plan, 1)
	assert.Equal(t, 1, plan[0].Index)
}

func TestPlan_ColorlessPip(t *testing.T) {
	cost := Cost{Colorless: 1}
	_, ok := Plan(cost, opts(Set{Blue}, Set{Green}))
	assert.False(t, ok, "colorless pip needs a colorless producer")

	plan, ok := Plan(cost, opts(Set{Blue}, Set{Colorless}))
	require.True(t, ok)
	assert.Equal(t, Assignment{Index: 1, Color: Colorless}, plan[0])
}

func TestPlan_ZeroCost(t *testing.T) {
	plan, ok := Plan(Cost{}, nil)
	assert.True(t, ok)
	assert.Empty(t, plan)
}
