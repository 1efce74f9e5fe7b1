package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSpaces(t *testing.T) {
	spaces := LoadSpaces()
	require.Len(t, spaces, 40)

	for i, space := range spaces {
		assert.Equal(t, i, space.Position, "spaces are in position order")
		assert.NotEmpty(t, space.Name)
	}

	assert.Equal(t, "go", spaces[0].Type)
	assert.Equal(t, "jail", spaces[10].Type)
	assert.Equal(t, "free", spaces[20].Type)
	assert.Equal(t, "gotojail", spaces[30].Type)
}

func TestTaxSpacesCarryNegativeActions(t *testing.T) {
	spaces := LoadSpaces()
	assert.Equal(t, "-200", spaces[4].Action)
	assert.Equal(t, "-100", spaces[38].Action)
	assert.False(t, spaces[4].Purchasable())
}

func TestGetByPos(t *testing.T) {
	spaces := LoadSpaces()

	space, err := GetByPos(39, &spaces)
	require.NoError(t, err)
	assert.Equal(t, "Boardwalk", space.Name)
	assert.Equal(t, 400, space.Price)

	_, err = GetByPos(40, &spaces)
	assert.Error(t, err)
}

func TestGroupPositions(t *testing.T) {
	spaces := LoadSpaces()
	groups := GroupPositions(&spaces)

	assert.Equal(t, []int{1, 3}, groups["brown"])
	assert.Equal(t, []int{5, 15, 25, 35}, groups["railroad"])
	assert.Equal(t, []int{12, 28}, groups["utility"])
	assert.Equal(t, []int{37, 39}, groups["darkblue"])

	for group, positions := range groups {
		for _, pos := range positions {
			space, err := GetByPos(pos, &spaces)
			require.NoError(t, err)
			assert.True(t, space.Purchasable(), "group %s position %d", group, pos)
		}
	}
}
