package game

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomFleet_RosterAndInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		b, err := RandomFleet(rng)
		require.NoError(t, err)
		require.True(t, b.Complete())

		var sizes []int
		total := 0
		for _, ship := range b.Ships() {
			sizes = append(sizes, ship.Size())
			total += ship.Size()
		}
		sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

		assert.Equal(t, 20, total)
		assert.Equal(t, FleetSizes, sizes)
		assertNoTouching(t, b)
	}
}

func assertNoTouching(t *testing.T, b *Board) {
	t.Helper()
	ships := b.Ships()
	for i := range ships {
		for j := i + 1; j < len(ships); j++ {
			for _, c1 := range ships[i].Cells() {
				for _, c2 := range ships[j].Cells() {
					require.Greater(t, chebyshev(c1, c2), 1,
						"ships %d and %d touch at %s/%s", ships[i].ID(), ships[j].ID(), c1, c2)
				}
			}
		}
	}
}

func chebyshev(a, b Coord) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	if dc > dr {
		return dc
	}
	return dr
}

func TestRandomFleet_CellsInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b, err := RandomFleet(rng)
	require.NoError(t, err)

	for _, ship := range b.Ships() {
		for _, c := range ship.Cells() {
			assert.True(t, c.inBounds(), "cell %v out of bounds", c)
		}
	}
}

func TestRandomFleet_VariesBetweenRuns(t *testing.T) {
	b1, err := RandomFleet(rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	b2, err := RandomFleet(rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	assert.NotEqual(t, b1.Records(), b2.Records())
}
