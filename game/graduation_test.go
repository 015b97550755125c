package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindLines(t *testing.T) {
	t.Run("finding runs in all four directions", func(t *testing.T) {
		directions := map[string][3]Position{
			"horizontal":          {{2, 1}, {2, 2}, {2, 3}},
			"vertical":            {{1, 2}, {2, 2}, {3, 2}},
			"down-right diagonal": {{1, 1}, {2, 2}, {3, 3}},
			"down-left diagonal":  {{1, 4}, {2, 3}, {3, 2}},
		}
		for name, positions := range directions {
			t.Run(name, func(t *testing.T) {
				b := Board{}
				for _, pos := range positions {
					b.Place(pos, Piece{Rank: Kitten, Color: Orange})
				}

				lines := findLines(&b, Orange)

				require.Len(t, lines, 1)
				require.ElementsMatch(t, positions[:], lines[0][:])
			})
		}
	})

	t.Run("mixed-color runs do not count", func(t *testing.T) {
		b := Board{}
		b.Place(Position{2, 1}, Piece{Rank: Kitten, Color: Orange})
		b.Place(Position{2, 2}, Piece{Rank: Kitten, Color: Gray})
		b.Place(Position{2, 3}, Piece{Rank: Kitten, Color: Orange})

		require.Empty(t, findLines(&b, Orange))
		require.Empty(t, findLines(&b, Gray))
	})

	t.Run("scan order is horizontal, vertical, then diagonals, row-major", func(t *testing.T) {
		b := Board{}
		// A vertical run starting higher up and a horizontal run lower down:
		// the horizontal one is still found first.
		for _, pos := range []Position{{0, 5}, {1, 5}, {2, 5}} {
			b.Place(pos, Piece{Rank: Kitten, Color: Orange})
		}
		for _, pos := range []Position{{4, 0}, {4, 1}, {4, 2}} {
			b.Place(pos, Piece{Rank: Kitten, Color: Orange})
		}

		lines := findLines(&b, Orange)

		require.Len(t, lines, 2)
		require.Equal(t, line{{4, 0}, {4, 1}, {4, 2}}, lines[0],
			"Horizontal runs should be scanned before vertical runs")
	})
}

func TestGraduateLine(t *testing.T) {
	t.Run("graduating two cats and a kitten", func(t *testing.T) {
		b := Board{}
		player := NewPlayer(Orange)
		positions := line{{2, 1}, {2, 2}, {2, 3}}
		b.Place(positions[0], Piece{Rank: Cat, Color: Orange})
		b.Place(positions[1], Piece{Rank: Kitten, Color: Orange})
		b.Place(positions[2], Piece{Rank: Cat, Color: Orange})

		graduateLine(&b, &player, positions)

		for _, pos := range positions {
			require.True(t, b.Empty(pos), "Graduated run should leave the board")
		}
		require.Equal(t, 2+GraduationRelease, player.Pool[Cat],
			"Two cats should return to the pool on top of the released reserve")
		require.Equal(t, InitialCats-GraduationRelease, player.Reserve[Cat],
			"Three reserve cats should unlock")
		require.Equal(t, InitialKittens, player.Pool[Kitten],
			"The graduated kitten should not come back")
	})

	t.Run("short reserve releases nothing", func(t *testing.T) {
		b := Board{}
		player := NewPlayer(Orange)
		player.Reserve[Cat] = 2
		positions := line{{0, 0}, {0, 1}, {0, 2}}
		for _, pos := range positions {
			b.Place(pos, Piece{Rank: Kitten, Color: Orange})
		}

		graduateLine(&b, &player, positions)

		require.Equal(t, 2, player.Reserve[Cat], "No partial graduation")
		require.Equal(t, InitialKittens, player.Pool[Kitten],
			"All three kittens retire for good")
		require.Equal(t, 0, player.Pool[Cat])
	})
}

func TestPlayerGraduate(t *testing.T) {
	t.Run("releasing exactly three from reserve", func(t *testing.T) {
		player := NewPlayer(Gray)

		player.Graduate()

		require.Equal(t, GraduationRelease, player.Pool[Cat])
		require.Equal(t, InitialCats-GraduationRelease, player.Reserve[Cat])
	})

	t.Run("reserve below three is untouched", func(t *testing.T) {
		player := NewPlayer(Gray)
		player.Reserve[Cat] = 2

		player.Graduate()

		require.Equal(t, 0, player.Pool[Cat])
		require.Equal(t, 2, player.Reserve[Cat])
	})
}
