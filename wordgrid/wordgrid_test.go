package wordgrid_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvpuzzle/wordgrid"
)

// sampleRows is the 10×10 practice puzzle; XMAS appears 18 times.
var sampleRows = []string{
	"MMMSXXMASM",
	"MSAMXMSMSA",
	"AMXSXMAAMM",
	"MSAMASMSMX",
	"XMASAMXAMM",
	"XXAMMXXAMA",
	"SMSMSASXSS",
	"SAXAMASAAA",
	"MAMMMXMMMM",
	"MXMXAXMASX",
}

//----------------------------------------------------------------------------//
// Construction and CharAt
//----------------------------------------------------------------------------//

// TestParse verifies row splitting, trailing newline and CRLF handling.
func TestParse(t *testing.T) {
	g := wordgrid.Parse("ABC\r\nDEF\r\n")
	require.Equal(t, []string{"ABC", "DEF"}, g.Rows())
	require.Equal(t, 2, g.Height())
	require.Equal(t, "ABC\nDEF", g.String())
}

// TestNew_CopiesRows ensures later edits to the caller's slice do not leak in.
func TestNew_CopiesRows(t *testing.T) {
	rows := []string{"AB", "CD"}
	g := wordgrid.New(rows)
	rows[0] = "ZZ"

	c, ok := g.CharAt(wordgrid.Position{X: 0, Y: 0})
	require.True(t, ok)
	require.Equal(t, byte('A'), c)

	out := g.Rows()
	out[1] = "YY"
	require.Equal(t, []string{"AB", "CD"}, g.Rows())
}

// TestCharAt checks in-bounds reads and every flavour of absence on a
// ragged 3-row grid.
func TestCharAt(t *testing.T) {
	g := wordgrid.New([]string{"ABC", "D", "EF"})

	present := []struct {
		pos  wordgrid.Position
		want byte
	}{
		{wordgrid.Position{X: 0, Y: 0}, 'A'},
		{wordgrid.Position{X: 2, Y: 0}, 'C'},
		{wordgrid.Position{X: 0, Y: 1}, 'D'},
		{wordgrid.Position{X: 1, Y: 2}, 'F'},
	}
	for _, tc := range present {
		c, ok := g.CharAt(tc.pos)
		if assert.True(t, ok, "CharAt(%v) should be present", tc.pos) {
			assert.Equal(t, tc.want, c, "CharAt(%v)", tc.pos)
		}
	}

	absent := []wordgrid.Position{
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 3, Y: 0},
		{X: 1, Y: 1}, // past the end of the short row
		{X: 0, Y: 3},
		{X: -5, Y: -5},
	}
	for _, p := range absent {
		c, ok := g.CharAt(p)
		assert.False(t, ok, "CharAt(%v) should be absent", p)
		assert.Zero(t, c)
	}
}

// TestPositionStep checks stepping along each direction.
func TestPositionStep(t *testing.T) {
	p := wordgrid.Position{X: 2, Y: 2}
	require.Equal(t, wordgrid.Position{X: 2, Y: 2}, p.Step(wordgrid.Directions[0], 0))
	require.Equal(t, wordgrid.Position{X: 2, Y: -1}, p.Step(wordgrid.Directions[0], 3))
	require.Equal(t, wordgrid.Position{X: 0, Y: 4}, p.Step(wordgrid.Direction{DX: -1, DY: 1}, 2))
}

// TestDirections asserts the eight unit vectors are distinct and exclude (0,0).
func TestDirections(t *testing.T) {
	seen := make(map[wordgrid.Direction]bool)
	for _, d := range wordgrid.Directions {
		require.NotEqual(t, wordgrid.Direction{}, d)
		require.True(t, d.DX >= -1 && d.DX <= 1 && d.DY >= -1 && d.DY <= 1)
		seen[d] = true
	}
	require.Len(t, seen, 8)
}

//----------------------------------------------------------------------------//
// Matching
//----------------------------------------------------------------------------//

// TestCountAllMatches_Examples covers the documented small grids.
func TestCountAllMatches_Examples(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		word string
		want int
	}{
		{"SingleRowForward", []string{"XMAS"}, "XMAS", 1},
		{"SingleColumnUpward", []string{"S", "A", "M", "X"}, "XMAS", 1},
		{"NotPresent", []string{"ABC", "DEF", "GHI"}, "Z", 0},
		{"TruncatedAtEdge", []string{"XM"}, "XMAS", 0},
		{"Backward", []string{"SAMX"}, "XMAS", 1},
		{"Diagonal", []string{"X...", ".M..", "..A.", "...S"}, "XMAS", 1},
		{"Sample", sampleRows, "XMAS", 18},
		{"EmptyGrid", nil, "XMAS", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := wordgrid.New(tc.rows).CountAllMatches(tc.word)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestCountMatchesFrom_SingleColumn starts from the bottom of a column and
// expects only the northward walk to match.
func TestCountMatchesFrom_SingleColumn(t *testing.T) {
	g := wordgrid.New([]string{"S", "A", "M", "X"})

	n, err := g.CountMatchesFrom(wordgrid.Position{X: 0, Y: 3}, "XMAS")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = g.CountMatchesFrom(wordgrid.Position{X: 0, Y: 0}, "XMAS")
	require.NoError(t, err)
	require.Zero(t, n)
}

// TestCountMatchesFrom_OffGridOrigin never matches and never fails.
func TestCountMatchesFrom_OffGridOrigin(t *testing.T) {
	g := wordgrid.New([]string{"XMAS"})
	n, err := g.CountMatchesFrom(wordgrid.Position{X: -1, Y: 0}, "XMAS")
	require.NoError(t, err)
	require.Zero(t, n)
}

// TestCountMatchesFrom_AllEight uses a one-letter word: every direction
// collects the origin alone, so all eight match.
func TestCountMatchesFrom_AllEight(t *testing.T) {
	g := wordgrid.New([]string{"A"})
	n, err := g.CountMatchesFrom(wordgrid.Position{X: 0, Y: 0}, "A")
	require.NoError(t, err)
	require.Equal(t, 8, n)

	total, err := g.CountAllMatches("A")
	require.NoError(t, err)
	require.Equal(t, 8, total)
}

// TestCountMatchesFrom_Star places XMAS in all eight directions around one X.
func TestCountMatchesFrom_Star(t *testing.T) {
	g := wordgrid.New([]string{
		"S..S..S",
		".A.A.A.",
		"..MMM..",
		"SAMXMAS",
		"..MMM..",
		".A.A.A.",
		"S..S..S",
	})
	n, err := g.CountMatchesFrom(wordgrid.Position{X: 3, Y: 3}, "XMAS")
	require.NoError(t, err)
	require.Equal(t, 8, n)
}

// TestRaggedSkip walks south across an empty row: the gap is skipped, the
// collected string is one short, and nothing matches.
func TestRaggedSkip(t *testing.T) {
	g := wordgrid.New([]string{"X", "", "A", "S"})
	n, err := g.CountMatchesFrom(wordgrid.Position{X: 0, Y: 0}, "XMAS")
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = g.CountMatchesFrom(wordgrid.Position{X: 0, Y: 0}, "XAS")
	require.NoError(t, err)
	require.Zero(t, n, "the southward walk collects only XA")
}

// TestEmptyWord verifies the precondition check on both entry points.
func TestEmptyWord(t *testing.T) {
	g := wordgrid.New(sampleRows)

	_, err := g.CountMatchesFrom(wordgrid.Position{}, "")
	require.ErrorIs(t, err, wordgrid.ErrEmptyWord)

	_, err = g.CountAllMatches("")
	require.ErrorIs(t, err, wordgrid.ErrEmptyWord)
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// PropertySuite checks invariants over randomly generated grids.
type PropertySuite struct {
	suite.Suite
	rng   *rand.Rand
	grids []*wordgrid.Grid
}

func (s *PropertySuite) SetupSuite() {
	s.rng = rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		h := 1 + s.rng.Intn(8)
		rows := make([]string, h)
		for y := range rows {
			w := s.rng.Intn(9) // ragged, possibly empty
			var sb strings.Builder
			for x := 0; x < w; x++ {
				sb.WriteByte("XMAS"[s.rng.Intn(4)])
			}
			rows[y] = sb.String()
		}
		s.grids = append(s.grids, wordgrid.New(rows))
	}
}

// TestBounded asserts every origin yields a count within [0, 8].
func (s *PropertySuite) TestBounded() {
	for _, g := range s.grids {
		for y, row := range g.Rows() {
			for x := -1; x <= len(row); x++ {
				n, err := g.CountMatchesFrom(wordgrid.Position{X: x, Y: y}, "XMAS")
				s.Require().NoError(err)
				s.Require().GreaterOrEqual(n, 0)
				s.Require().LessOrEqual(n, 8)
			}
		}
	}
}

// TestIdempotent calls CountAllMatches twice per grid.
func (s *PropertySuite) TestIdempotent() {
	for _, g := range s.grids {
		a, err := g.CountAllMatches("XMAS")
		s.Require().NoError(err)
		b, err := g.CountAllMatches("XMAS")
		s.Require().NoError(err)
		s.Require().Equal(a, b)
	}
}

// TestOrderIndependent sums per-origin counts in shuffled order and
// compares with CountAllMatches.
func (s *PropertySuite) TestOrderIndependent() {
	for _, g := range s.grids {
		var origins []wordgrid.Position
		for y, row := range g.Rows() {
			for x := 0; x < len(row); x++ {
				if row[x] == 'X' {
					origins = append(origins, wordgrid.Position{X: x, Y: y})
				}
			}
		}
		s.rng.Shuffle(len(origins), func(i, j int) {
			origins[i], origins[j] = origins[j], origins[i]
		})

		sum := 0
		for _, p := range origins {
			n, err := g.CountMatchesFrom(p, "XMAS")
			s.Require().NoError(err)
			sum += n
		}
		total, err := g.CountAllMatches("XMAS")
		s.Require().NoError(err)
		s.Require().Equal(total, sum)
	}
}

// TestWordLongerThanGrid uses a word that cannot fit in any direction.
func (s *PropertySuite) TestWordLongerThanGrid() {
	for _, g := range s.grids {
		total, err := g.CountAllMatches("XMASXMASX")
		s.Require().NoError(err)
		s.Require().Zero(total)
	}
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}
