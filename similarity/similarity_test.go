package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1.0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0.0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"scaled", []float32{1, 1}, []float32{3, 3}, 1.0},
		{"diagonal", []float32{1, 0}, []float32{0.7, 0.7}, math.Sqrt2 / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cosine(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestCosine_Errors(t *testing.T) {
	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := Cosine([]float32{1, 0}, []float32{1, 0, 0})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("empty vectors", func(t *testing.T) {
		_, err := Cosine([]float32{}, []float32{})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("zero vector", func(t *testing.T) {
		_, err := Cosine([]float32{0, 0}, []float32{1, 0})
		assert.ErrorIs(t, err, ErrDegenerateVector)

		_, err = Cosine([]float32{1, 0}, []float32{0, 0})
		assert.ErrorIs(t, err, ErrDegenerateVector)
	})
}

func TestCosine_Symmetric(t *testing.T) {
	vectors := [][]float32{
		{0.1, 0.2, 0.3},
		{-0.5, 0.25, 0.9},
		{3, -1, 2},
		{0.001, 0.002, -0.7},
	}
	for i := range vectors {
		for j := range vectors {
			ab, err := Cosine(vectors[i], vectors[j])
			require.NoError(t, err)
			ba, err := Cosine(vectors[j], vectors[i])
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "sim(%d,%d) != sim(%d,%d)", i, j, j, i)
		}
	}
}

func TestRank(t *testing.T) {
	query := []float32{1, 0}
	candidates := []Candidate{
		{ID: "x", Vector: []float32{1, 0}},
		{ID: "y", Vector: []float32{0, 1}},
		{ID: "z", Vector: []float32{0.7, 0.7}},
	}

	ranked, err := Rank(query, candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "x", ranked[0].ID)
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-9)
	assert.Equal(t, "z", ranked[1].ID)
	assert.InDelta(t, 0.7071, ranked[1].Score, 1e-4)
	assert.Equal(t, "y", ranked[2].ID)
	assert.InDelta(t, 0.0, ranked[2].Score, 1e-9)
}

func TestRank_UnitVectorScoresOne(t *testing.T) {
	units := [][]float32{
		{1, 0, 0},
		{0, 0, 1},
		{0.6, 0.8},
		Normalize([]float32{3, -4, 12}),
	}
	for _, u := range units {
		ranked, err := Rank(u, []Candidate{{ID: "self", Vector: u}})
		require.NoError(t, err)
		require.Len(t, ranked, 1)
		assert.Equal(t, "self", ranked[0].ID)
		assert.InDelta(t, 1.0, ranked[0].Score, 1e-9)
	}
}

func TestRank_StableTies(t *testing.T) {
	query := []float32{1, 0}
	candidates := []Candidate{
		{ID: "a", Vector: []float32{0, 1}},
		{ID: "b", Vector: []float32{2, 0}},
		{ID: "c", Vector: []float32{0, 3}},
		{ID: "d", Vector: []float32{1, 0}},
		{ID: "e", Vector: []float32{0, -0.5}},
	}

	ranked, err := Rank(query, candidates)
	require.NoError(t, err)

	ids := make([]string, len(ranked))
	for i, r := range ranked {
		ids[i] = r.ID
	}
	// b and d tie at 1.0; a, c and e tie at 0.0
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, ids)

	// Permuting tied candidates permutes the output the same way.
	permuted := []Candidate{candidates[4], candidates[3], candidates[2], candidates[1], candidates[0]}
	ranked, err = Rank(query, permuted)
	require.NoError(t, err)
	for i, r := range ranked {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"d", "b", "e", "c", "a"}, ids)
}

func TestRank_Errors(t *testing.T) {
	t.Run("candidate dimension mismatch", func(t *testing.T) {
		_, err := Rank([]float32{1, 0}, []Candidate{
			{ID: "ok", Vector: []float32{1, 0}},
			{ID: "bad", Vector: []float32{1, 0, 0}},
		})
		require.ErrorIs(t, err, ErrDimensionMismatch)
		assert.Contains(t, err.Error(), "bad")
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := Rank(nil, []Candidate{{ID: "a", Vector: []float32{1}}})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("zero query", func(t *testing.T) {
		_, err := Rank([]float32{0, 0}, []Candidate{{ID: "a", Vector: []float32{1, 0}}})
		assert.ErrorIs(t, err, ErrDegenerateVector)
	})

	t.Run("zero candidate", func(t *testing.T) {
		_, err := Rank([]float32{1, 0}, []Candidate{{ID: "zero", Vector: []float32{0, 0}}})
		require.ErrorIs(t, err, ErrDegenerateVector)
		assert.Contains(t, err.Error(), "zero")
	})
}

func TestRank_NoCandidates(t *testing.T) {
	ranked, err := Rank([]float32{1, 0}, nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	candidates := []Candidate{
		{ID: "low", Vector: []float32{0, 1}},
		{ID: "high", Vector: []float32{1, 0}},
	}
	_, err := Rank([]float32{1, 0}, candidates)
	require.NoError(t, err)
	assert.Equal(t, "low", candidates[0].ID)
	assert.Equal(t, []float32{0, 1}, candidates[0].Vector)
}

func TestMatrix(t *testing.T) {
	vectors := [][]float32{
		{1, 0},
		{0, 1},
		{1, 1},
	}

	m, err := Matrix(vectors)
	require.NoError(t, err)
	require.Len(t, m, 3)

	for i := range m {
		assert.Equal(t, 1.0, m[i][i])
		for j := range m {
			assert.Equal(t, m[i][j], m[j][i])
		}
	}
	assert.InDelta(t, 0.0, m[0][1], 1e-9)
	assert.InDelta(t, math.Sqrt2/2, m[0][2], 1e-6)
}

func TestMatrix_Errors(t *testing.T) {
	_, err := Matrix([][]float32{{1, 0}, {1, 0, 0}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Matrix([][]float32{{1, 0}, {0, 0}})
	assert.ErrorIs(t, err, ErrDegenerateVector)

	m, err := Matrix(nil)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestPairs(t *testing.T) {
	vectors := [][]float32{
		{1, 0},
		{0, 1},
		{1, 0},
		{-1, 0},
	}

	pairs, err := Pairs(vectors)
	require.NoError(t, err)
	require.Len(t, pairs, 6)

	assert.Equal(t, Pair{I: 0, J: 1, Score: 0}, pairs[0])
	assert.Equal(t, 0, pairs[1].I)
	assert.Equal(t, 2, pairs[1].J)
	assert.InDelta(t, 1.0, pairs[1].Score, 1e-9)
	assert.Equal(t, 2, pairs[5].I)
	assert.Equal(t, 3, pairs[5].J)
	assert.InDelta(t, -1.0, pairs[5].Score, 1e-9)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []float32
		want []float32
	}{
		{"already unit", []float32{1, 0}, []float32{1, 0}},
		{"3-4-5", []float32{3, 4}, []float32{0.6, 0.8}},
		{"zero vector", []float32{0, 0, 0}, []float32{0, 0, 0}},
		{"empty", []float32{}, []float32{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-6)
			}
		})
	}

	t.Run("returns a copy", func(t *testing.T) {
		in := []float32{3, 4}
		_ = Normalize(in)
		assert.Equal(t, []float32{3, 4}, in)
	})
}
