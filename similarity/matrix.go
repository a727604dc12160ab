package similarity

import "fmt"

// Pair is the similarity between the vectors at positions I and J (I < J).
type Pair struct {
	I, J  int
	Score float64
}

// Matrix returns the N×N cosine similarity matrix of vectors.
// The matrix is symmetric and its diagonal is 1.
func Matrix(vectors [][]float32) ([][]float64, error) {
	if err := checkAll(vectors); err != nil {
		return nil, err
	}

	m := make([][]float64, len(vectors))
	for i := range m {
		m[i] = make([]float64, len(vectors))
	}
	for i := range vectors {
		m[i][i] = 1
		for j := i + 1; j < len(vectors); j++ {
			s, err := Cosine(vectors[i], vectors[j])
			if err != nil {
				return nil, fmt.Errorf("vectors %d and %d: %w", i, j, err)
			}
			m[i][j] = s
			m[j][i] = s
		}
	}
	return m, nil
}

// Pairs returns the similarity of every unordered pair of vectors, ordered by
// I then J.
func Pairs(vectors [][]float32) ([]Pair, error) {
	if err := checkAll(vectors); err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, len(vectors)*(len(vectors)-1)/2)
	for i := range vectors {
		for j := i + 1; j < len(vectors); j++ {
			s, err := Cosine(vectors[i], vectors[j])
			if err != nil {
				return nil, fmt.Errorf("vectors %d and %d: %w", i, j, err)
			}
			pairs = append(pairs, Pair{I: i, J: j, Score: s})
		}
	}
	return pairs, nil
}

// checkAll validates that vectors share one non-zero dimensionality and
// that none is degenerate.
func checkAll(vectors [][]float32) error {
	if len(vectors) == 0 {
		return nil
	}
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) == 0 || len(v) != dim {
			return fmt.Errorf("%w: vector %d has %d dimensions, expected %d",
				ErrDimensionMismatch, i, len(v), dim)
		}
		if norm(v) == 0 {
			return fmt.Errorf("%w: vector %d", ErrDegenerateVector, i)
		}
	}
	return nil
}
