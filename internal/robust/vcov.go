// Package robust computes cluster-robust covariance matrices for regression
// coefficients, for standard errors that stay valid when observations within
// a cluster (a school, a district) are correlated.
package robust

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// DegenerateClusterErr indicates too few clusters or more parameters
	// than observations.
	DegenerateClusterErr = errors.New("degenerate clusters")
	// ShapeMismatchErr indicates inconsistent input dimensions.
	ShapeMismatchErr = errors.New("shape mismatch")
)

// Bread converts a naive coefficient covariance matrix into the bread matrix
// of the sandwich estimator, i.e. scales it by the number of observations.
func Bread(naive mat.Matrix, nObs int) *mat.Dense {
	r, c := naive.Dims()
	bread := mat.NewDense(r, c, nil)
	bread.Scale(float64(nObs), naive)
	return bread
}

// VCov computes the degrees-of-freedom-adjusted cluster-robust covariance
// matrix dfc/N * bread*meat*bread with dfc = (M/(M-1)) * ((N-1)/(N-K)).
//
// scores holds the per-observation estimating-function contributions, one
// row per observation and one column per estimated parameter. clusters maps
// each observation to its cluster ID. bread follows the sandwich convention,
// N times the naive covariance; use Bread to convert a naive covariance
// matrix. The meat is U^T U / N where U stacks the per-cluster column sums
// of scores.
func VCov(scores mat.Matrix, clusters []string, bread mat.Matrix, rank, nObs int) (*mat.Dense, error) {
	rows, cols := scores.Dims()
	if rows != nObs || len(clusters) != nObs {
		return nil, fmt.Errorf("%w: %d score rows, %d cluster IDs, %d observations", ShapeMismatchErr, rows, len(clusters), nObs)
	}
	if cols != rank {
		return nil, fmt.Errorf("%w: %d score columns vs rank %d", ShapeMismatchErr, cols, rank)
	}
	if br, bc := bread.Dims(); br != rank || bc != rank {
		return nil, fmt.Errorf("%w: %dx%d bread matrix vs rank %d", ShapeMismatchErr, br, bc, rank)
	}

	index := make(map[string]int)
	for _, id := range clusters {
		if _, ok := index[id]; !ok {
			index[id] = len(index)
		}
	}
	m := len(index)
	if m <= 1 {
		return nil, fmt.Errorf("%w: %d clusters", DegenerateClusterErr, m)
	}
	if nObs <= rank {
		return nil, fmt.Errorf("%w: %d observations for %d parameters", DegenerateClusterErr, nObs, rank)
	}

	u := mat.NewDense(m, rank, nil)
	for i := 0; i < nObs; i++ {
		row := index[clusters[i]]
		for j := 0; j < rank; j++ {
			u.Set(row, j, u.At(row, j)+scores.At(i, j))
		}
	}

	n := float64(nObs)
	meat := mat.NewDense(rank, rank, nil)
	meat.Mul(u.T(), u)
	meat.Scale(1/n, meat)

	dfc := (float64(m) / float64(m-1)) * ((n - 1) / (n - float64(rank)))

	half := mat.NewDense(rank, rank, nil)
	half.Mul(bread, meat)
	vcov := mat.NewDense(rank, rank, nil)
	vcov.Mul(half, bread)
	vcov.Scale(dfc/n, vcov)
	return vcov, nil
}
