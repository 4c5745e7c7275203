package usecase

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tranorrepository/h36m-fetch/internal/domain/entity"
)

// FitIntrinsics recovers the pinhole scale/offset approximation of a camera
// from its paired 2D/3D joint observations. All joints of all samples are
// flattened into one unweighted regression set and two independent ordinary
// least squares fits are solved:
//
//	u*z ≈ alpha_x*x + x_0*z
//	v*z ≈ alpha_y*y + y_0*z
//
// Rank-deficient systems yield the least-norm solution instead of failing.
func FitIntrinsics(poses2D, poses3D *entity.PoseSequence) (entity.Intrinsics, error) {
	n := poses3D.Samples * poses3D.Joints

	horiz := mat.NewDense(n, 2, nil)
	horizRHS := mat.NewVecDense(n, nil)
	vert := mat.NewDense(n, 2, nil)
	vertRHS := mat.NewVecDense(n, nil)

	for s := 0; s < poses3D.Samples; s++ {
		for j := 0; j < poses3D.Joints; j++ {
			row := s*poses3D.Joints + j
			x := poses3D.At(s, j, 0)
			y := poses3D.At(s, j, 1)
			z := poses3D.At(s, j, 2)
			u := poses2D.At(s, j, 0)
			v := poses2D.At(s, j, 1)

			horiz.SetRow(row, []float64{x, z})
			horizRHS.SetVec(row, u*z)
			vert.SetRow(row, []float64{y, z})
			vertRHS.SetVec(row, v*z)
		}
	}

	h, err := solveLeastNorm(horiz, horizRHS)
	if err != nil {
		return entity.Intrinsics{}, err
	}
	v, err := solveLeastNorm(vert, vertRHS)
	if err != nil {
		return entity.Intrinsics{}, err
	}

	return entity.Intrinsics{h[0], h[1], v[0], v[1]}, nil
}

// solveLeastNorm computes the minimum-norm least squares solution of a*x = b
// via a thin SVD, truncating singular values below the conventional relative
// tolerance so singular systems solve instead of erroring.
func solveLeastNorm(a *mat.Dense, b *mat.VecDense) ([]float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, errors.New("svd factorization failed")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)

	rows, cols := a.Dims()
	eps := math.Nextafter(1, 2) - 1
	tol := 0.0
	if len(values) > 0 {
		tol = float64(max(rows, cols)) * eps * values[0]
	}

	x := make([]float64, cols)
	for k, sv := range values {
		if sv <= tol {
			continue
		}
		dot := 0.0
		for i := 0; i < rows; i++ {
			dot += u.At(i, k) * b.AtVec(i)
		}
		coeff := dot / sv
		for j := 0; j < cols; j++ {
			x[j] += coeff * v.At(j, k)
		}
	}
	return x, nil
}
