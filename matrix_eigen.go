package qcircuit

import (
	"math"
	"sort"
)

const jacobiMaxSweeps = 100

// HermitianEigenvalues returns m's eigenvalues in non-decreasing order,
// or ErrNotHermitian / ErrEigenDidNotConverge.
//
// No dependency available to this module binds to a LAPACK
// zheev-equivalent (see DESIGN.md), so this is a portable fallback:
// m is lifted to the real symmetric matrix
//
//	B = [ Re(m)  -Im(m) ]
//	    [ Im(m)   Re(m) ]
//
// whose eigenvalues are exactly m's eigenvalues, each with doubled
// multiplicity — a standard trick for reducing a complex-Hermitian
// eigenproblem to a real-symmetric one. B is diagonalised with the
// classical cyclic Jacobi algorithm, and the doubled spectrum is
// folded back down by averaging adjacent pairs.
func (m Matrix) HermitianEigenvalues() ([]float64, error) {
	if m.rows != m.cols {
		return nil, ErrNotHermitian
	}
	if !m.IsApproximatelyHermitian(Tolerance) {
		return nil, ErrNotHermitian
	}

	n := m.rows
	b := make([][]float64, 2*n)
	for i := range b {
		b[i] = make([]float64, 2*n)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := m.At(r, c)
			b[r][c] = real(v)
			b[r+n][c+n] = real(v)
			b[r][c+n] = -imag(v)
			b[r+n][c] = imag(v)
		}
	}

	doubled, err := realSymmetricEigenvalues(b)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = (doubled[2*i] + doubled[2*i+1]) / 2
	}
	return out, nil
}

// realSymmetricEigenvalues diagonalises the real symmetric matrix a
// (n x n, a[i][j] == a[j][i]) via classical cyclic Jacobi rotations,
// returning its eigenvalues in non-decreasing order.
func realSymmetricEigenvalues(a [][]float64) ([]float64, error) {
	n := len(a)
	// Work on a private copy; a is never mutated in place.
	work := make([][]float64, n)
	for i := range a {
		work[i] = append([]float64(nil), a[i]...)
	}

	for sweep := 0; sweep < jacobiMaxSweeps; sweep++ {
		offDiag := 0.0
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				offDiag += work[p][q] * work[p][q]
			}
		}
		if offDiag <= Tolerance*Tolerance*float64(n*n) {
			eigen := make([]float64, n)
			for i := 0; i < n; i++ {
				eigen[i] = work[i][i]
			}
			sort.Float64s(eigen)
			return eigen, nil
		}

		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				if math.Abs(work[p][q]) < 1e-300 {
					continue
				}
				theta := (work[q][q] - work[p][p]) / (2 * work[p][q])
				t := signOf(theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				c := 1 / math.Sqrt(t*t+1)
				s := t * c

				app, aqq, apq := work[p][p], work[q][q], work[p][q]
				work[p][p] = c*c*app - 2*s*c*apq + s*s*aqq
				work[q][q] = s*s*app + 2*s*c*apq + c*c*aqq
				work[p][q] = 0
				work[q][p] = 0

				for i := 0; i < n; i++ {
					if i == p || i == q {
						continue
					}
					aip := work[i][p]
					aiq := work[i][q]
					work[i][p] = c*aip - s*aiq
					work[p][i] = work[i][p]
					work[i][q] = s*aip + c*aiq
					work[q][i] = work[i][q]
				}
			}
		}
	}
	return nil, ErrEigenDidNotConverge
}

func signOf(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
