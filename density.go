package qcircuit

import "math"

// DensityMatrix is a square Matrix rho with rows a power of two,
// Hermitian, non-negative eigenvalues summing to 1.
type DensityMatrix struct {
	Matrix
}

// NewDensityMatrix validates m and wraps it.
func NewDensityMatrix(m Matrix) (DensityMatrix, error) {
	if err := validateDensityMatrix(m); err != nil {
		return DensityMatrix{}, err
	}
	return DensityMatrix{Matrix: m}, nil
}

// PureDensityMatrix returns |v><v| for a Statevector v.
func PureDensityMatrix(v Statevector) (DensityMatrix, error) {
	n := v.Count()
	m, err := MakeMatrix(n, n, 1, func(r, c int) complex128 {
		return v.At(r) * conj(v.At(c))
	})
	if err != nil {
		return DensityMatrix{}, err
	}
	return NewDensityMatrix(m)
}

func validateDensityMatrix(m Matrix) error {
	if m.Rows() != m.Columns() {
		return ErrDensityNotHermitian
	}
	if !isPowerOfTwo(m.Rows()) {
		return ErrMatrixSizeNotPowerOf2
	}
	if !m.IsApproximatelyHermitian(Tolerance) {
		return ErrDensityNotHermitian
	}
	eigen, err := m.HermitianEigenvalues()
	if err != nil {
		return err
	}
	sum := 0.0
	for _, e := range eigen {
		if e < -Tolerance {
			return ErrDensityNegativeEigen
		}
		sum += e
	}
	if !approxEqualFloat(sum, 1, Tolerance) {
		return ErrDensityTraceNotOne
	}
	return nil
}

// NoiseOperator is either a unitary Gate or a noise channel given by a
// sequence of Kraus matrices acting on Inputs.
type NoiseOperator struct {
	isChannel bool
	gate      Gate
	kraus     []Matrix
	inputs    []int
}

// UnitaryOperator wraps a Gate as a NoiseOperator applied as U·rho·U*.
func UnitaryOperator(g Gate) NoiseOperator {
	return NoiseOperator{gate: g}
}

// NewChannel builds a Kraus-operator NoiseOperator applied as
// rho' = sum_i K_i * rho * K_i*. The K_i need not individually be
// unitary, but must satisfy sum_i K_i* K_i = I; this constructor does
// not verify that property — callers who want the stronger guarantee
// can call NoiseOperator.Validate.
func NewChannel(kraus []Matrix, inputs []int) NoiseOperator {
	return NoiseOperator{isChannel: true, kraus: append([]Matrix(nil), kraus...), inputs: append([]int(nil), inputs...)}
}

// Validate checks sum_i K_i* K_i ≈ I, the Kraus-completeness property
// that NewChannel leaves unchecked. Opt-in only: no evolution path in
// this module calls it automatically.
func (op NoiseOperator) Validate(tol float64) error {
	if !op.isChannel {
		return nil
	}
	size := op.kraus[0].Rows()
	acc, err := MakeMatrix(size, size, 1, func(r, c int) complex128 { return 0 })
	if err != nil {
		return err
	}
	for _, k := range op.kraus {
		term, err := Multiply(k, Adjoint, k, None)
		if err != nil {
			return err
		}
		acc, err = acc.Add(term)
		if err != nil {
			return err
		}
	}
	id, err := Identity(size)
	if err != nil {
		return err
	}
	if !acc.ApproxEqual(id, tol) {
		return ErrMatrixNotUnitary
	}
	return nil
}

// --- Named noise channels.

func pauliXMatrix() Matrix {
	m, _ := NewMatrix([][]complex128{{0, 1}, {1, 0}})
	return m
}
func pauliYMatrix() Matrix {
	m, _ := NewMatrix([][]complex128{{0, -1i}, {1i, 0}})
	return m
}
func pauliZMatrix() Matrix {
	m, _ := NewMatrix([][]complex128{{1, 0}, {0, -1}})
	return m
}
func identity2() Matrix {
	m, _ := Identity(2)
	return m
}

// BitFlip returns the bit-flip channel: K0=sqrt(1-p)*I, K1=sqrt(p)*X.
func BitFlip(p float64, target int) NoiseOperator {
	k0 := identity2().Scale(complex(math.Sqrt(1-p), 0))
	k1 := pauliXMatrix().Scale(complex(math.Sqrt(p), 0))
	return NewChannel([]Matrix{k0, k1}, []int{target})
}

// PhaseFlip returns the phase-flip channel: K0=sqrt(1-p)*I, K1=sqrt(p)*Z.
func PhaseFlip(p float64, target int) NoiseOperator {
	k0 := identity2().Scale(complex(math.Sqrt(1-p), 0))
	k1 := pauliZMatrix().Scale(complex(math.Sqrt(p), 0))
	return NewChannel([]Matrix{k0, k1}, []int{target})
}

// AmplitudeDamping returns K0=[[1,0],[0,sqrt(1-p)]], K1=[[0,sqrt(p)],[0,0]].
func AmplitudeDamping(p float64, target int) NoiseOperator {
	k0, _ := NewMatrix([][]complex128{{1, 0}, {0, complex(math.Sqrt(1-p), 0)}})
	k1, _ := NewMatrix([][]complex128{{0, complex(math.Sqrt(p), 0)}, {0, 0}})
	return NewChannel([]Matrix{k0, k1}, []int{target})
}

// PhaseDamping returns K0=[[1,0],[0,sqrt(1-p)]], K1=[[0,0],[0,sqrt(p)]].
func PhaseDamping(p float64, target int) NoiseOperator {
	k0, _ := NewMatrix([][]complex128{{1, 0}, {0, complex(math.Sqrt(1-p), 0)}})
	k1, _ := NewMatrix([][]complex128{{0, 0}, {0, complex(math.Sqrt(p), 0)}})
	return NewChannel([]Matrix{k0, k1}, []int{target})
}

// Depolarizing returns the usual weighted mixture of I, X, Y, Z:
// K0=sqrt(1-3p/4)*I, K1=K2=K3=sqrt(p/4)*{X,Y,Z}.
func Depolarizing(p float64, target int) NoiseOperator {
	k0 := identity2().Scale(complex(math.Sqrt(1-3*p/4), 0))
	k1 := pauliXMatrix().Scale(complex(math.Sqrt(p/4), 0))
	k2 := pauliYMatrix().Scale(complex(math.Sqrt(p/4), 0))
	k3 := pauliZMatrix().Scale(complex(math.Sqrt(p/4), 0))
	return NewChannel([]Matrix{k0, k1, k2, k3}, []int{target})
}

// applyOperatorToDensity applies a single NoiseOperator to rho.
func applyOperatorToDensity(op NoiseOperator, rho Matrix, qubitCount int, cfg DensityMatrixConfiguration) (Matrix, error) {
	if !op.isChannel {
		ext, err := op.gate.Extract(qubitCount)
		if err != nil {
			return Matrix{}, err
		}
		adapter := NewCircuitMatrix(qubitCount, ext.Matrix, ext.OrderedInputs)
		e, err := expandOperator(adapter, cfg)
		if err != nil {
			return Matrix{}, err
		}
		return sandwich(e, rho)
	}

	dim := 1 << qubitCount
	acc, err := MakeMatrix(dim, dim, 1, func(r, c int) complex128 { return 0 })
	if err != nil {
		return Matrix{}, err
	}
	for _, k := range op.kraus {
		adapter := NewCircuitMatrix(qubitCount, k, op.inputs)
		e, err := expandOperator(adapter, cfg)
		if err != nil {
			return Matrix{}, err
		}
		term, err := sandwich(e, rho)
		if err != nil {
			return Matrix{}, err
		}
		acc, err = acc.Add(term)
		if err != nil {
			return Matrix{}, err
		}
	}
	return acc, nil
}

// sandwich computes e * rho * e*.
func sandwich(e, rho Matrix) (Matrix, error) {
	left, err := MultiplyPlain(e, rho)
	if err != nil {
		return Matrix{}, err
	}
	return Multiply(left, None, e, Adjoint)
}

// expandOperator materialises an operator's full 2^N x 2^N matrix per
// the configured density-matrix strategy.
func expandOperator(adapter CircuitMatrix, cfg DensityMatrixConfiguration) (Matrix, error) {
	if cfg.strategy == dmStrategyMatrix {
		return adapter.Expand(cfg.expansionConcurrency)
	}

	dim := adapter.Dim()
	rows := make([]Vector, dim)
	var rowErr error
	parallelFor(dim, cfg.calculationConcurrency, func(r int) {
		row, err := adapter.Row(r, cfg.expansionConcurrency)
		if err != nil {
			rowErr = err
			return
		}
		rows[r] = row
	})
	if rowErr != nil {
		return Matrix{}, rowErr
	}
	return MakeMatrix(dim, dim, 1, func(r, c int) complex128 {
		return rows[r].At(c)
	})
}
