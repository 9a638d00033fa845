package qcircuit

import "math"

// Axis names the rotation axis for a rotation gate.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

type gateKind int

const (
	kindNot gateKind = iota
	kindHadamard
	kindPhaseShift
	kindRotation
	kindMatrix
	kindControlled
	kindOracle
)

func (k gateKind) String() string {
	switch k {
	case kindNot:
		return "not"
	case kindHadamard:
		return "hadamard"
	case kindPhaseShift:
		return "phaseShift"
	case kindRotation:
		return "rotation"
	case kindMatrix:
		return "matrix"
	case kindControlled:
		return "controlled"
	case kindOracle:
		return "oracle"
	default:
		return "unknown"
	}
}

// Gate is a tagged value describing one circuit operation: a single
// struct with an unexported kind tag and the payload fields relevant to
// that kind, Go's idiomatic stand-in for a sum type. Gate values are
// immutable.
type Gate struct {
	kind gateKind

	target  int
	radians float64
	axis    Axis

	m      Matrix
	inputs []int

	inner      *Gate
	controls   []int
	truthTable []string // nil means "no oracle wrapper"; non-nil (possibly empty) means oracle
}

// NewNot returns the single-qubit NOT (Pauli-X) gate on target.
func NewNot(target int) Gate {
	return Gate{kind: kindNot, target: target}
}

// NewHadamard returns the single-qubit Hadamard gate on target.
func NewHadamard(target int) Gate {
	return Gate{kind: kindHadamard, target: target}
}

// NewPhaseShift returns diag(1, e^{i·radians}) on target.
func NewPhaseShift(radians float64, target int) Gate {
	return Gate{kind: kindPhaseShift, target: target, radians: radians}
}

// NewRotation returns the single-qubit rotation by radians about axis.
func NewRotation(axis Axis, radians float64, target int) Gate {
	return Gate{kind: kindRotation, target: target, radians: radians, axis: axis}
}

// NewMatrixGate returns a raw gate carrying an arbitrary small unitary
// m acting on the qubits listed in inputs (inputs[0] is the matrix's
// most significant acted-on qubit, per CircuitMatrix's bit-permutation
// convention).
func NewMatrixGate(m Matrix, inputs []int) Gate {
	cp := append([]int(nil), inputs...)
	return Gate{kind: kindMatrix, m: m, inputs: cp}
}

// NewControlled wraps inner with additional control qubits. Wrapping
// is recursive: inner may itself be controlled, and the controls of all
// levels must be high for the gate to fire. Extract applies a single
// truth table over all accumulated controls (see effectiveTruthTable),
// so an oracle nested in or wrapping another controlled/oracle level
// is rejected with ErrTruthTableMalformed unless its entries already
// span every accumulated control.
func NewControlled(inner Gate, controls []int) Gate {
	cp := append([]int(nil), controls...)
	return Gate{kind: kindControlled, inner: &inner, controls: cp}
}

// NewOracle wraps inner so that it fires on inner's target(s) only
// when the joint value on controls matches one of truthTable's
// bit-strings. An empty truthTable is a legal oracle that always
// behaves as identity.
func NewOracle(truthTable []string, controls []int, inner Gate) Gate {
	cpTT := append([]string(nil), truthTable...)
	if cpTT == nil {
		cpTT = []string{}
	}
	cpC := append([]int(nil), controls...)
	return Gate{kind: kindOracle, inner: &inner, controls: cpC, truthTable: cpTT}
}

// rawMatrix returns the gate's own small unitary, recursing through
// controlled/oracle wrappers to their innermost gate.
func (g Gate) rawMatrix() (Matrix, error) {
	switch g.kind {
	case kindNot:
		return NewMatrix([][]complex128{
			{0, 1},
			{1, 0},
		})
	case kindHadamard:
		h := complex(1/math.Sqrt2, 0)
		return NewMatrix([][]complex128{
			{h, h},
			{h, -h},
		})
	case kindPhaseShift:
		return NewMatrix([][]complex128{
			{1, 0},
			{0, cExp(g.radians)},
		})
	case kindRotation:
		return rotationMatrix(g.axis, g.radians)
	case kindMatrix:
		return g.m, nil
	case kindControlled, kindOracle:
		return g.inner.rawMatrix()
	default:
		return Matrix{}, ErrMatrixSizeNotPowerOf2
	}
}

// rawInputs returns the qubits the gate's own small unitary acts on,
// recursing through controlled/oracle wrappers.
func (g Gate) rawInputs() []int {
	switch g.kind {
	case kindNot, kindHadamard, kindPhaseShift, kindRotation:
		return []int{g.target}
	case kindMatrix:
		return g.inputs
	case kindControlled, kindOracle:
		return g.inner.rawInputs()
	default:
		return nil
	}
}

// allControls collects every control qubit a gate carries. Controls
// must precede the inner gate's own inputs in the ordered input list
// the adapter expects, so this returns controls in outer-to-inner order
// (a Gate only ever carries one level of "controlled"/"oracle" wrapping
// per construction, but NewControlled may itself wrap a NewControlled,
// hence the recursion).
func (g Gate) allControls() []int {
	switch g.kind {
	case kindControlled, kindOracle:
		return append(append([]int(nil), g.controls...), g.inner.allControls()...)
	default:
		return nil
	}
}

// effectiveTruthTable returns the truth table of the first oracle
// wrapper found walking inward from the outermost wrapping (plain
// controlled levels are skipped), or nil if the gate carries no oracle
// wrapper anywhere (meaning it fires only when all controls are high).
// Tables of further, inner oracles are not combined with it.
func (g Gate) effectiveTruthTable() []string {
	switch g.kind {
	case kindOracle:
		return g.truthTable
	case kindControlled:
		return g.inner.effectiveTruthTable()
	default:
		return nil
	}
}

func cExp(theta float64) complex128 {
	return complex(math.Cos(theta), math.Sin(theta))
}

func rotationMatrix(axis Axis, theta float64) (Matrix, error) {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	switch axis {
	case AxisX:
		return NewMatrix([][]complex128{
			{c, -1i * s},
			{-1i * s, c},
		})
	case AxisY:
		return NewMatrix([][]complex128{
			{c, -s},
			{s, c},
		})
	case AxisZ:
		return NewMatrix([][]complex128{
			{cExp(-theta / 2), 0},
			{0, cExp(theta / 2)},
		})
	default:
		return Matrix{}, ErrMatrixSizeNotPowerOf2
	}
}

// --- Convenience constructors: pure sugar over the cases above,
// covering the usual named gate catalogue (H, X, Y, Z, S, T, RX, RY,
// RZ, CX, CZ, SWAP), re-expressed as sugar over
// NewMatrixGate/NewRotation/NewControlled instead of bespoke
// bit-twiddling appliers, since every gate flows through the adapter
// regardless of how it was constructed.

// PauliX is sugar for NewNot.
func PauliX(target int) Gate { return NewNot(target) }

// PauliY returns the single-qubit Pauli-Y gate on target.
func PauliY(target int) Gate {
	m, _ := NewMatrix([][]complex128{
		{0, -1i},
		{1i, 0},
	})
	return NewMatrixGate(m, []int{target})
}

// PauliZ returns the single-qubit Pauli-Z gate on target.
func PauliZ(target int) Gate {
	m, _ := NewMatrix([][]complex128{
		{1, 0},
		{0, -1},
	})
	return NewMatrixGate(m, []int{target})
}

// HadamardRange returns a Hadamard gate for every qubit in targets.
func HadamardRange(targets ...int) []Gate {
	gates := make([]Gate, len(targets))
	for i, t := range targets {
		gates[i] = NewHadamard(t)
	}
	return gates
}

// NotRange returns a NOT gate for every qubit in targets.
func NotRange(targets ...int) []Gate {
	gates := make([]Gate, len(targets))
	for i, t := range targets {
		gates[i] = NewNot(t)
	}
	return gates
}

// PhaseS is sugar for NewPhaseShift(pi/2, target).
func PhaseS(target int) Gate { return NewPhaseShift(math.Pi/2, target) }

// PhaseSDagger is sugar for NewPhaseShift(-pi/2, target).
func PhaseSDagger(target int) Gate { return NewPhaseShift(-math.Pi/2, target) }

// PhaseT is sugar for NewPhaseShift(pi/4, target).
func PhaseT(target int) Gate { return NewPhaseShift(math.Pi/4, target) }

// PhaseTDagger is sugar for NewPhaseShift(-pi/4, target).
func PhaseTDagger(target int) Gate { return NewPhaseShift(-math.Pi/4, target) }

// RotationX, RotationY, RotationZ are sugar over NewRotation.
func RotationX(theta float64, target int) Gate { return NewRotation(AxisX, theta, target) }
func RotationY(theta float64, target int) Gate { return NewRotation(AxisY, theta, target) }
func RotationZ(theta float64, target int) Gate { return NewRotation(AxisZ, theta, target) }

// CNOT is sugar for a NOT on target controlled by control.
func CNOT(control, target int) Gate {
	return NewControlled(NewNot(target), []int{control})
}

// CZ is sugar for a Pauli-Z on target controlled by control.
func CZ(control, target int) Gate {
	return NewControlled(PauliZ(target), []int{control})
}

// Swap returns the two-qubit SWAP gate on (a, b).
func Swap(a, b int) Gate {
	m, _ := NewMatrix([][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	})
	return NewMatrixGate(m, []int{a, b})
}

// Toffoli (CCNOT) is sugar for a NOT on target controlled by c1 and c2.
func Toffoli(c1, c2, target int) Gate {
	return NewControlled(NewNot(target), []int{c1, c2})
}
