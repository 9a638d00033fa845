package qcircuit

import "strings"

// Extraction is the result of Extract: the effective unitary a gate
// contributes, the ordered qubits it touches (controls first), how many
// of those are controls, and the truth table governing when the gate
// fires (nil when the gate carries no controls/oracle wrapper at all).
//
// Matrix is the block-expanded operator over OrderedInputs, ready to
// hand to CircuitMatrix; RawMatrix/RawInputs/Controls are its
// unexpanded ingredients, kept around so the direct statevector
// strategy can sum over RawMatrix's columns only, instead of
// materialising the block-expanded Matrix.
type Extraction struct {
	Matrix        Matrix
	RawMatrix     Matrix
	OrderedInputs []int
	Controls      []int
	RawInputs     []int
	ControlCount  int
	TruthTable    []string
}

// FireSet returns the set of control-value integers (decoded with the
// MSB-leftmost convention shared with bitstring construction) that
// satisfy e.TruthTable, for use by the direct strategy's filter step.
func (e Extraction) FireSet() map[int]bool {
	return truthTableFireSet(e.TruthTable)
}

// Extract validates g against a circuit of qubitCount qubits and
// returns the effective small unitary g contributes together with its
// input/control bookkeeping. It never expands to the full 2^qubitCount
// operator — that is CircuitMatrix's job.
//
// Decision (see DESIGN.md "Open Question decisions"): truth-table
// entries shorter than the control count are conceivable in principle,
// but nothing names which controls a short entry would bind to. This
// implementation requires every entry's length to equal the gate's
// total control count exactly; ErrTruthTableTooWide still fires for
// entries longer than the control count, and ErrTruthTableMalformed now
// also covers entries shorter than it.
func (g Gate) Extract(qubitCount int) (Extraction, error) {
	if err := validateControlsNonEmpty(g); err != nil {
		return Extraction{}, err
	}

	rawM, err := g.rawMatrix()
	if err != nil {
		return Extraction{}, err
	}
	if !isPowerOfTwo(rawM.Rows()) {
		return Extraction{}, ErrMatrixSizeNotPowerOf2
	}

	rawIn := g.rawInputs()
	inputCount := log2Exact(rawM.Rows())
	if inputCount != len(rawIn) {
		return Extraction{}, ErrInputCountMismatch
	}

	controls := g.allControls()
	ordered := append(append([]int(nil), controls...), rawIn...)

	if !allUnique(ordered) {
		return Extraction{}, ErrInputsNotUnique
	}
	for _, q := range ordered {
		if q < 0 || q >= qubitCount {
			return Extraction{}, ErrInputsOutOfBound
		}
	}
	if len(ordered) > qubitCount {
		return Extraction{}, ErrMatrixExceedsQubits
	}
	if !rawM.IsApproximatelyUnitary(Tolerance) {
		return Extraction{}, ErrMatrixNotUnitary
	}

	numControls := len(controls)
	truthTable := g.effectiveTruthTable()
	if truthTable == nil && numControls > 0 {
		// Plain NewControlled with no oracle wrapper: fires only when
		// every control is high.
		truthTable = []string{strings.Repeat("1", numControls)}
	}
	if numControls > 0 {
		if err := validateTruthTable(truthTable, numControls); err != nil {
			return Extraction{}, err
		}
	}

	effective := rawM
	if numControls > 0 {
		effective, err = buildControlledMatrix(rawM, numControls, truthTable)
		if err != nil {
			return Extraction{}, err
		}
	}

	return Extraction{
		Matrix:        effective,
		RawMatrix:     rawM,
		OrderedInputs: ordered,
		Controls:      controls,
		RawInputs:     rawIn,
		ControlCount:  numControls,
		TruthTable:    truthTable,
	}, nil
}

// validateControlsNonEmpty walks every controlled/oracle wrapper in g
// and rejects an empty controls slice at any level.
func validateControlsNonEmpty(g Gate) error {
	switch g.kind {
	case kindControlled, kindOracle:
		if len(g.controls) == 0 {
			return ErrControlsEmpty
		}
		return validateControlsNonEmpty(*g.inner)
	default:
		return nil
	}
}

func allUnique(xs []int) bool {
	seen := make(map[int]struct{}, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			return false
		}
		seen[x] = struct{}{}
	}
	return true
}

// validateTruthTable checks that every entry is a non-empty string of
// {'0','1'} and that each entry's length (per this implementation's
// decision, see Extract's doc comment) equals numControls exactly.
func validateTruthTable(tt []string, numControls int) error {
	for _, entry := range tt {
		if entry == "" {
			return ErrTruthTableMalformed
		}
		for _, ch := range entry {
			if ch != '0' && ch != '1' {
				return ErrTruthTableMalformed
			}
		}
		if len(entry) > numControls {
			return ErrTruthTableTooWide
		}
		if len(entry) != numControls {
			return ErrTruthTableMalformed
		}
	}
	return nil
}

// buildControlledMatrix constructs the block matrix for a controlled
// gate: 2^numControls blocks of rawM's size, block v equal to rawM when
// v's bit-string (MSB = leftmost char, the convention shared with
// bitstring construction) is in truthTable, identity otherwise. The
// resulting matrix is unitary by construction whenever rawM is.
func buildControlledMatrix(rawM Matrix, numControls int, truthTable []string) (Matrix, error) {
	blockSize := rawM.Rows()
	fires := truthTableFireSet(truthTable)

	size := blockSize << numControls
	return MakeMatrix(size, size, 1, func(r, c int) complex128 {
		vr, rr := r/blockSize, r%blockSize
		vc, cc := c/blockSize, c%blockSize
		if vr != vc {
			return 0
		}
		if fires[vr] {
			return rawM.At(rr, cc)
		}
		if rr == cc {
			return 1
		}
		return 0
	})
}

// truthTableFireSet decodes truthTable's bit-strings (MSB = leftmost
// char) into the set of control-value integers that fire the gate.
func truthTableFireSet(truthTable []string) map[int]bool {
	fires := make(map[int]bool, len(truthTable))
	for _, entry := range truthTable {
		v := 0
		for _, ch := range entry {
			v <<= 1
			if ch == '1' {
				v |= 1
			}
		}
		fires[v] = true
	}
	return fires
}
