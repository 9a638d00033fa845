package qcircuit

// UnitaryConfiguration selects the unitary-transformation strategy.
// Only the full-matrix strategy is applicable.
type UnitaryConfiguration struct {
	expansionConcurrency int
}

// UnitaryMatrix builds the (only) unitary configuration: full-matrix
// expansion at expansionConcurrency, which must be >= 1.
func UnitaryMatrix(expansionConcurrency int) (UnitaryConfiguration, error) {
	if expansionConcurrency < 1 {
		return UnitaryConfiguration{}, ErrInvalidConcurrency
	}
	return UnitaryConfiguration{expansionConcurrency: expansionConcurrency}, nil
}

// StatevectorConfiguration selects one of the four statevector
// transformation strategies and its concurrency knobs.
type StatevectorConfiguration struct {
	strategy               statevectorStrategy
	calculationConcurrency int
	expansionConcurrency   int
}

// StatevectorMatrix selects the full-matrix strategy. calculationConcurrency
// is fixed at 1 and expansionConcurrency must be >= 1.
func StatevectorMatrix(expansionConcurrency int) (StatevectorConfiguration, error) {
	if expansionConcurrency < 1 {
		return StatevectorConfiguration{}, ErrInvalidConcurrency
	}
	return StatevectorConfiguration{strategy: strategyFullMatrix, calculationConcurrency: 1, expansionConcurrency: expansionConcurrency}, nil
}

// StatevectorRow selects the row-by-row strategy. Both
// calculationConcurrency and expansionConcurrency must be >= 1.
func StatevectorRow(calculationConcurrency, expansionConcurrency int) (StatevectorConfiguration, error) {
	if calculationConcurrency < 1 || expansionConcurrency < 1 {
		return StatevectorConfiguration{}, ErrInvalidConcurrency
	}
	return StatevectorConfiguration{strategy: strategyRowByRow, calculationConcurrency: calculationConcurrency, expansionConcurrency: expansionConcurrency}, nil
}

// StatevectorValue selects the element-by-element strategy.
// calculationConcurrency must be >= 1; expansionConcurrency is fixed at
// 1 (not meaningful for this strategy).
func StatevectorValue(calculationConcurrency int) (StatevectorConfiguration, error) {
	if calculationConcurrency < 1 {
		return StatevectorConfiguration{}, ErrInvalidConcurrency
	}
	return StatevectorConfiguration{strategy: strategyElementByElement, calculationConcurrency: calculationConcurrency, expansionConcurrency: 1}, nil
}

// StatevectorDirect selects the direct strategy. calculationConcurrency
// must be >= 1; expansionConcurrency is fixed at 1.
func StatevectorDirect(calculationConcurrency int) (StatevectorConfiguration, error) {
	if calculationConcurrency < 1 {
		return StatevectorConfiguration{}, ErrInvalidConcurrency
	}
	return StatevectorConfiguration{strategy: strategyDirect, calculationConcurrency: calculationConcurrency, expansionConcurrency: 1}, nil
}

type densityStrategy int

const (
	dmStrategyMatrix densityStrategy = iota
	dmStrategyRow
)

// DensityMatrixConfiguration selects how operators are expanded while
// evolving a density matrix.
type DensityMatrixConfiguration struct {
	strategy               densityStrategy
	calculationConcurrency int
	expansionConcurrency   int
}

// DensityMatrixMatrix selects the full-matrix expansion strategy.
func DensityMatrixMatrix(expansionConcurrency int) (DensityMatrixConfiguration, error) {
	if expansionConcurrency < 1 {
		return DensityMatrixConfiguration{}, ErrInvalidConcurrency
	}
	return DensityMatrixConfiguration{strategy: dmStrategyMatrix, calculationConcurrency: 1, expansionConcurrency: expansionConcurrency}, nil
}

// DensityMatrixRow selects the row-by-row expansion strategy.
func DensityMatrixRow(calculationConcurrency, expansionConcurrency int) (DensityMatrixConfiguration, error) {
	if calculationConcurrency < 1 || expansionConcurrency < 1 {
		return DensityMatrixConfiguration{}, ErrInvalidConcurrency
	}
	return DensityMatrixConfiguration{strategy: dmStrategyRow, calculationConcurrency: calculationConcurrency, expansionConcurrency: expansionConcurrency}, nil
}

// CircuitFactory builds Circuits that share a unitary configuration and
// a statevector configuration.
type CircuitFactory struct {
	unitaryConfig     UnitaryConfiguration
	statevectorConfig StatevectorConfiguration
}

// NewCircuitFactory builds a CircuitFactory.
func NewCircuitFactory(unitaryConfig UnitaryConfiguration, statevectorConfig StatevectorConfiguration) CircuitFactory {
	return CircuitFactory{unitaryConfig: unitaryConfig, statevectorConfig: statevectorConfig}
}

// MakeCircuit returns a Circuit over qubitCount qubits evolving gates
// in order.
func (f CircuitFactory) MakeCircuit(qubitCount int, gates []Gate) (Circuit, error) {
	if qubitCount < 1 {
		return Circuit{}, ErrInvalidDimension
	}
	return Circuit{
		qubitCount:        qubitCount,
		gates:             append([]Gate(nil), gates...),
		unitaryConfig:     f.unitaryConfig,
		statevectorConfig: f.statevectorConfig,
	}, nil
}

// NoiseCircuitFactory builds NoiseCircuits that share a density-matrix
// configuration.
type NoiseCircuitFactory struct {
	densityMatrixConfig DensityMatrixConfiguration
}

// NewNoiseCircuitFactory builds a NoiseCircuitFactory.
func NewNoiseCircuitFactory(densityMatrixConfig DensityMatrixConfiguration) NoiseCircuitFactory {
	return NoiseCircuitFactory{densityMatrixConfig: densityMatrixConfig}
}

// MakeNoiseCircuit returns a NoiseCircuit over qubitCount qubits
// evolving ops in order.
func (f NoiseCircuitFactory) MakeNoiseCircuit(qubitCount int, ops []NoiseOperator) (NoiseCircuit, error) {
	if qubitCount < 1 {
		return NoiseCircuit{}, ErrInvalidDimension
	}
	return NoiseCircuit{
		qubitCount:          qubitCount,
		operators:           append([]NoiseOperator(nil), ops...),
		densityMatrixConfig: f.densityMatrixConfig,
	}, nil
}
