// Package sim provides the state-vector core of the Grover search simulator.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - state.go: StateVector, the dense complex amplitude register, and Hadamard
//   - oracle.go, diffusion.go: the two reflections that make up a Grover iteration
//   - grover.go: GroverIterator, OptimalIterations and the analytic success curve
//   - measure.go: inverse-CDF sampling into an Outcome
//   - runner.go: SimulationRunner, trials and parameter sweeps
//
// # Conventions
//
// Qubit q is bit q of a basis index, least-significant first, and
// Outcome[q] is the measured value of qubit q. An optional ancilla qubit sits
// above the input qubits; the oracle and diffusion act on the input subspace
// of each ancilla block and measurement strips the ancilla bit.
//
// Randomness is injected through RandomSource. Sweeps derive one stream per
// (point, trial) from the master seed via PartitionedRNG, so results do not
// depend on the number of workers.
//
// Trial records for a sweep can be collected with sim/trace.
package sim
