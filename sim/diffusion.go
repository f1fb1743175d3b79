package sim

// Diffusion is the inversion-about-the-mean operator 2|s><s| - I over the
// input register, where |s> is the uniform superposition.
type Diffusion struct{}

// Apply replaces every amplitude a with 2*mu - a, mu being the mean
// amplitude of its ancilla block.
func (Diffusion) Apply(s *StateVector) {
	block := s.InputDim()
	n := complex(float64(block), 0)
	for base := 0; base < s.Dim(); base += block {
		amps := s.Amplitudes[base : base+block]
		var sum complex128
		for _, a := range amps {
			sum += a
		}
		twoMean := 2 * sum / n
		for i, a := range amps {
			amps[i] = twoMean - a
		}
	}
}

// ApplyViaHadamard computes the same operator as H^n (2|0><0| - I) H^n.
// The phase flip negates every state except |0...0>, which keeps the result
// equal to Apply with no global phase.
func (Diffusion) ApplyViaHadamard(s *StateVector) {
	s.ApplyHadamardAll()
	block := s.InputDim()
	for base := 0; base < s.Dim(); base += block {
		for i := 1; i < block; i++ {
			s.Amplitudes[base+i] = -s.Amplitudes[base+i]
		}
	}
	s.ApplyHadamardAll()
}
