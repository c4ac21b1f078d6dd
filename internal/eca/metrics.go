package eca

import "math"

// Metrics bundles the information measures of one state.
type Metrics struct {
	Entropy           float64 `json:"entropy" yaml:"entropy"`
	JointUncertainty  float64 `json:"joint_uncertainty" yaml:"joint_uncertainty"`
	MutualInformation float64 `json:"mutual_information" yaml:"mutual_information"`
}

// plogp returns p*log2(p), with 0*log2(0) taken as 0.
func plogp(p float64) float64 {
	if p <= 0 {
		return 0
	}
	return p * math.Log2(p)
}

// CountMotif counts positions i where (state[i], state[i+1 mod N]) equals pair.
func CountMotif(pair [2]uint8, state State) int {
	n := len(state)
	count := 0
	for i := 0; i < n; i++ {
		if state[i] == pair[0] && state[(i+1)%n] == pair[1] {
			count++
		}
	}
	return count
}

// StateEntropy is the Shannon entropy, in bits, of the 0/1 frequencies of state.
func StateEntropy(state State) float64 {
	n := len(state)
	if n == 0 {
		return 0
	}
	ones := 0
	for _, v := range state {
		if v != 0 {
			ones++
		}
	}
	p1 := float64(ones) / float64(n)
	p0 := float64(n-ones) / float64(n)
	h := 0.0
	h -= plogp(p0)
	h -= plogp(p1)
	return h
}

// StateJointUncertainty is the joint entropy of adjacent cyclic pairs of state.
// Each motif count is normalised by N.
func StateJointUncertainty(state State) float64 {
	n := len(state)
	if n == 0 {
		return 0
	}
	h := 0.0
	for _, pair := range [4][2]uint8{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		h -= plogp(float64(CountMotif(pair, state)) / float64(n))
	}
	return h
}

// StateMutualInformation is H(X) + H(Y) - H(X,Y) for adjacent cells. Both
// marginals equal the single-cell entropy of state.
func StateMutualInformation(state State) float64 {
	hx := StateEntropy(state)
	return hx + hx - StateJointUncertainty(state)
}

// Entropy returns the single-cell entropy of the final state.
func (e *Engine) Entropy() (float64, error) {
	s, err := e.last()
	if err != nil {
		return 0, err
	}
	return StateEntropy(s), nil
}

// JointUncertainty returns H(X,Y) over adjacent cells of the final state.
func (e *Engine) JointUncertainty() (float64, error) {
	s, err := e.last()
	if err != nil {
		return 0, err
	}
	return StateJointUncertainty(s), nil
}

// MutualInformation returns I(X:Y) over adjacent cells of the final state.
func (e *Engine) MutualInformation() (float64, error) {
	s, err := e.last()
	if err != nil {
		return 0, err
	}
	return StateMutualInformation(s), nil
}

// Metrics computes all three measures of the final state.
func (e *Engine) Metrics() (Metrics, error) {
	s, err := e.last()
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		Entropy:           StateEntropy(s),
		JointUncertainty:  StateJointUncertainty(s),
		MutualInformation: StateMutualInformation(s),
	}, nil
}
