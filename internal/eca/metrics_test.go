package eca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func TestCountMotifWraps(t *testing.T) {
	s := State{1, 0, 0, 1}
	assert.Equal(t, 1, CountMotif([2]uint8{0, 0}, s))
	assert.Equal(t, 1, CountMotif([2]uint8{0, 1}, s))
	assert.Equal(t, 1, CountMotif([2]uint8{1, 0}, s))
	assert.Equal(t, 1, CountMotif([2]uint8{1, 1}, s), "pair (3,0) wraps around")
	assert.Equal(t, 1, CountMotif([2]uint8{1, 1}, State{1}))
}

func TestUniformStateHasNoInformation(t *testing.T) {
	for _, s := range []State{{0, 0, 0, 0, 0}, {1, 1, 1}} {
		assert.Zero(t, StateEntropy(s))
		assert.Zero(t, StateJointUncertainty(s))
		assert.Zero(t, StateMutualInformation(s))
	}
}

func TestAlternatingStateIsFullyCorrelated(t *testing.T) {
	s := State{0, 1, 0, 1}
	assert.InDelta(t, 1.0, StateEntropy(s), eps)
	assert.InDelta(t, 1.0, StateJointUncertainty(s), eps)
	assert.InDelta(t, 1.0, StateMutualInformation(s), eps)
}

func TestBlockStateIsIndependent(t *testing.T) {
	s := State{0, 0, 1, 1}
	assert.InDelta(t, 1.0, StateEntropy(s), eps)
	assert.InDelta(t, 2.0, StateJointUncertainty(s), eps)
	assert.InDelta(t, 0.0, StateMutualInformation(s), eps)
}

func TestMetricBounds(t *testing.T) {
	for _, rule := range []int{0, 30, 54, 90, 110, 126, 150, 255} {
		for _, n := range []int{1, 2, 10, 150} {
			e, err := New(n, rule)
			require.NoError(t, err)
			require.NoError(t, e.SetInitialState(int64(rule*1000+n)))
			require.NoError(t, e.UpdateAll(20))

			m, err := e.Metrics()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, m.Entropy, 0.0)
			assert.LessOrEqual(t, m.Entropy, 1.0+eps)
			assert.GreaterOrEqual(t, m.JointUncertainty, 0.0)
			assert.LessOrEqual(t, m.JointUncertainty, 2.0+eps)
			assert.LessOrEqual(t, m.MutualInformation, m.Entropy+eps)
			assert.InDelta(t, 2*m.Entropy-m.JointUncertainty, m.MutualInformation, eps)

			h, _ := e.Entropy()
			hxy, _ := e.JointUncertainty()
			i, _ := e.MutualInformation()
			assert.Equal(t, Metrics{Entropy: h, JointUncertainty: hxy, MutualInformation: i}, m)
		}
	}
}

func TestEntropyZeroOnlyForUniformStates(t *testing.T) {
	assert.Greater(t, StateEntropy(State{0, 0, 0, 1}), 0.0)
	assert.InDelta(t, 0.8112781244591328, StateEntropy(State{0, 0, 0, 1}), 1e-12)
}
