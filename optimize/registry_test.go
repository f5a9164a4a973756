package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numopt/optimize"
)

// TestRegistry_BuiltIns verifies NewRegistry pre-registers the full set
// and reports the names in lexicographic order.
func TestRegistry_BuiltIns(t *testing.T) {
	reg := optimize.NewRegistry()

	assert.Equal(t,
		[]string{optimize.GoldenRatioName, optimize.GradientDescentName, optimize.NewtonRaphsonName},
		reg.Names())

	for _, name := range reg.Names() {
		inst, err := reg.GetInstance(name)
		require.NoError(t, err)
		assert.Equal(t, name, inst.Name(), "instances report their registry key")
	}
}

// TestRegistry_FreshInstances verifies every lookup constructs a new
// optimizer: configuring one must not leak into the next.
func TestRegistry_FreshInstances(t *testing.T) {
	reg := optimize.NewRegistry()

	first, err := reg.GetInstance(optimize.NewtonRaphsonName)
	require.NoError(t, err)
	second, err := reg.GetInstance(optimize.NewtonRaphsonName)
	require.NoError(t, err)

	assert.NotSame(t, first, second)

	require.NoError(t, first.Configure(optimize.Config{InitialPoint: point(t, 0, 0), Epsilon: 1e-6}))
	_, err = second.Run(shiftedBowl{})
	assert.ErrorIs(t, err, optimize.ErrNoInitialPoint, "second instance stays unconfigured")
}

// TestRegistry_WiresGradientFamily verifies the built-in gradient-family
// factories hand each instance the registry it came from, so a line search
// can be resolved by name at run time.
func TestRegistry_WiresGradientFamily(t *testing.T) {
	reg := optimize.NewRegistry()

	inst, err := reg.GetInstance(optimize.NewtonRaphsonName)
	require.NoError(t, err)
	n, ok := inst.(*optimize.NewtonRaphson)
	require.True(t, ok)
	assert.Same(t, reg, n.Registry)

	inst, err = reg.GetInstance(optimize.GradientDescentName)
	require.NoError(t, err)
	g, ok := inst.(*optimize.GradientDescent)
	require.True(t, ok)
	assert.Same(t, reg, g.Registry)
}

// TestRegistry_Unknown verifies the lookup sentinel carries the offending
// name.
func TestRegistry_Unknown(t *testing.T) {
	reg := optimize.NewRegistry()

	_, err := reg.GetInstance("SimulatedAnnealing")
	assert.ErrorIs(t, err, optimize.ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), "SimulatedAnnealing")
}

// TestRegistry_Register verifies custom factories install and override.
func TestRegistry_Register(t *testing.T) {
	reg := optimize.NewRegistry()
	reg.Register(optimize.GoldenRatioName, func() optimize.Algorithm {
		g := optimize.NewGoldenRatio()
		g.SetInterval(-1, 1)

		return g
	})

	inst, err := reg.GetInstance(optimize.GoldenRatioName)
	require.NoError(t, err)
	assert.Equal(t, optimize.GoldenRatioName, inst.Name())
}
