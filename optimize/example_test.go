package optimize_test

import (
	"fmt"

	"github.com/katalvlaran/numopt/matrix"
	"github.com/katalvlaran/numopt/optimize"
)

// bowl is f(x,y) = (x-1)² + (y-2)² with analytic derivatives.
type bowl struct{}

func (bowl) Value(x matrix.Matrix) (float64, error) {
	a, _ := x.At(0, 0)
	b, _ := x.At(1, 0)

	return (a-1)*(a-1) + (b-2)*(b-2), nil
}

func (bowl) Gradient(x matrix.Matrix) (matrix.Matrix, error) {
	a, _ := x.At(0, 0)
	b, _ := x.At(1, 0)

	return matrix.NewVector(2*(a-1), 2*(b-2))
}

func (bowl) Hessian(matrix.Matrix) (matrix.Matrix, error) {
	return matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
}

// ExampleNewtonRaphson demonstrates minimizing a quadratic bowl from the
// origin: a single Newton step lands on the exact minimum.
func ExampleNewtonRaphson() {
	n := optimize.NewNewtonRaphson()
	start, _ := matrix.NewVector(0, 0)
	if err := n.Configure(optimize.Config{InitialPoint: start, Epsilon: 1e-6}); err != nil {
		fmt.Println("error:", err)

		return
	}

	min, err := n.Run(bowl{})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("status=%s iterations=%d\n", n.Status(), n.Iterations())
	fmt.Print(matrix.Sprint(min))
	// Output:
	// status=converged iterations=2
	// 1
	// 2
}

// ExampleGoldenRatio demonstrates 1-D minimization with automatic
// bracketing around the starting point.
func ExampleGoldenRatio() {
	g := optimize.NewGoldenRatio()
	start, _ := matrix.NewVector(10)
	if err := g.Configure(optimize.Config{InitialPoint: start, Epsilon: 1e-6}); err != nil {
		fmt.Println("error:", err)

		return
	}

	min, err := g.Run(optimize.Func1D(func(x float64) float64 { return (x - 3) * (x - 3) }))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	t, _ := min.At(0, 0)
	fmt.Printf("minimum near %.3f\n", t)
	// Output:
	// minimum near 3.000
}
