package direction_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/direction"
	"github.com/katalvlaran/lvlgrid/lattice"
)

// ExampleDirection_Right45 walks the compass clockwise while climbing.
func ExampleDirection_Right45() {
	d := direction.UpNorth
	for range 3 {
		fmt.Println(d)
		d = d.Right45()
	}

	// Output:
	// NORTH, UP
	// NORTH, EAST, UP
	// EAST, UP
}

// ExampleFromCoord classifies a displacement by sign.
func ExampleFromCoord() {
	from, to := lattice.Pt(4, 4), lattice.Pt(1, 9)
	d := direction.FromCoord(to.Sub(from))
	fmt.Println(d, "opposite:", d.Opposite())

	// Output:
	// NORTH, WEST opposite: SOUTH, EAST
}
