package dots

import (
	"errors"

	"github.com/chazu/dotscad/pkg/geom"
)

// ErrSnakeOrder is returned when a snake's axis order repeats an axis.
var ErrSnakeOrder = errors.New("dots: snake axis order repeats an axis")

// Snake is a taxicab path between two dots: four dots where each step
// moves along a single axis, in the given order. Steps may be redundant
// (zero length) when the endpoints already share a coordinate.
type Snake struct {
	Dots [4]Dot
}

// NewSnake builds the path from start to end, walking the axes in order.
func NewSnake(start, end Dot, order [3]geom.Axis) (Snake, error) {
	if order[0] == order[1] || order[0] == order[2] || order[1] == order[2] {
		return Snake{}, ErrSnakeOrder
	}
	var s Snake
	s.Dots[0] = start
	for i, axis := range order {
		s.Dots[i+1] = s.Dots[i].CopyCoordFrom(end, axis)
	}
	return s, nil
}
