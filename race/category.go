// Package race implements the evidence-accumulation core of a binary
// perceptual decision task. Two accumulators race toward a shared threshold;
// the first to cross it determines the response, and the number of steps
// taken is the reaction time.
package race

// Category identifies one of the two decision categories.
type Category int

// The two categories of the task.
const (
	Left Category = iota
	Right
)

// Name returns the name of the category.
func (c Category) Name() string {
	switch c {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		panic("unknown category")
	}
}

func (c Category) String() string {
	return c.Name()
}
