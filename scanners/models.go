package scanners

import "fmt"

// Chunk is one occurrence of a source inside the target. End is the offset
// of the last matching byte, not one past it.
type Chunk struct {
	Start int
	End   int
}

func (c Chunk) Len() int {
	return c.End - c.Start + 1
}

func (c Chunk) String() string {
	return fmt.Sprintf("(%d, %d)", c.Start, c.End)
}
