package matchers

import "github.com/pivotal-cf/chunk-finder/scanners"

//go:generate counterfeiter . Matcher

// Matcher is fed the target one byte at a time, in offset order, and
// reports a chunk whenever the byte at offset completes a match.
type Matcher interface {
	Check(b byte, offset int) (scanners.Chunk, bool, error)
}
