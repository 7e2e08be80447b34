package matchers

import (
	"github.com/pivotal-cf/chunk-finder/scanners"
	"github.com/pivotal-cf/chunk-finder/sources"
)

// Exact compares the target against the source read through cursor, never
// holding more than the next expected byte.
//
// A mismatch abandons the current attempt and the next target byte is
// compared against the first byte of the source. The mismatching byte itself
// is not tried as a new start, so occurrences that overlap an attempt in
// progress are not reported: "aa" is found once in "aaa". Use Overlapping to
// report those as well.
func Exact(cursor sources.Cursor) Matcher {
	return &exact{
		cursor: cursor,
	}
}

type exact struct {
	cursor sources.Cursor

	primed   bool
	empty    bool
	expected byte

	matching bool
	start    int
}

func (m *exact) Check(b byte, offset int) (scanners.Chunk, bool, error) {
	if !m.primed {
		if err := m.prime(); err != nil {
			return scanners.Chunk{}, false, err
		}
	}

	if m.empty {
		return scanners.Chunk{}, false, nil
	}

	if b != m.expected {
		if !m.matching {
			// still waiting on the first byte of the source
			return scanners.Chunk{}, false, nil
		}

		m.matching = false
		return scanners.Chunk{}, false, m.rewind()
	}

	if !m.matching {
		m.matching = true
		m.start = offset
	}

	next, ok, err := m.cursor.Next()
	if err != nil {
		return scanners.Chunk{}, false, err
	}

	if ok {
		m.expected = next
		return scanners.Chunk{}, false, nil
	}

	chunk := scanners.Chunk{
		Start: m.start,
		End:   offset,
	}

	m.matching = false
	if err := m.rewind(); err != nil {
		return scanners.Chunk{}, false, err
	}

	return chunk, true, nil
}

func (m *exact) rewind() error {
	if err := m.cursor.Rewind(); err != nil {
		return err
	}

	return m.prime()
}

// prime loads the first byte of the source as the next expected byte.
func (m *exact) prime() error {
	m.primed = true

	first, ok, err := m.cursor.Next()
	if err != nil {
		return err
	}

	m.empty = !ok
	m.expected = first

	return nil
}
