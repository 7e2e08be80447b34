package matchers

import "github.com/pivotal-cf/chunk-finder/scanners"

// Overlapping reports every occurrence of pattern, including occurrences
// that overlap each other ("aa" is found twice in "aaa"). On a mismatch it
// falls back to the longest prefix of pattern that is still a suffix of what
// has been matched, so it needs the whole pattern in memory.
func Overlapping(pattern []byte) Matcher {
	return &overlapping{
		pattern: pattern,
		failure: failureTable(pattern),
	}
}

type overlapping struct {
	pattern []byte
	failure []int
	matched int
}

func (m *overlapping) Check(b byte, offset int) (scanners.Chunk, bool, error) {
	if len(m.pattern) == 0 {
		return scanners.Chunk{}, false, nil
	}

	for m.matched > 0 && m.pattern[m.matched] != b {
		m.matched = m.failure[m.matched-1]
	}

	if m.pattern[m.matched] == b {
		m.matched++
	}

	if m.matched < len(m.pattern) {
		return scanners.Chunk{}, false, nil
	}

	m.matched = m.failure[m.matched-1]

	return scanners.Chunk{
		Start: offset - len(m.pattern) + 1,
		End:   offset,
	}, true, nil
}

// failureTable holds, for each prefix pattern[:i+1], the length of its
// longest proper prefix that is also a suffix.
func failureTable(pattern []byte) []int {
	table := make([]int, len(pattern))

	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[k] != pattern[i] {
			k = table[k-1]
		}
		if pattern[k] == pattern[i] {
			k++
		}
		table[i] = k
	}

	return table
}
