package targetscanner

import (
	"bufio"
	"io"

	"code.cloudfoundry.org/lager"
)

type targetScanner struct {
	path   string
	reader *bufio.Reader

	offset int
	next   int
	b      byte
	done   bool
	err    error
}

// New reads r forward exactly once. A read error ends the scan the same way
// end-of-stream does; it is kept for Err.
func New(r io.Reader, path string) *targetScanner {
	return &targetScanner{
		path:   path,
		reader: bufio.NewReader(r),
		offset: -1,
	}
}

func (s *targetScanner) Scan(logger lager.Logger) bool {
	if s.done {
		return false
	}

	b, err := s.reader.ReadByte()
	if err != nil {
		s.done = true

		if err != io.EOF {
			logger.Session("target-scanner", lager.Data{"path": s.path}).Error("read-failed", err, lager.Data{
				"offset": s.next,
			})
			s.err = err
		}

		return false
	}

	s.offset = s.next
	s.b = b
	s.next++

	return true
}

// Byte returns the most recently scanned byte and its offset in the target.
func (s *targetScanner) Byte() (int, byte) {
	return s.offset, s.b
}

func (s *targetScanner) Err() error {
	return s.err
}
