package sources

import (
	"fmt"
	"io/ioutil"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"
)

// OpenError is returned when a source or target file cannot be opened or
// read before scanning starts.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("could not open file: %s: %s", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

type Source struct {
	Path   string
	Size   int64
	Cursor Cursor

	file      *os.File
	content   []byte
	preloaded bool
}

// Open opens the source at path. With preload the whole file is read into
// memory and closed straight away; otherwise the file stays open and the
// cursor reads it in place.
func Open(logger lager.Logger, path string, preload bool) (*Source, error) {
	logger = logger.Session("open-source", lager.Data{
		"path":    path,
		"preload": preload,
	})
	logger.Debug("starting")
	defer logger.Debug("done")

	if preload {
		content, err := ioutil.ReadFile(path)
		if err != nil {
			logger.Error("failed", err)
			return nil, &OpenError{Path: path, Err: err}
		}

		return &Source{
			Path:      path,
			Size:      int64(len(content)),
			Cursor:    NewBytesCursor(content),
			content:   content,
			preloaded: true,
		}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		logger.Error("failed", err)
		return nil, &OpenError{Path: path, Err: err}
	}

	fi, err := file.Stat()
	if err != nil {
		file.Close()
		logger.Error("failed", err)
		return nil, &OpenError{Path: path, Err: err}
	}

	if fi.IsDir() {
		file.Close()
		err = fmt.Errorf("is a directory")
		logger.Error("failed", err)
		return nil, &OpenError{Path: path, Err: err}
	}

	return &Source{
		Path:   path,
		Size:   fi.Size(),
		Cursor: NewFileCursor(file),
		file:   file,
	}, nil
}

// OpenAll opens paths in order and stops at the first failure, closing
// whatever it had already opened.
func OpenAll(logger lager.Logger, paths []string, preload bool) ([]*Source, error) {
	srcs := make([]*Source, 0, len(paths))

	for _, path := range paths {
		src, err := Open(logger, path, preload)
		if err != nil {
			if closeErr := CloseAll(srcs); closeErr != nil {
				logger.Error("close-failed", closeErr)
			}

			return nil, err
		}

		srcs = append(srcs, src)
	}

	return srcs, nil
}

// Content is nil unless the source was preloaded.
func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Preloaded() bool {
	return s.preloaded
}

func (s *Source) Close() error {
	if s.file == nil {
		return nil
	}

	err := s.file.Close()
	s.file = nil

	return err
}

func CloseAll(srcs []*Source) error {
	var result error

	for _, src := range srcs {
		if err := src.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("closing %s: %w", src.Path, err))
		}
	}

	return result
}
