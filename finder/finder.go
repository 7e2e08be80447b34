package finder

import (
	"fmt"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/chunk-finder/matchers"
	"github.com/pivotal-cf/chunk-finder/scanners"
)

type Scanner interface {
	Scan(lager.Logger) bool
	Byte() (int, byte)
	Err() error
}

type Finder interface {
	Find(lager.Logger, Scanner, ChunkHandlerFunc) (Summary, error)
}

// ChunkHandlerFunc receives each chunk as it is found, along with the index
// of the matcher that found it.
type ChunkHandlerFunc func(logger lager.Logger, source int, chunk scanners.Chunk) error

type Summary struct {
	Bytes  int
	Chunks int

	// TargetErr is the read error that ended the scan early, if any. Chunks
	// found before it are still handled.
	TargetErr error
}

// MatcherError aborts a scan. Chunks handled before it should not be trusted
// to be complete.
type MatcherError struct {
	Source int
	Offset int
	Err    error
}

func (e *MatcherError) Error() string {
	return fmt.Sprintf("source %d failed at target offset %d: %s", e.Source, e.Offset, e.Err)
}

func (e *MatcherError) Unwrap() error {
	return e.Err
}

type finder struct {
	matchers []matchers.Matcher
}

func New(ms ...matchers.Matcher) Finder {
	return &finder{
		matchers: ms,
	}
}

func (f *finder) Find(
	logger lager.Logger,
	scanner Scanner,
	handleChunk ChunkHandlerFunc,
) (Summary, error) {
	logger = logger.Session("find", lager.Data{
		"sources": len(f.matchers),
	})
	logger.Debug("starting")

	var (
		summary Summary
		result  error
	)

	for scanner.Scan(logger) {
		offset, b := scanner.Byte()
		summary.Bytes++

		for i, matcher := range f.matchers {
			chunk, found, err := matcher.Check(b, offset)
			if err != nil {
				logger.Error("matcher-failed", err, lager.Data{
					"source": i,
					"offset": offset,
				})
				return summary, &MatcherError{Source: i, Offset: offset, Err: err}
			}

			if !found {
				continue
			}

			summary.Chunks++
			logger.Debug("chunk-found", lager.Data{
				"source": i,
				"start":  chunk.Start,
				"end":    chunk.End,
			})

			if err := handleChunk(logger, i, chunk); err != nil {
				logger.Error("handler-failed", err)
				result = multierror.Append(result, err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Info("target-ended-early", lager.Data{
			"error":  err.Error(),
			"offset": summary.Bytes,
		})
		summary.TargetErr = err
	}

	logger.Debug("done", lager.Data{
		"bytes":  summary.Bytes,
		"chunks": summary.Chunks,
	})

	return summary, result
}
