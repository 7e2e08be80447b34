package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/chunk-finder/finder"
	"github.com/pivotal-cf/chunk-finder/matchers"
	"github.com/pivotal-cf/chunk-finder/mimetype"
	"github.com/pivotal-cf/chunk-finder/scanners/targetscanner"
	"github.com/pivotal-cf/chunk-finder/sources"
)

var ErrMissingPaths = errors.New("at least one source and a target are required")

type FindCommand struct {
	Preload bool `long:"preload" description:"read each source into memory instead of re-reading it from disk"`
	Overlap bool `long:"overlap" description:"also report occurrences that overlap each other (implies --preload)"`
	Debug   bool `long:"debug" description:"enables debug logging"`
	Version bool `short:"V" long:"version" description:"displays chunk-finder version"`

	Args struct {
		Paths []string `positional-arg-name:"PATH" description:"source files followed by the target file"`
	} `positional-args:"yes"`
}

var Find FindCommand

func (command *FindCommand) Execute(args []string) error {
	if command.Version {
		fmt.Println(version)
		return nil
	}

	logger := lager.NewLogger("chunk-finder")

	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.FATAL))
	}

	paths := append(command.Args.Paths, args...)

	clean := newCleanup()
	defer clean.stop()

	return command.Run(logger, paths, os.Stdout, os.Stderr, clean.register)
}

// Run finds every source in the target, where the last of paths is the
// target and the rest are sources, and prints each source's chunks to stdout
// in the order the sources were given. Nothing is printed unless every file
// could be opened.
func (command *FindCommand) Run(
	logger lager.Logger,
	paths []string,
	stdout io.Writer,
	stderr io.Writer,
	onInterrupt func(func()),
) error {
	if len(paths) < 2 {
		return ErrMissingPaths
	}

	sourcePaths, targetPath := paths[:len(paths)-1], paths[len(paths)-1]

	logger = logger.Session("run", lager.Data{
		"target":  targetPath,
		"sources": len(sourcePaths),
	})
	logger.Debug("starting")
	defer logger.Debug("done")

	target, err := os.Open(targetPath)
	if err != nil {
		return &sources.OpenError{Path: targetPath, Err: err}
	}

	srcs, err := sources.OpenAll(logger, sourcePaths, command.Preload || command.Overlap)
	if err != nil {
		target.Close()
		return err
	}

	closeAll := func() error {
		var closeErr error

		if err := sources.CloseAll(srcs); err != nil {
			closeErr = multierror.Append(closeErr, err)
		}

		if err := target.Close(); err != nil {
			closeErr = multierror.Append(closeErr, fmt.Errorf("closing %s: %w", targetPath, err))
		}

		return closeErr
	}

	if onInterrupt != nil {
		onInterrupt(func() {
			closeAll()
		})
	}

	defer func() {
		if err := closeAll(); err != nil {
			logger.Error("close-failed", err)
		}
	}()

	warnIfCompressed(stderr, paths)

	ms := make([]matchers.Matcher, len(srcs))
	for i, src := range srcs {
		if command.Overlap {
			ms[i] = matchers.Overlapping(src.Content())
		} else {
			ms[i] = matchers.Exact(src.Cursor)
		}
	}

	collector := finder.NewCollector(len(srcs))
	scanner := targetscanner.New(target, targetPath)

	summary, err := finder.New(ms...).Find(logger, scanner, collector.HandleChunk)
	if err != nil {
		var matcherErr *finder.MatcherError
		if errors.As(err, &matcherErr) {
			return fmt.Errorf("reading source %s: %w", srcs[matcherErr.Source].Path, matcherErr.Err)
		}

		return err
	}

	if summary.TargetErr != nil {
		fmt.Fprintln(stderr, yellow("[WARN]"), fmt.Sprintf(
			"stopped reading %s after %d bytes: %s",
			targetPath, summary.Bytes, summary.TargetErr,
		))
	}

	for i := range srcs {
		for _, chunk := range collector.Chunks(i) {
			fmt.Fprintln(stdout, chunk)
		}
	}

	return nil
}

func warnIfCompressed(stderr io.Writer, paths []string) {
	for _, path := range paths {
		if mime, compressed := mimetype.IsCompressed(path); compressed {
			fmt.Fprintln(stderr, yellow("[WARN]"), fmt.Sprintf(
				"%s looks like %s; offsets refer to its raw bytes", path, mime,
			))
		}
	}
}

type cleanup struct {
	mu        sync.Mutex
	work      []func()
	signalsCh chan os.Signal
}

func newCleanup() *cleanup {
	clean := &cleanup{
		signalsCh: make(chan os.Signal, 1),
	}

	signal.Notify(clean.signalsCh, os.Interrupt)

	go func() {
		if _, ok := <-clean.signalsCh; ok {
			fmt.Fprintln(os.Stderr, "\ncleaning up...")
			clean.exit(1)
		}
	}()

	return clean
}

func (c *cleanup) register(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.work = append(c.work, fn)
}

func (c *cleanup) stop() {
	signal.Stop(c.signalsCh)
	close(c.signalsCh)
}

func (c *cleanup) exit(status int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, w := range c.work {
		w()
	}

	os.Exit(status)
}
