package finder

import (
	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/chunk-finder/scanners"
)

// Collector keeps the chunks of each source in the order they were found.
type Collector struct {
	chunks [][]scanners.Chunk
}

func NewCollector(sources int) *Collector {
	return &Collector{
		chunks: make([][]scanners.Chunk, sources),
	}
}

func (c *Collector) HandleChunk(logger lager.Logger, source int, chunk scanners.Chunk) error {
	c.chunks[source] = append(c.chunks[source], chunk)
	return nil
}

func (c *Collector) Chunks(source int) []scanners.Chunk {
	return c.chunks[source]
}

func (c *Collector) Sources() int {
	return len(c.chunks)
}
