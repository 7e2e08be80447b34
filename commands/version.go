package commands

var (
	// overridden in CI
	version = "dev"
)
