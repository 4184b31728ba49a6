package marketplace

const (
	Version = "v0.1.0"

	// DBVersion is bumped on every breaking change of the stored entity layout.
	DBVersion = 1

	// EventHashVersion is bumped whenever projection rules change in a way that requires reindexing.
	EventHashVersion = 1
)
