package domain

type (
	// BoardName is the short URL slug of a board ("b", "g", ...).
	BoardName = string

	ThreadId = int64
	PostId   = int64
)

const (
	// AnonymousName is stored for posts submitted without a name.
	AnonymousName = "Anonymous"

	// DefaultSubject is stored for threads opened without a subject.
	DefaultSubject = "No Subject"
)
