package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Board   BoardName
	Subject string
	OpPost  PostCreationData
}

type ThreadMetadata struct {
	Id        ThreadId
	Board     BoardName
	Subject   string
	CreatedAt time.Time
	BumpedAt  time.Time
	IsPinned  bool
	IsLocked  bool
	PostCount int64
}

// Thread carries either the full post sequence (thread view) or a
// bounded preview of the earliest posts (board listing); PostCount is
// always the real total.
type Thread struct {
	ThreadMetadata
	Posts []*Post
}
