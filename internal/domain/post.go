package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type PostCreationData struct {
	Name       string
	Email      string
	Subject    string
	Comment    string
	Attachment *Attachment
}

type Post struct {
	Id         PostId
	ThreadId   ThreadId
	Number     int64 // 1-based position within the thread, dense
	Name       string
	Email      string
	Subject    string
	Comment    string
	Attachment *Attachment
	CreatedAt  time.Time
}

// IsOp reports whether the post opened its thread.
func (p *Post) IsOp() bool {
	return p.Number == 1
}
