package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type BoardCreationData struct {
	Name        BoardName `validate:"required,alphanum,max=32"`
	Title       string    `validate:"required,max=100"`
	Description string    `validate:"max=500"`
}

type Board struct {
	Id          int64
	Name        BoardName
	Title       string
	Description string
	CreatedAt   time.Time
}

// BoardPage is one listing window of a board's threads. Each thread
// carries its preview posts; PostCount on the metadata holds the total.
type BoardPage struct {
	Board   Board
	Threads []*Thread
	Page    int
	HasMore bool
}
