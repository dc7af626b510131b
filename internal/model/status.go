package model

import (
	"fmt"
	"strings"
)

// Status is a record's reading state. There is no terminal state —
// a finished book may drop back to in-progress when re-read.
type Status string

const (
	StatusToRead     Status = "to read"
	StatusInProgress Status = "in progress"
	StatusFinished   Status = "finished"
)

// statusRank orders statuses for display: unfinished books surface first.
var statusRank = map[Status]int{
	StatusToRead:     0,
	StatusInProgress: 1,
	StatusFinished:   2,
}

// Rank returns the sort priority of s. Unknown statuses sort last.
func (s Status) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return len(statusRank)
}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// ParseStatus accepts the wire form ("to read") as well as the hyphenated
// form used on the command line ("to-read").
func ParseStatus(v string) (Status, error) {
	s := Status(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), "-", " "))
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q (want to-read, in-progress, or finished)", v)
	}
	return s, nil
}
