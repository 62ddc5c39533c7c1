package model

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns a creation-time identifier: the current nanosecond
// timestamp as a decimal string, bumped past the previous one so two
// entities created in the same clock tick still get distinct ids.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixNano()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return strconv.FormatInt(id, 10)
}
