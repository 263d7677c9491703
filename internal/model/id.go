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

// NewID returns a fresh record identifier derived from the current time in
// milliseconds. Two IDs generated in the same millisecond within one process
// are disambiguated by bumping the counter; uniqueness across processes is
// probabilistic, matching how records were historically keyed.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now

	return strconv.FormatInt(now, 10)
}
