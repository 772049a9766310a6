package repositories

import (
	"errors"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter is the storage-neutral conjunction of per-field match
// conditions built from list-query parameters. Empty fields impose no
// constraint. Text fields match as case-insensitive substrings; Category
// and WorkArrangement match exactly.
type JobFilter struct {
	Title           string
	Location        string
	Type            string
	Description     string
	Category        string
	WorkArrangement string
}
