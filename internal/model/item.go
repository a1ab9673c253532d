package model

import (
	"errors"
	"strings"
)

// ErrEmptyTitle is reported for items whose title is blank.
var ErrEmptyTitle = errors.New("empty title")

// Item is the domain model for a todo entry.
// ID is assigned by the owning collection and never changes.
type Item struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Validate checks the only rule an item has: a non-blank title.
func (it Item) Validate() error {
	if strings.TrimSpace(it.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
