// Package models holds the movie-categories service's persisted entities.
package models

// MovieCategory is a named movie category. Category names are unique.
type MovieCategory struct {
	ID          int64  `json:"id"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
