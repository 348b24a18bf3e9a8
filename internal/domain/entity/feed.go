// Package entity contains the core business objects of the project.
package entity

// FeedAction is the kind of change a feed event describes.
type FeedAction string

const (
	FeedActionInserted FeedAction = "inserted"
	FeedActionUpdated  FeedAction = "updated"
	FeedActionDeleted  FeedAction = "deleted"
)

// FeedEvent is a normalized change-feed event for one table. Record holds
// the canonicalized row columns; for deletes only the ID is guaranteed.
type FeedEvent struct {
	Action FeedAction
	Table  string
	Record FeedRecord
}

// FeedRecord is the canonical form of a raw change-feed row after the
// normalization boundary: a stable ID plus the columns that survived.
type FeedRecord struct {
	ID         string
	IsVerified bool
	Columns    map[string]any
}
