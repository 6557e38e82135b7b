// Package events provides a pub/sub channel for matching progress.
// The matching core publishes fire-and-forget; a failed or missing
// subscriber never affects the pipeline.
package events

import "time"

// Event types published by the matching pipeline.
const (
	TypeSearchStarted   = "search.started"
	TypeSceneMatched    = "scene.matched"
	TypeTorrentSelected = "torrent.selected"
	TypeGroupRejected   = "group.rejected"
)

// Event is the interface all progress events implement.
type Event interface {
	EventType() string
	OccurredAt() time.Time
}

// BaseEvent provides common fields for all events.
type BaseEvent struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"occurred_at"`
}

func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

func newBaseEvent(eventType string) BaseEvent {
	return BaseEvent{Type: eventType, Timestamp: time.Now()}
}

// SearchStarted marks the beginning of a matching run.
type SearchStarted struct {
	BaseEvent
	Query      string `json:"query"`
	Candidates int    `json:"candidates"`
}

// NewSearchStarted creates a SearchStarted event.
func NewSearchStarted(query string, candidates int) SearchStarted {
	return SearchStarted{BaseEvent: newBaseEvent(TypeSearchStarted), Query: query, Candidates: candidates}
}

// SceneMatched reports a torrent title matched to a scene.
type SceneMatched struct {
	BaseEvent
	SceneID string `json:"scene_id"`
	Title   string `json:"title"`
	Score   int    `json:"score"`
	Method  string `json:"method"`
}

// NewSceneMatched creates a SceneMatched event.
func NewSceneMatched(sceneID, title string, score int, method string) SceneMatched {
	return SceneMatched{BaseEvent: newBaseEvent(TypeSceneMatched), SceneID: sceneID, Title: title, Score: score, Method: method}
}

// TorrentSelected reports the winner chosen for a scene or group.
// SceneID is empty for unmatched groups.
type TorrentSelected struct {
	BaseEvent
	SceneID string `json:"scene_id,omitempty"`
	Title   string `json:"title"`
	Seeders int    `json:"seeders"`
}

// NewTorrentSelected creates a TorrentSelected event.
func NewTorrentSelected(sceneID, title string, seeders int) TorrentSelected {
	return TorrentSelected{BaseEvent: newBaseEvent(TypeTorrentSelected), SceneID: sceneID, Title: title, Seeders: seeders}
}

// GroupRejected reports an unmatched group dropped by the spam filter.
type GroupRejected struct {
	BaseEvent
	Title   string `json:"title"`
	Members int    `json:"members"`
}

// NewGroupRejected creates a GroupRejected event.
func NewGroupRejected(title string, members int) GroupRejected {
	return GroupRejected{BaseEvent: newBaseEvent(TypeGroupRejected), Title: title, Members: members}
}
