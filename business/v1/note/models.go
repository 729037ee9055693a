package note

import "io"

// NoteFile is the externally visible projection of a note record: the id,
// the title, and the URL the content resolves under. The row shape never
// leaves this package.
type NoteFile struct {
	NoteId uint64 `json:"note_id" example:"1"`
	Title  string `json:"title" example:"Shift Log"`
	Url    string `json:"url" example:"static/3f2c9a107c4b4d0fb2e15f30a84c11de.md"`
}

// NewNote carries everything needed to create a note. Content is drained
// exactly once, into the static file store.
type NewNote struct {
	AccountId uint64
	Title     string
	Content   io.Reader
}

// Event is the envelope consumed from the messaging queue.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// CreateEvent is the payload of a "create" Event.
type CreateEvent struct {
	AccountId uint64 `json:"account_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}
