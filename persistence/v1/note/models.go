package note

// Note is a metadata row in tblNotes. The content itself lives in the
// static file store under the key derived from Url.
type Note struct {
	NoteId    uint64
	AccountId uint64
	Title     string
	Url       string
}
