package entity

const ActivityNotePrefix = "[SalesIQ Widget] "

type Note struct {
	ID        string `json:"id"`
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"`
}

type NewNote struct {
	ContactID string `json:"contactId"`
	Body      string `json:"noteBody"`
}

type Activity struct {
	Type      string `json:"type"`
	ID        string `json:"id,omitempty"`
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"`
}

// MaxActivities caps the activity timeline.
const MaxActivities = 10
