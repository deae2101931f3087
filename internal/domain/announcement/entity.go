package announcement

import "time"

// Announcement is immutable once posted: there is no edit or delete flow.
type Announcement struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
	Author  string    `json:"author"`
}
