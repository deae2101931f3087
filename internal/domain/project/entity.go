package project

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusDone       Status = "Done"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted, StatusDone:
		return Status(s), true
	}
	return "", false
}

// IsTerminal reports whether a status counts as finished. Completed and
// Done are synonyms; aggregates must treat both as terminal.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusDone
}

// Project references employees by name and teams by id. A name that no
// longer resolves to an employee reads as absent, never an error.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Assignees    []string `json:"assignees"`
	AssignedTeam string   `json:"assignedTeam,omitempty"`
	Status       Status   `json:"status"`
	Deadline     string   `json:"deadline,omitempty"`
}
