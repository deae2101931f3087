package team

// Team membership is by employee name. TeamLead, if present, owns the
// authorization scope for the team and is conventionally excluded from
// Members.
type Team struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	TeamLead string   `json:"teamLead,omitempty"`
	Members  []string `json:"members"`
}

// HasMember reports whether name is in the member list.
func (t Team) HasMember(name string) bool {
	for _, m := range t.Members {
		if m == name {
			return true
		}
	}
	return false
}
