package store

// Turn is a single message exchange unit in a conversation.
type Turn struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Session represents the active per-identity conversation state in memory.
type Session struct {
	Key         string   `json:"key"` // normalized identity key
	DisplayName string   `json:"display_name"`
	Likes       []string `json:"likes"`
	History     []Turn   `json:"history"`
}

// AddLike appends a preference if it is not already present.
// Dedup is exact-string and case-sensitive as captured.
func (s *Session) AddLike(like string) bool {
	for _, l := range s.Likes {
		if l == like {
			return false
		}
	}
	s.Likes = append(s.Likes, like)
	return true
}
