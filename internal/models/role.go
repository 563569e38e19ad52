package models

// Role identifies the conversational position a prompt file plays within a
// prompt set.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleContext   Role = "context"
)

// Role keys used by the matcher for files that carry no role prefix or whose
// stem could not be parsed. These are grouping keys, not conversational
// roles; the workspace maps SingleFileKey onto RoleUser when it assembles a
// Template.
const (
	SingleFileKey = "prompt"
	UnknownKey    = "unknown"
)

// DefaultRoles is the role set recognized by the default naming convention.
func DefaultRoles() []string {
	return []string{
		string(RoleSystem),
		string(RoleUser),
		string(RoleAssistant),
		string(RoleContext),
	}
}

// ParseRole converts a role key into a Role. ok is false for keys that do
// not name a known conversational role (including UnknownKey).
func ParseRole(key string) (Role, bool) {
	switch Role(key) {
	case RoleSystem, RoleUser, RoleAssistant, RoleContext:
		return Role(key), true
	}
	return "", false
}

// Order returns the position of the role when assembling a message sequence:
// system first, then context, then user, then assistant.
func (r Role) Order() int {
	switch r {
	case RoleSystem:
		return 0
	case RoleContext:
		return 1
	case RoleUser:
		return 2
	case RoleAssistant:
		return 3
	}
	return 4
}
