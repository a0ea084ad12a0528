package tenant

import "fmt"

// Key identifies the isolation partition a request runs in. An empty Scope
// is the legacy global scope used by callers that authenticate without a
// scoped API key.
type Key struct {
	UserID string `json:"user_id"`
	Scope  string `json:"scope"`
}

func New(userID, scope string) Key {
	return Key{UserID: userID, Scope: scope}
}

func (k Key) IsGlobal() bool {
	return k.Scope == ""
}

func (k Key) String() string {
	if k.IsGlobal() {
		return fmt.Sprintf("%s@global", k.UserID)
	}
	return fmt.Sprintf("%s@%s", k.UserID, k.Scope)
}
