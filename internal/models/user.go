package models

// User is the single active identity for a session. It is created by the
// auth flows (signup, signin, anonymous entry) and replaced wholesale on
// logout. Only the session facade mutates it.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	IsAnonymous bool   `json:"is_anonymous"`
}
