package models

// User is the authenticated identity persisted for a session
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// BackendUser is the raw identity shape returned by the auth/login operation
type BackendUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ChatMessage is a single turn of assistant conversation history
type ChatMessage struct {
	Role  string `json:"role"` // "user" or "model"
	Parts string `json:"parts"`
}
