package entity

// Chat roles as the conversation model expects them
const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// ChatTurn is one message in a chat session history
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
