package chat

// Roles of a conversation turn
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// HistoryWindow is how many previous turns accompany each question
const HistoryWindow = 4

// FallbackMessage is shown instead of an answer when the assistant fails
const FallbackMessage = "Lo siento, ha ocurrido un error al procesar tu consulta. Por favor, inténtalo de nuevo."

// Message is one conversation turn
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Status is the assistant's health report
type Status struct {
	OK            bool `json:"ok"`
	ManualCargado bool `json:"manualCargado"` // the HR manual is loaded
}

// Request is the body of POST /chat
type Request struct {
	Message string    `json:"message"`
	History []Message `json:"history"`
}

// Reply is the body returned by POST /chat
type Reply struct {
	Answer        string `json:"answer"`
	ManualCargado *bool  `json:"manualCargado,omitempty"`
}
