package api

import "time"

// Message represents a single direct message
type Message struct {
	ID          ID        `json:"id"`
	SenderID    ID        `json:"senderId"`
	RecipientID ID        `json:"recipientId"`
	Text        string    `json:"text"`
	SentAt      time.Time `json:"sentAt"`
}

// Conversation represents an inbox entry: the peer plus the latest message
type Conversation struct {
	Peer        UserSummary `json:"peer"`
	LastMessage *Message    `json:"lastMessage,omitempty"`
	UnreadCount int         `json:"unreadCount,omitempty"`
}

// SendMessageRequest represents POST /accounts/chats/{userId}
type SendMessageRequest struct {
	Text string `json:"text"`
}
