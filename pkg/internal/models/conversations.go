package models

import "time"

type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	SenderID  string    `json:"senderId"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is a two-party message thread. Participants are value
// copies taken when the thread is opened; messages are kept in insertion
// order.
type Conversation struct {
	ID           string    `json:"id"`
	Participants [2]User   `json:"participants"`
	Messages     []Message `json:"messages"`
}

// LastActivity is the timestamp of the newest message, or the zero time
// for an empty thread so it sorts behind every active one.
func (c Conversation) LastActivity() time.Time {
	if len(c.Messages) == 0 {
		return time.Time{}
	}
	return c.Messages[len(c.Messages)-1].Timestamp
}

// Other returns the participant that is not the given user.
func (c Conversation) Other(userID string) User {
	if c.Participants[0].ID == userID {
		return c.Participants[1]
	}
	return c.Participants[0]
}

// Has reports whether the given user is one of the two participants.
func (c Conversation) Has(userID string) bool {
	return c.Participants[0].ID == userID || c.Participants[1].ID == userID
}
