package models

// ChatReplyResponse is the JSON answer to a chat message.
type ChatReplyResponse struct {
	Reply    string `json:"reply"`
	Rule     string `json:"rule"`
	Redirect string `json:"redirect,omitempty"`
}

// ScreeningResultResponse contains a scored screening for the API.
type ScreeningResultResponse struct {
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
	Answered int    `json:"answered"`
	Complete bool   `json:"complete"`
	Severity string `json:"severity"`
	Tone     string `json:"tone"`
	Guidance string `json:"guidance"`
}

// SessionResponse describes the signed-in user.
type SessionResponse struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}
