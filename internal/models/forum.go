package models

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousAuthor is shown for posts shared anonymously.
const AnonymousAuthor = "Anonymous User"

// ForumTopic is a discussion board.
type ForumTopic struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	PostCount   int    `yaml:"post_count" json:"post_count"`
}

// ForumPost is a post within a topic, newest first in listings.
type ForumPost struct {
	ID        uuid.UUID    `json:"id"`
	TopicID   string       `json:"topic_id"`
	Author    string       `json:"author"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	Replies   []ForumReply `json:"replies"`
}

// AuthorInitial returns the avatar letter for the post.
func (p *ForumPost) AuthorInitial() string {
	return Initial(p.Author)
}

// ForumReply answers a post.
type ForumReply struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
