package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"mindhub/internal/models"
)

func testForum() *Forum {
	now := time.Now()
	return NewForum(
		[]models.ForumTopic{
			{ID: "general", Title: "General Support", PostCount: 2},
			{ID: "motivation", Title: "Motivation & Positivity"},
		},
		[]models.ForumPost{
			{TopicID: "general", Author: "Older", Content: "older", CreatedAt: now.Add(-2 * time.Hour)},
			{TopicID: "general", Author: "Newer", Content: "newer", CreatedAt: now.Add(-1 * time.Hour)},
			{TopicID: "missing", Author: "Nobody", Content: "dropped", CreatedAt: now},
		},
	)
}

func TestForum_SeedOrderedNewestFirst(t *testing.T) {
	f := testForum()

	posts, err := f.Posts(context.Background(), "general")
	if err != nil {
		t.Fatalf("Posts() error = %v", err)
	}
	if len(posts) != 2 || posts[0].Author != "Newer" {
		t.Fatalf("posts = %+v", posts)
	}
	if posts[0].ID == uuid.Nil {
		t.Error("seed post was not assigned an id")
	}
}

func TestForum_CreatePost(t *testing.T) {
	ctx := context.Background()
	f := testForum()

	post, err := f.CreatePost(ctx, "general", "river", "  Small wins matter  ")
	if err != nil {
		t.Fatalf("CreatePost() error = %v", err)
	}
	if post.Content != "Small wins matter" {
		t.Errorf("Content = %q", post.Content)
	}

	posts, _ := f.Posts(ctx, "general")
	if posts[0].ID != post.ID {
		t.Error("new post is not first")
	}

	topic, _ := f.Topic(ctx, "general")
	if topic.PostCount != 3 {
		t.Errorf("PostCount = %d, want 3", topic.PostCount)
	}
}

func TestForum_Errors(t *testing.T) {
	ctx := context.Background()
	f := testForum()

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"blank post", func() error { _, err := f.CreatePost(ctx, "general", "a", "   "); return err }, ErrEmptyContent},
		{"unknown topic post", func() error { _, err := f.CreatePost(ctx, "nope", "a", "x"); return err }, ErrTopicNotFound},
		{"unknown topic list", func() error { _, err := f.Posts(ctx, "nope"); return err }, ErrTopicNotFound},
		{"unknown topic get", func() error { _, err := f.Topic(ctx, "nope"); return err }, ErrTopicNotFound},
		{"unknown post reply", func() error { _, err := f.AddReply(ctx, "general", uuid.New(), "a", "x"); return err }, ErrPostNotFound},
		{"blank reply", func() error { _, err := f.AddReply(ctx, "general", uuid.New(), "a", ""); return err }, ErrEmptyContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestForum_AddReply(t *testing.T) {
	ctx := context.Background()
	f := testForum()

	post, _ := f.CreatePost(ctx, "motivation", "river", "keep going")
	reply, err := f.AddReply(ctx, "motivation", post.ID, "sky", "you got this")
	if err != nil {
		t.Fatalf("AddReply() error = %v", err)
	}
	if reply.PostID != post.ID {
		t.Errorf("PostID = %s, want %s", reply.PostID, post.ID)
	}

	posts, _ := f.Posts(ctx, "motivation")
	if len(posts[0].Replies) != 1 || posts[0].Replies[0].Content != "you got this" {
		t.Errorf("replies = %+v", posts[0].Replies)
	}
}
