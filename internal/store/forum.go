package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"mindhub/internal/models"
)

// Forum keeps topics and their posts, newest post first.
type Forum struct {
	mu     sync.RWMutex
	topics []models.ForumTopic
	posts  map[string][]*models.ForumPost
	now    func() time.Time
}

// NewForum creates a forum with fixed topics and seeded posts. Seed posts
// for unknown topics are dropped.
func NewForum(topics []models.ForumTopic, seed []models.ForumPost) *Forum {
	f := &Forum{
		topics: append([]models.ForumTopic(nil), topics...),
		posts:  make(map[string][]*models.ForumPost, len(topics)),
		now:    time.Now,
	}

	for i := range seed {
		p := seed[i]
		if _, ok := f.topicIndex(p.TopicID); !ok {
			continue
		}
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		f.posts[p.TopicID] = append(f.posts[p.TopicID], &p)
	}
	for id := range f.posts {
		posts := f.posts[id]
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		})
	}

	return f
}

func (f *Forum) topicIndex(id string) (int, bool) {
	for i, t := range f.topics {
		if t.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Topics returns all topics in display order.
func (f *Forum) Topics(ctx context.Context) []models.ForumTopic {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]models.ForumTopic(nil), f.topics...)
}

// Topic returns a single topic.
func (f *Forum) Topic(ctx context.Context, id string) (models.ForumTopic, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	i, ok := f.topicIndex(id)
	if !ok {
		return models.ForumTopic{}, ErrTopicNotFound
	}
	return f.topics[i], nil
}

// Posts returns copies of a topic's posts, newest first.
func (f *Forum) Posts(ctx context.Context, topicID string) ([]models.ForumPost, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if _, ok := f.topicIndex(topicID); !ok {
		return nil, ErrTopicNotFound
	}

	posts := f.posts[topicID]
	out := make([]models.ForumPost, len(posts))
	for i, p := range posts {
		out[i] = *p
		out[i].Replies = append([]models.ForumReply(nil), p.Replies...)
	}
	return out, nil
}

// CreatePost adds a post at the top of a topic and bumps its post count.
func (f *Forum) CreatePost(ctx context.Context, topicID, author, content string) (*models.ForumPost, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	i, ok := f.topicIndex(topicID)
	if !ok {
		return nil, ErrTopicNotFound
	}

	post := &models.ForumPost{
		ID:        uuid.New(),
		TopicID:   topicID,
		Author:    author,
		Content:   content,
		CreatedAt: f.now(),
		Replies:   []models.ForumReply{},
	}
	f.posts[topicID] = append([]*models.ForumPost{post}, f.posts[topicID]...)
	f.topics[i].PostCount++

	out := *post
	return &out, nil
}

// AddReply appends a reply to a post.
func (f *Forum) AddReply(ctx context.Context, topicID string, postID uuid.UUID, author, content string) (*models.ForumReply, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.topicIndex(topicID); !ok {
		return nil, ErrTopicNotFound
	}

	for _, p := range f.posts[topicID] {
		if p.ID != postID {
			continue
		}
		reply := models.ForumReply{
			ID:        uuid.New(),
			PostID:    postID,
			Author:    author,
			Content:   content,
			CreatedAt: f.now(),
		}
		p.Replies = append(p.Replies, reply)
		return &reply, nil
	}

	return nil, ErrPostNotFound
}
