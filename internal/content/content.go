// Package content holds the static tables the site is built from: the
// resource library, forum topics, and the mock posts each topic starts with.
package content

import (
	"time"

	"mindhub/internal/models"
)

// Resources returns the built-in resource library.
func Resources() []models.Resource {
	return []models.Resource{
		{
			ID:          "1",
			Title:       "Understanding Anxiety",
			Description: "Learn about the causes, symptoms, and coping strategies for anxiety. This comprehensive guide covers everything from understanding triggers to practical techniques for managing anxious thoughts.",
			Link:        "#",
			Category:    "Education",
		},
		{
			ID:          "2",
			Title:       "Mindfulness & Meditation",
			Description: "Discover the power of mindfulness and meditation for mental wellbeing. Includes guided exercises and tips for building a sustainable practice.",
			Link:        "#",
			Category:    "Self-Help",
		},
		{
			ID:          "3",
			Title:       "Building Healthy Relationships",
			Description: "Explore strategies for developing and maintaining healthy relationships that support your mental health. Learn about communication, boundaries, and connection.",
			Link:        "#",
			Category:    "Relationships",
		},
		{
			ID:          "4",
			Title:       "Sleep & Mental Health",
			Description: "Understand the crucial connection between sleep and mental health. Get practical tips for improving sleep quality and establishing healthy routines.",
			Link:        "#",
			Category:    "Wellness",
		},
		{
			ID:          "5",
			Title:       "Stress Management Techniques",
			Description: "A collection of evidence-based stress management techniques including breathing exercises, progressive muscle relaxation, and cognitive reframing.",
			Link:        "#",
			Category:    "Self-Help",
		},
		{
			ID:          "6",
			Title:       "When to Seek Professional Help",
			Description: "Learn to recognize when professional support might be beneficial and how to take the first steps toward getting help.",
			Link:        "#",
			Category:    "Professional Help",
		},
	}
}

// ForumTopics returns the built-in discussion boards.
func ForumTopics() []models.ForumTopic {
	return []models.ForumTopic{
		{
			ID:          "general",
			Title:       "General Support",
			Description: "A safe space for sharing experiences and supporting each other through life's challenges.",
			Icon:        "💬",
			PostCount:   128,
		},
		{
			ID:          "anxiety-depression",
			Title:       "Anxiety & Depression Support",
			Description: "Connect with others who understand what you're going through. Share coping strategies and find encouragement.",
			Icon:        "🤗",
			PostCount:   256,
		},
		{
			ID:          "student-work",
			Title:       "Student & Work Stress",
			Description: "Discuss academic pressure, workplace challenges, and finding balance in demanding environments.",
			Icon:        "📚",
			PostCount:   89,
		},
		{
			ID:          "motivation",
			Title:       "Motivation & Positivity",
			Description: "Share uplifting stories, motivational tips, and positive affirmations to inspire each other.",
			Icon:        "✨",
			PostCount:   167,
		},
	}
}

// SeedPosts returns the mock posts, dated relative to now.
func SeedPosts(now time.Time) []models.ForumPost {
	seed := []struct {
		topic   string
		author  string
		content string
		age     time.Duration
	}{
		{"general", models.AnonymousAuthor, "Just wanted to share that today was a good day. Small wins matter! 🌟", 1 * time.Hour},
		{"general", "HopefulHeart", "Feeling grateful for this community. Its comforting to know we are not alone in our struggles.", 2 * time.Hour},
		{"anxiety-depression", "RecoveryPath", "Does anyone have tips for managing morning anxiety? The first hour after waking up is always the hardest for me.", 4 * time.Hour},
		{"student-work", "BusyBee", "Finals week is here and I am overwhelmed. Any study break suggestions that actually help you relax?", 8 * time.Hour},
		{"motivation", "DailyGratitude", `"The only way out is through." - Robert Frost. This quote helps me remember that difficult times are temporary. 💪`, 12 * time.Hour},
	}

	posts := make([]models.ForumPost, len(seed))
	for i, s := range seed {
		posts[i] = models.ForumPost{
			TopicID:   s.topic,
			Author:    s.author,
			Content:   s.content,
			CreatedAt: now.Add(-s.age),
			Replies:   []models.ForumReply{},
		}
	}
	return posts
}

// QuickAction is a canned chat message offered beside the chat box.
type QuickAction struct {
	Icon  string
	Label string
}

// QuickActions returns the chat page shortcuts.
func QuickActions() []QuickAction {
	return []QuickAction{
		{Icon: "🌬️", Label: "I feel anxious"},
		{Icon: "💙", Label: "I need help"},
		{Icon: "📅", Label: "Book Appointment"},
	}
}

// Feature is a dashboard card.
type Feature struct {
	Title       string
	Description string
	Path        string
	Icon        string
}

// Features returns the dashboard cards in display order.
func Features() []Feature {
	return []Feature{
		{"Chatbot", "Talk to our AI companion for support and coping strategies", "/chatbot", "💬"},
		{"Mental Health Screening", "Take a quick self-assessment to understand your wellbeing", "/screening", "📋"},
		{"Book Appointment", "Schedule a session with a mental health professional", "/appointment", "📅"},
		{"Resources", "Access helpful articles, guides, and educational materials", "/resources", "📖"},
		{"Peer Support Forum", "Connect with others who understand what you're going through", "/forum", "👥"},
	}
}
