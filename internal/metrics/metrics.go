package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	chatReplies = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mindhub_chat_replies_total",
		Help: "Chat replies sent, by the rule that produced them",
	}, []string{"rule"})

	screeningsCompleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mindhub_screenings_completed_total",
		Help: "Completed PHQ-9 screenings by severity band",
	}, []string{"severity"})

	appointmentsBooked = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mindhub_appointments_booked_total",
		Help: "Appointments booked",
	})

	forumPosts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mindhub_forum_posts_total",
		Help: "Forum posts created by topic",
	}, []string{"topic"})

	conversationsPruned = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mindhub_conversations_pruned_total",
		Help: "Idle chat conversations evicted from memory",
	})
)

var registerOnce sync.Once

// Init registers the application collectors with the default registry.
// Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(chatReplies, screeningsCompleted, appointmentsBooked, forumPosts, conversationsPruned)
	})
}

// RecordChatReply counts a chat reply produced by rule.
func RecordChatReply(rule string) {
	chatReplies.WithLabelValues(rule).Inc()
}

// RecordScreening counts a completed screening.
func RecordScreening(severity string) {
	screeningsCompleted.WithLabelValues(severity).Inc()
}

// RecordAppointment counts a booked appointment.
func RecordAppointment() {
	appointmentsBooked.Inc()
}

// RecordForumPost counts a new post in topic.
func RecordForumPost(topic string) {
	forumPosts.WithLabelValues(topic).Inc()
}

// RecordConversationsPruned counts evicted conversations.
func RecordConversationsPruned(n int) {
	if n > 0 {
		conversationsPruned.Add(float64(n))
	}
}
