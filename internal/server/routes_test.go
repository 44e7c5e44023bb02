package server_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"mindhub/internal/chatbot"
	"mindhub/internal/metrics"
	"mindhub/internal/models"
	"mindhub/internal/screening"
	"mindhub/internal/testutil"
)

func isRedirect(code int) bool {
	return code == fiber.StatusSeeOther || code == fiber.StatusFound
}

func TestPagesRequireLogin(t *testing.T) {
	app := testutil.NewApp(t, nil)

	for _, path := range []string{"/", "/chatbot", "/screening", "/appointment", "/forum", "/forum/general", "/resources"} {
		t.Run(path, func(t *testing.T) {
			resp := testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, path, nil), nil)
			if !isRedirect(resp.StatusCode) {
				t.Fatalf("status = %d, want redirect", resp.StatusCode)
			}
			if loc := resp.Header.Get("Location"); loc != "/login" {
				t.Errorf("Location = %q, want /login", loc)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	app := testutil.NewApp(t, nil)

	t.Run("empty credentials re-render the form", func(t *testing.T) {
		resp := testutil.Do(t, app.App, testutil.PostForm("/login", url.Values{"username": {"river"}}), nil)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		if body := testutil.Body(t, resp); !strings.Contains(body, "Please enter both username and password") {
			t.Error("login page should show the error")
		}
	})

	t.Run("any credentials sign in", func(t *testing.T) {
		cookies := testutil.Login(t, app.App, "river")

		resp := testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/", nil), cookies)
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("dashboard status = %d", resp.StatusCode)
		}
		body := testutil.Body(t, resp)
		for _, want := range []string{"Welcome back, river", "/chatbot", "/screening", "/appointment", "/resources", "/forum"} {
			if !strings.Contains(body, want) {
				t.Errorf("dashboard missing %q", want)
			}
		}
	})

	t.Run("logout ends the session", func(t *testing.T) {
		cookies := testutil.Login(t, app.App, "river")
		testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/logout", nil), cookies)

		resp := testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/", nil), cookies)
		if !isRedirect(resp.StatusCode) {
			t.Errorf("status after logout = %d, want redirect", resp.StatusCode)
		}
	})

	t.Run("returns to the requested page", func(t *testing.T) {
		resp := testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/resources", nil), nil)
		cookies := resp.Cookies()

		resp = testutil.Do(t, app.App, testutil.PostForm("/login", url.Values{
			"username": {"river"},
			"password": {"secret"},
		}), cookies)
		if loc := resp.Header.Get("Location"); loc != "/resources" {
			t.Errorf("Location = %q, want /resources", loc)
		}
	})
}

func TestChatPage(t *testing.T) {
	app := testutil.NewApp(t, nil)
	cookies := testutil.Login(t, app.App, "river")

	resp := testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/chatbot", nil), cookies)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := testutil.Body(t, resp)
	for _, want := range []string{"I feel anxious", "I need help", "Book Appointment", "988"} {
		if !strings.Contains(body, want) {
			t.Errorf("chat page missing %q", want)
		}
	}

	t.Run("htmx message gets a reply fragment", func(t *testing.T) {
		req := testutil.PostForm("/chatbot", url.Values{"message": {"I am so worried"}})
		req.Header.Set("HX-Request", "true")
		resp := testutil.Do(t, app.App, req, cookies)
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		body := testutil.Body(t, resp)
		if !strings.Contains(body, "I am so worried") {
			t.Error("fragment should echo the user message")
		}
		if !strings.Contains(body, "breathing exercise") {
			t.Error("fragment should contain the anxiety reply")
		}
		if app.Deps.Conversations.Len() != 1 {
			t.Errorf("conversations = %d, want 1", app.Deps.Conversations.Len())
		}
	})

	t.Run("book appointment redirects", func(t *testing.T) {
		req := testutil.PostForm("/chatbot", url.Values{"message": {"Book Appointment"}})
		req.Header.Set("HX-Request", "true")
		resp := testutil.Do(t, app.App, req, cookies)
		if got := resp.Header.Get("HX-Redirect"); got != "/appointment" {
			t.Errorf("HX-Redirect = %q, want /appointment", got)
		}

		resp = testutil.Do(t, app.App, testutil.PostForm("/chatbot", url.Values{"message": {"please book appointment"}}), cookies)
		if loc := resp.Header.Get("Location"); loc != "/appointment" {
			t.Errorf("Location = %q, want /appointment", loc)
		}
	})

	t.Run("blank message is ignored", func(t *testing.T) {
		req := testutil.PostForm("/chatbot", url.Values{"message": {"   "}})
		req.Header.Set("HX-Request", "true")
		resp := testutil.Do(t, app.App, req, cookies)
		if resp.StatusCode != fiber.StatusNoContent {
			t.Errorf("status = %d, want 204", resp.StatusCode)
		}
	})
}

func answer(t *testing.T, app *fiber.App, cookies []*http.Cookie, value string) *http.Response {
	t.Helper()
	return testutil.Do(t, app, testutil.PostForm("/screening/next", url.Values{"value": {value}}), cookies)
}

func TestScreeningFlow(t *testing.T) {
	app := testutil.NewApp(t, nil)
	cookies := testutil.Login(t, app.App, "river")

	resp := testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/screening", nil), cookies)
	if body := testutil.Body(t, resp); !strings.Contains(body, "Question 1 of 9") {
		t.Fatal("screening should start at question 1")
	}

	resp = testutil.Do(t, app.App, testutil.PostForm("/screening/next", nil), cookies)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("missing answer status = %d, want 422", resp.StatusCode)
	}

	for _, bad := range []string{"7", "-1", "abc", "99999999999999999999"} {
		resp = answer(t, app.App, cookies, bad)
		if resp.StatusCode != fiber.StatusUnprocessableEntity {
			t.Errorf("answer %q status = %d, want 422", bad, resp.StatusCode)
		}
	}

	answer(t, app.App, cookies, "3")
	answer(t, app.App, cookies, "1")
	testutil.Do(t, app.App, testutil.PostForm("/screening/back", nil), cookies)

	resp = testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/screening", nil), cookies)
	body := testutil.Body(t, resp)
	if !strings.Contains(body, "Question 2 of 9") {
		t.Fatal("back should return to question 2")
	}
	if !strings.Contains(body, `value="1" checked`) {
		t.Error("previous answer should be preselected")
	}

	// 3+3+3+3+3 and four zeros = 15.
	for _, v := range []string{"3", "3", "3", "3", "0", "0", "0", "0"} {
		answer(t, app.App, cookies, v)
	}

	resp = testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/screening", nil), cookies)
	body = testutil.Body(t, resp)
	for _, want := range []string{">15<", "Moderately Severe", "not a diagnosis", "/appointment"} {
		if !strings.Contains(body, want) {
			t.Errorf("result page missing %q", want)
		}
	}

	testutil.Do(t, app.App, testutil.PostForm("/screening/restart", nil), cookies)
	resp = testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/screening", nil), cookies)
	if body := testutil.Body(t, resp); !strings.Contains(body, "Question 1 of 9") {
		t.Error("restart should return to question 1")
	}
}

func TestAppointmentPage(t *testing.T) {
	app := testutil.NewApp(t, nil)
	cookies := testutil.Login(t, app.App, "river")

	resp := testutil.Do(t, app.App, testutil.PostForm("/appointment", url.Values{
		"full_name": {"River Song"},
		"email":     {"river@example.com"},
	}), cookies)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("incomplete form status = %d, want 422", resp.StatusCode)
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	resp = testutil.Do(t, app.App, testutil.PostForm("/appointment", url.Values{
		"full_name": {"River Song"},
		"email":     {"river@example.com"},
		"phone":     {"555-010-0100"},
		"date":      {tomorrow},
	}), cookies)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body := testutil.Body(t, resp); !strings.Contains(body, "Appointment Confirmed!") {
		t.Error("success page not rendered")
	}

	user := models.NewLocalUser("river")
	if got := app.Deps.Appointments.ListByUser(t.Context(), user.ID); len(got) != 1 {
		t.Errorf("stored appointments = %d, want 1", len(got))
	}
}

func TestForumPages(t *testing.T) {
	app := testutil.NewApp(t, nil)
	cookies := testutil.Login(t, app.App, "river")

	resp := testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/forum/missing", nil), cookies)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("unknown topic status = %d, want 404", resp.StatusCode)
	}

	resp = testutil.Do(t, app.App, testutil.PostForm("/forum/general/posts", url.Values{"content": {"  "}}), cookies)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("blank post status = %d, want 422", resp.StatusCode)
	}

	resp = testutil.Do(t, app.App, testutil.PostForm("/forum/general/posts", url.Values{"content": {"Went for a walk today"}}), cookies)
	if !isRedirect(resp.StatusCode) {
		t.Fatalf("create post status = %d, want redirect", resp.StatusCode)
	}

	resp = testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/forum/general", nil), cookies)
	body := testutil.Body(t, resp)
	newest := strings.Index(body, "Went for a walk today")
	seeded := strings.Index(body, "Small wins matter")
	if newest < 0 || seeded < 0 || newest > seeded {
		t.Error("new post should be listed before seeded posts")
	}
	if !strings.Contains(body, "Just now") {
		t.Error("new post should be stamped Just now")
	}

	resp = testutil.Do(t, app.App, testutil.PostForm("/forum/general/posts", url.Values{
		"content":   {"Quiet post"},
		"anonymous": {"1"},
	}), cookies)
	posts, _ := app.Deps.Forum.Posts(t.Context(), "general")
	if posts[0].Author != models.AnonymousAuthor {
		t.Errorf("anonymous author = %q", posts[0].Author)
	}

	resp = testutil.Do(t, app.App, testutil.PostForm("/forum/general/posts/"+posts[0].ID.String()+"/replies", url.Values{"content": {"Hugs"}}), cookies)
	if !isRedirect(resp.StatusCode) {
		t.Errorf("reply status = %d, want redirect", resp.StatusCode)
	}
	posts, _ = app.Deps.Forum.Posts(t.Context(), "general")
	if len(posts[0].Replies) != 1 || posts[0].Replies[0].Author != "river" {
		t.Errorf("replies = %+v", posts[0].Replies)
	}
}

func TestResourcesPage(t *testing.T) {
	app := testutil.NewApp(t, nil)
	cookies := testutil.Login(t, app.App, "river")

	resp := testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/resources", nil), cookies)
	body := testutil.Body(t, resp)
	for _, want := range []string{"Understanding Anxiety", "Education", "Self-Help"} {
		if !strings.Contains(body, want) {
			t.Errorf("resources page missing %q", want)
		}
	}
}

func TestAPI_RequiresAuth(t *testing.T) {
	app := testutil.NewApp(t, nil)

	resp := testutil.Do(t, app.App, testutil.PostJSON(t, "/api/chat", map[string]string{"message": "hi"}), nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if env := testutil.DecodeEnvelope(t, resp, nil); env.Status != "error" {
		t.Errorf("envelope status = %q", env.Status)
	}

	resp = testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/api/session", nil), nil)
	var sess models.SessionResponse
	testutil.DecodeEnvelope(t, resp, &sess)
	if sess.Authenticated {
		t.Error("anonymous session should not be authenticated")
	}

	resp = testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/api/health", nil), nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("health status = %d", resp.StatusCode)
	}
}

func TestProbes(t *testing.T) {
	app := testutil.NewApp(t, nil)

	for _, path := range []string{"/healthz", "/readyz"} {
		resp := testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, path, nil), nil)
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("%s status = %d, want 200", path, resp.StatusCode)
		}
	}
}

func TestAPI_Chat(t *testing.T) {
	app := testutil.NewApp(t, nil)
	cookies := testutil.Login(t, app.App, "river")

	tests := []struct {
		name     string
		message  string
		wantCode int
		wantRule string
		redirect string
	}{
		{"anxiety", "I'm feeling ANXIOUS today", fiber.StatusOK, "anxiety", ""},
		{"first rule wins", "anxious and sad", fiber.StatusOK, "anxiety", ""},
		{"default", "the weather is nice", fiber.StatusOK, chatbot.DefaultRuleName, ""},
		{"booking", "book appointment", fiber.StatusOK, "", "/appointment"},
		{"blank", "   ", fiber.StatusBadRequest, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.Do(t, app.App, testutil.PostJSON(t, "/api/chat", map[string]string{"message": tt.message}), cookies)
			if resp.StatusCode != tt.wantCode {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantCode)
			}
			if tt.wantCode != fiber.StatusOK {
				return
			}
			var reply models.ChatReplyResponse
			testutil.DecodeEnvelope(t, resp, &reply)
			if reply.Rule != tt.wantRule {
				t.Errorf("rule = %q, want %q", reply.Rule, tt.wantRule)
			}
			if reply.Redirect != tt.redirect {
				t.Errorf("redirect = %q, want %q", reply.Redirect, tt.redirect)
			}
			if tt.redirect == "" && reply.Reply == "" {
				t.Error("reply should not be empty")
			}
		})
	}
}

func TestAPI_Screening(t *testing.T) {
	app := testutil.NewApp(t, nil)
	cookies := testutil.Login(t, app.App, "river")

	resp := testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/api/screening/questions", nil), cookies)
	var qs struct {
		Questions []screening.Question `json:"questions"`
		MaxScore  int                  `json:"max_score"`
	}
	testutil.DecodeEnvelope(t, resp, &qs)
	if len(qs.Questions) != screening.QuestionCount || qs.MaxScore != screening.MaxScore {
		t.Fatalf("questions = %d, max = %d", len(qs.Questions), qs.MaxScore)
	}

	all := func(v int) []screening.Response {
		out := make([]screening.Response, 0, screening.QuestionCount)
		for id := 1; id <= screening.QuestionCount; id++ {
			out = append(out, screening.Response{QuestionID: id, Value: v})
		}
		return out
	}

	tests := []struct {
		name         string
		responses    []screening.Response
		wantCode     int
		wantScore    int
		wantSeverity string
		wantComplete bool
	}{
		{"all zero", all(0), fiber.StatusOK, 0, "Minimal", true},
		{"all three", all(3), fiber.StatusOK, 27, "Severe", true},
		{"partial", []screening.Response{{QuestionID: 1, Value: 3}, {QuestionID: 2, Value: 2}}, fiber.StatusOK, 5, "Mild", false},
		{"duplicate superseded", []screening.Response{{QuestionID: 1, Value: 3}, {QuestionID: 1, Value: 1}}, fiber.StatusOK, 1, "Minimal", false},
		{"unknown question", []screening.Response{{QuestionID: 10, Value: 1}}, fiber.StatusBadRequest, 0, "", false},
		{"invalid value", []screening.Response{{QuestionID: 1, Value: 4}}, fiber.StatusBadRequest, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutil.Do(t, app.App, testutil.PostJSON(t, "/api/screening/score", map[string]any{"responses": tt.responses}), cookies)
			if resp.StatusCode != tt.wantCode {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantCode)
			}
			if tt.wantCode != fiber.StatusOK {
				return
			}
			var result models.ScreeningResultResponse
			testutil.DecodeEnvelope(t, resp, &result)
			if result.Score != tt.wantScore || result.Severity != tt.wantSeverity || result.Complete != tt.wantComplete {
				t.Errorf("result = %+v", result)
			}
		})
	}
}

func TestAPI_Appointments(t *testing.T) {
	app := testutil.NewApp(t, nil)
	cookies := testutil.Login(t, app.App, "river")

	resp := testutil.Do(t, app.App, testutil.PostJSON(t, "/api/appointments", map[string]string{
		"full_name": "River Song",
		"email":     "not-an-email",
		"phone":     "555-010-0100",
		"date":      "2000-01-01",
	}), cookies)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	env := testutil.DecodeEnvelope(t, resp, nil)
	if env.Fields["email"] == "" || env.Fields["date"] == "" {
		t.Errorf("fields = %v, want email and date errors", env.Fields)
	}

	resp = testutil.Do(t, app.App, testutil.PostJSON(t, "/api/appointments", map[string]string{
		"full_name": "River Song",
		"email":     "river@example.com",
		"phone":     "555-010-0100",
		"date":      time.Now().Format("2006-01-02"),
	}), cookies)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var appt models.Appointment
	testutil.DecodeEnvelope(t, resp, &appt)
	if appt.FullName != "River Song" || appt.UserID == nil {
		t.Errorf("appointment = %+v", appt)
	}

	resp = testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/api/appointments", nil), cookies)
	var list []models.Appointment
	testutil.DecodeEnvelope(t, resp, &list)
	if len(list) != 1 {
		t.Errorf("list = %d, want 1", len(list))
	}
}

func TestAPI_Forum(t *testing.T) {
	app := testutil.NewApp(t, nil)
	cookies := testutil.Login(t, app.App, "river")

	resp := testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/api/forum/topics", nil), cookies)
	var topics []models.ForumTopic
	testutil.DecodeEnvelope(t, resp, &topics)
	if len(topics) != 4 {
		t.Fatalf("topics = %d, want 4", len(topics))
	}
	before := topics[0].PostCount

	resp = testutil.Do(t, app.App, testutil.PostJSON(t, "/api/forum/topics/"+topics[0].ID+"/posts", map[string]any{"content": "Hello friends"}), cookies)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	var post models.ForumPost
	testutil.DecodeEnvelope(t, resp, &post)
	if post.Author != "river" {
		t.Errorf("author = %q, want river", post.Author)
	}

	resp = testutil.Do(t, app.App, testutil.PostJSON(t, "/api/forum/topics/"+topics[0].ID+"/posts/"+post.ID.String()+"/replies", map[string]any{"content": "Welcome", "anonymous": true}), cookies)
	var reply models.ForumReply
	testutil.DecodeEnvelope(t, resp, &reply)
	if reply.Author != models.AnonymousAuthor {
		t.Errorf("reply author = %q", reply.Author)
	}

	resp = testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/api/forum/topics", nil), cookies)
	testutil.DecodeEnvelope(t, resp, &topics)
	if topics[0].PostCount != before+1 {
		t.Errorf("post count = %d, want %d", topics[0].PostCount, before+1)
	}

	resp = testutil.Do(t, app.App, testutil.PostJSON(t, "/api/forum/topics/nope/posts", map[string]any{"content": "x"}), cookies)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("unknown topic status = %d, want 404", resp.StatusCode)
	}

	resp = testutil.Do(t, app.App, testutil.PostJSON(t, "/api/forum/topics/"+topics[0].ID+"/posts/not-a-uuid/replies", map[string]any{"content": "x"}), cookies)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("bad post id status = %d, want 400", resp.StatusCode)
	}
}

func TestAPI_Resources(t *testing.T) {
	app := testutil.NewApp(t, nil)
	cookies := testutil.Login(t, app.App, "river")

	resp := testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/api/resources", nil), cookies)
	var all []models.Resource
	testutil.DecodeEnvelope(t, resp, &all)

	resp = testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/api/resources?category=education", nil), cookies)
	var filtered []models.Resource
	testutil.DecodeEnvelope(t, resp, &filtered)

	if len(filtered) == 0 || len(filtered) >= len(all) {
		t.Fatalf("filtered = %d of %d", len(filtered), len(all))
	}
	for _, r := range filtered {
		if r.Category != "Education" {
			t.Errorf("category = %q", r.Category)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	metrics.Init()
	app := testutil.NewApp(t, nil)
	cookies := testutil.Login(t, app.App, "river")

	testutil.Do(t, app.App, testutil.PostJSON(t, "/api/chat", map[string]string{"message": "I can't sleep"}), cookies)

	resp := testutil.Do(t, app.App, httptest.NewRequest(http.MethodGet, "/metrics", nil), nil)
	body := testutil.Body(t, resp)
	if !strings.Contains(body, `mindhub_chat_replies_total{rule="sleep"}`) {
		t.Error("metrics should include the sleep rule counter")
	}
	if !strings.Contains(body, "mindhub_appointments_booked_total") {
		t.Error("metrics should include the appointments counter")
	}
}
