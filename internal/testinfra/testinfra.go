package testinfra

import (
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
)

// ChatRequest is the subset of a chat completion request body the tests inspect.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int64         `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reply describes what the fake provider sends back for a single call.
type Reply struct {
	Status int
	Body   string
}

// FakeOpenAI is an httptest server speaking the chat completions endpoint.
type FakeOpenAI struct {
	*httptest.Server

	mu       sync.Mutex
	reply    Reply
	requests []ChatRequest
	headers  []http.Header
}

func NewFakeOpenAI() *FakeOpenAI {
	f := &FakeOpenAI{reply: SuccessReply("")}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

// BaseURL is suitable for OPENAI_BASE_URL.
func (f *FakeOpenAI) BaseURL() string {
	return f.URL + "/v1/"
}

func (f *FakeOpenAI) SetReply(reply Reply) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reply = reply
}

func (f *FakeOpenAI) Requests() []ChatRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ChatRequest(nil), f.requests...)
}

func (f *FakeOpenAI) Headers() []http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]http.Header(nil), f.headers...)
}

func (f *FakeOpenAI) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/v1/chat/completions" {
		http.NotFound(w, r)
		return
	}
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Panicf("fake openai: decode request: %v", err)
	}

	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.headers = append(f.headers, r.Header.Clone())
	reply := f.reply
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	_, _ = w.Write([]byte(reply.Body))
}

func SuccessReply(content string) Reply {
	body, err := json.Marshal(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	})
	if err != nil {
		log.Panicf("fake openai: marshal reply: %v", err)
	}
	return Reply{Status: http.StatusOK, Body: string(body)}
}

func ErrorReply(status int) Reply {
	return Reply{
		Status: status,
		Body:   `{"error":{"message":"upstream failure","type":"server_error","param":null,"code":null}}`,
	}
}
