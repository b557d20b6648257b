package ai_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Builder-Lawyers/text-corrector/internal/application/errs"
	ai "github.com/Builder-Lawyers/text-corrector/internal/infra/client/openai"
	"github.com/Builder-Lawyers/text-corrector/internal/testinfra"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newClient(fake *testinfra.FakeOpenAI) *ai.OpenAIClient {
	return ai.NewOpenAIClient(ai.OpenAIConfig{
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		BaseURL:     fake.BaseURL(),
		MaxTokens:   150,
		Temperature: 0.7,
	})
}

func Test_CorrectText_Given_Success_Reply_When_Called_Then_Return_First_Choice_Unchanged(t *testing.T) {
	fake := testinfra.NewFakeOpenAI()
	defer fake.Close()
	fake.SetReply(testinfra.SuccessReply("  Hello, world!\n"))

	corrected, err := newClient(fake).CorrectText(context.Background(), "hello world")
	require.NoError(t, err)
	require.Equal(t, "  Hello, world!\n", corrected)
}

func Test_CorrectText_Given_Text_When_Called_Then_Send_Single_Fixed_Request(t *testing.T) {
	fake := testinfra.NewFakeOpenAI()
	defer fake.Close()
	fake.SetReply(testinfra.SuccessReply("ok"))

	_, err := newClient(fake).CorrectText(context.Background(), "helo wrld")
	require.NoError(t, err)

	requests := fake.Requests()
	require.Len(t, requests, 1)
	want := testinfra.ChatRequest{
		Model: "gpt-4o-mini",
		Messages: []testinfra.ChatMessage{
			{Role: "system", Content: "You are a helpful assistant"},
			{Role: "user", Content: "Correct the following text:\n\nhelo wrld"},
		},
		MaxTokens:   150,
		Temperature: 0.7,
	}
	if diff := cmp.Diff(want, requests[0]); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "Bearer test-key", fake.Headers()[0].Get("Authorization"))
}

func Test_CorrectText_Given_Server_Error_When_Called_Then_Return_ProviderError_Without_Retry(t *testing.T) {
	fake := testinfra.NewFakeOpenAI()
	defer fake.Close()
	fake.SetReply(testinfra.ErrorReply(http.StatusInternalServerError))

	corrected, err := newClient(fake).CorrectText(context.Background(), "foo")
	require.Error(t, err)
	require.Empty(t, corrected)

	var providerErr errs.ProviderError
	require.True(t, errors.As(err, &providerErr))
	require.Equal(t, http.StatusInternalServerError, providerErr.StatusCode)
	require.Len(t, fake.Requests(), 1)
}

func Test_CorrectText_Given_Unauthorized_When_Called_Then_Return_ProviderError(t *testing.T) {
	fake := testinfra.NewFakeOpenAI()
	defer fake.Close()
	fake.SetReply(testinfra.ErrorReply(http.StatusUnauthorized))

	_, err := newClient(fake).CorrectText(context.Background(), "foo")

	var providerErr errs.ProviderError
	require.True(t, errors.As(err, &providerErr))
	require.Equal(t, http.StatusUnauthorized, providerErr.StatusCode)
}

func Test_CorrectText_Given_No_Choices_When_Called_Then_Return_ErrNoChoices(t *testing.T) {
	fake := testinfra.NewFakeOpenAI()
	defer fake.Close()
	fake.SetReply(testinfra.Reply{Status: http.StatusOK, Body: `{"id":"x","object":"chat.completion","choices":[]}`})

	_, err := newClient(fake).CorrectText(context.Background(), "foo")
	require.ErrorIs(t, err, errs.ErrNoChoices)
}

func Test_CorrectText_Given_Malformed_Body_When_Called_Then_Return_Error(t *testing.T) {
	fake := testinfra.NewFakeOpenAI()
	defer fake.Close()
	fake.SetReply(testinfra.Reply{Status: http.StatusOK, Body: `{"choices": [`})

	_, err := newClient(fake).CorrectText(context.Background(), "foo")

	var providerErr errs.ProviderError
	require.True(t, errors.As(err, &providerErr))
}

func Test_CorrectText_Given_Unreachable_Provider_When_Called_Then_Return_ProviderError(t *testing.T) {
	fake := testinfra.NewFakeOpenAI()
	baseURL := fake.BaseURL()
	fake.Close()

	client := ai.NewOpenAIClient(ai.OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: baseURL, MaxTokens: 150})
	_, err := client.CorrectText(context.Background(), "foo")

	var providerErr errs.ProviderError
	require.True(t, errors.As(err, &providerErr))
	require.Zero(t, providerErr.StatusCode)
}

func Test_NewOpenAIConfig_Given_Env_When_Called_Then_Read_Overrides_And_Defaults(t *testing.T) {
	t.Setenv("OPENAI_KEY", "sk-test")
	t.Setenv("OPENAI_TOKENS", "not-a-number")
	t.Setenv("OPENAI_MODEL", "")

	cfg := ai.NewOpenAIConfig()

	require.Equal(t, "sk-test", cfg.APIKey)
	require.Equal(t, "gpt-4o-mini", cfg.Model)
	require.Equal(t, int64(150), cfg.MaxTokens)
	require.Equal(t, 0.7, cfg.Temperature)
}

func Test_CorrectText_Given_Null_Body_When_Called_Then_Return_ErrNoChoices(t *testing.T) {
	fake := testinfra.NewFakeOpenAI()
	defer fake.Close()
	fake.SetReply(testinfra.Reply{Status: http.StatusOK, Body: `null`})

	corrected, err := newClient(fake).CorrectText(context.Background(), "foo")
	require.ErrorIs(t, err, errs.ErrNoChoices)
	require.Empty(t, corrected)
}

func Test_CorrectText_Given_Choice_Without_Message_When_Called_Then_Return_ErrNoContent(t *testing.T) {
	for _, body := range []string{
		`{"choices":[{}]}`,
		`{"choices":[{"index":0}]}`,
		`{"choices":[{"index":0,"message":{"role":"assistant"}}]}`,
	} {
		fake := testinfra.NewFakeOpenAI()
		fake.SetReply(testinfra.Reply{Status: http.StatusOK, Body: body})

		_, err := newClient(fake).CorrectText(context.Background(), "foo")
		fake.Close()

		require.ErrorIs(t, err, errs.ErrNoContent, body)
		var providerErr errs.ProviderError
		require.True(t, errors.As(err, &providerErr), body)
	}
}

func Test_CorrectText_Given_Empty_Content_When_Called_Then_Return_Empty_String(t *testing.T) {
	fake := testinfra.NewFakeOpenAI()
	defer fake.Close()
	fake.SetReply(testinfra.SuccessReply(""))

	corrected, err := newClient(fake).CorrectText(context.Background(), "foo")
	require.NoError(t, err)
	require.Equal(t, "", corrected)
}
