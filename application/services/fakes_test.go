package services

import (
	"context"
	"fmt"
	"path"
	"sync"

	"github.com/Hwang9170/demo-llm-hack/application/ports/outbound"
	"github.com/Hwang9170/demo-llm-hack/domain"
)

// inlineDispatcher runs submitted tasks on the calling goroutine so tests
// stay deterministic.
type inlineDispatcher struct{}

func (inlineDispatcher) Submit(task func()) error {
	task()
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string)                                           {}
func (noopLogger) InfoWithFields(string, map[string]interface{})         {}
func (noopLogger) Error(error, string)                                   {}
func (noopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (noopLogger) Debug(string)                                          {}
func (noopLogger) DebugWithFields(string, map[string]interface{})        {}
func (noopLogger) Warn(string)                                           {}
func (noopLogger) WarnWithFields(string, map[string]interface{})         {}

type fakeStoryWriter struct {
	story string
	err   error
	calls int
}

func (f *fakeStoryWriter) WriteStory(_ context.Context, _ domain.StoryRequest) (string, error) {
	f.calls++
	return f.story, f.err
}

type fakeSpeechSynthesizer struct {
	audio   []byte
	err     error
	calls   int
	lastReq outbound.SynthesizeRequest
}

func (f *fakeSpeechSynthesizer) Synthesize(_ context.Context, req outbound.SynthesizeRequest) ([]byte, error) {
	f.calls++
	f.lastReq = req
	return f.audio, f.err
}

type fakeImageGenerator struct {
	mu      sync.Mutex
	calls   int
	prompts []string
	// failOn holds 1-based call ordinals that should fail; with the inline
	// dispatcher calls arrive in paragraph order.
	failOn map[int]bool
}

func (f *fakeImageGenerator) Generate(_ context.Context, prompt string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.failOn[f.calls] {
		return nil, &domain.EmptyResponseError{Provider: "imagen"}
	}
	return []byte("png"), nil
}

type fakeMediaStore struct {
	mu           sync.Mutex
	audioExists  bool
	audioSaves   int
	imageSaves   int
	lastAudio    []byte
	lastAudioKey string
	saveImageErr error
}

func (f *fakeMediaStore) AudioExists(string) bool {
	return f.audioExists
}

func (f *fakeMediaStore) AudioPublicPath(name string) string {
	return path.Join("/static/tts", "tts_"+domain.SanitizeTitle(name)+".mp3")
}

func (f *fakeMediaStore) SaveAudio(name string, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.audioSaves++
	f.lastAudio = data
	f.lastAudioKey = name
	return f.AudioPublicPath(name), nil
}

func (f *fakeMediaStore) SaveImage(name string, index int, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveImageErr != nil {
		return "", f.saveImageErr
	}
	f.imageSaves++
	return fmt.Sprintf("/static/images/%s_%d.png", domain.SanitizeTitle(name), index), nil
}

type fakeIdentityProvider struct {
	token        string
	exchangeErr  error
	profile      []byte
	profileErr   error
	exchanges    int
	profileCalls int
}

func (f *fakeIdentityProvider) ExchangeCode(_ context.Context, _ string, _ string) (string, error) {
	f.exchanges++
	return f.token, f.exchangeErr
}

func (f *fakeIdentityProvider) FetchProfile(_ context.Context, _ string) ([]byte, error) {
	f.profileCalls++
	return f.profile, f.profileErr
}
