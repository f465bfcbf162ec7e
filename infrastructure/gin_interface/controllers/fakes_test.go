package controllers

import (
	"context"

	"github.com/Hwang9170/demo-llm-hack/domain"
)

type noopLogger struct{}

func (noopLogger) Info(string)                                           {}
func (noopLogger) InfoWithFields(string, map[string]interface{})         {}
func (noopLogger) Error(error, string)                                   {}
func (noopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (noopLogger) Debug(string)                                          {}
func (noopLogger) DebugWithFields(string, map[string]interface{})        {}
func (noopLogger) Warn(string)                                           {}
func (noopLogger) WarnWithFields(string, map[string]interface{})         {}

type fakePipeline struct {
	result  domain.StoryResult
	err     error
	gotReq  domain.StoryRequest
	invoked bool
}

func (f *fakePipeline) MakeStory(_ context.Context, req domain.StoryRequest) (domain.StoryResult, error) {
	f.invoked = true
	f.gotReq = req
	return f.result, f.err
}

type fakeSpeechService struct {
	audioPath string
	err       error
	gotReq    domain.SpeechRequest
	invoked   bool
}

func (f *fakeSpeechService) Speak(_ context.Context, req domain.SpeechRequest) (string, error) {
	f.invoked = true
	f.gotReq = req
	return f.audioPath, f.err
}

type fakeLoginFlow struct {
	authorizeURL string
	result       domain.LoginResult
	err          error
	gotCode      string
	gotState     string
}

func (f *fakeLoginFlow) AuthorizeURL() string {
	return f.authorizeURL
}

func (f *fakeLoginFlow) HandleCallback(_ context.Context, code string, state string) (domain.LoginResult, error) {
	f.gotCode = code
	f.gotState = state
	return f.result, f.err
}
