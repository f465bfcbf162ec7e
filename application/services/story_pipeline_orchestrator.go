package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/Hwang9170/demo-llm-hack/application/ports/inbound"
	"github.com/Hwang9170/demo-llm-hack/application/ports/outbound"
	"github.com/Hwang9170/demo-llm-hack/domain"
)

type storyPipelineOrchestrator struct {
	logger            outbound.LoggerPort
	workerPool        outbound.TaskDispatcher
	storyWriter       outbound.StoryWriterPort
	speechSynthesizer outbound.SpeechSynthesizerPort
	imageGenerator    outbound.ImageGeneratorPort
	mediaStore        outbound.MediaStorePort
}

func NewStoryPipelineOrchestrator(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	storyWriter outbound.StoryWriterPort, speechSynthesizer outbound.SpeechSynthesizerPort,
	imageGenerator outbound.ImageGeneratorPort, mediaStore outbound.MediaStorePort) inbound.StoryPipelinePort {
	return &storyPipelineOrchestrator{
		logger:            logger,
		workerPool:        workerPool,
		storyWriter:       storyWriter,
		speechSynthesizer: speechSynthesizer,
		imageGenerator:    imageGenerator,
		mediaStore:        mediaStore,
	}
}

// MakeStory runs the three stages in order: story text and audio are
// mandatory and abort the request on failure, image generation degrades
// per paragraph instead.
func (s *storyPipelineOrchestrator) MakeStory(ctx context.Context, req domain.StoryRequest) (domain.StoryResult, error) {
	story, err := s.storyWriter.WriteStory(ctx, req)
	if err != nil {
		return domain.StoryResult{}, err
	}

	audioPath, err := s.ensureAudio(ctx, req.Title, story)
	if err != nil {
		return domain.StoryResult{}, err
	}

	images := s.generateImages(ctx, req.Title, story)

	return domain.StoryResult{
		Title:     req.Title,
		Story:     story,
		Images:    images,
		AudioPath: audioPath,
	}, nil
}

// ensureAudio synthesizes narration unless an artifact for this title is
// already on disk. The cache key is the sanitized title, so two stories
// sharing a title reuse the first one's audio; the skip is logged to make
// that visible.
func (s *storyPipelineOrchestrator) ensureAudio(ctx context.Context, title string, story string) (string, error) {
	if s.mediaStore.AudioExists(title) {
		publicPath := s.mediaStore.AudioPublicPath(title)
		s.logger.WarnWithFields("audio artifact already exists, skipping synthesis", map[string]interface{}{
			"title": title,
			"path":  publicPath,
		})
		return publicPath, nil
	}

	audio, err := s.speechSynthesizer.Synthesize(ctx, outbound.SynthesizeRequest{
		Text:    domain.TruncateSpeechText(story),
		Speaker: domain.DefaultSpeaker,
		Speed:   domain.DefaultSpeed,
	})
	if err != nil {
		return "", err
	}

	return s.mediaStore.SaveAudio(title, audio)
}

// generateImages requests one illustration per paragraph on the worker
// pool. Results land in a slice slot per paragraph, keeping count and
// order stable; a failed item records its failure in-band and never
// disturbs the others.
func (s *storyPipelineOrchestrator) generateImages(ctx context.Context, title string, story string) []domain.ImageResult {
	paragraphs := domain.Paragraphs(story)
	results := make([]domain.ImageResult, len(paragraphs))

	var wg sync.WaitGroup
	for idx, paragraph := range paragraphs {
		idx, paragraph := idx, paragraph
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[idx] = s.generateImage(ctx, title, idx+1, paragraph)
		}
		if err := s.workerPool.Submit(task); err != nil {
			s.logger.Error(err, "Failed to submit image task to worker pool, running inline")
			task()
		}
	}
	wg.Wait()

	return results
}

func (s *storyPipelineOrchestrator) generateImage(ctx context.Context, title string, index int, paragraph string) domain.ImageResult {
	prompt := illustrationPrompt(paragraph, title)

	data, err := s.imageGenerator.Generate(ctx, prompt)
	if err != nil {
		s.logger.ErrorWithFields(err, "Image generation failed", map[string]interface{}{
			"title": title,
			"index": index,
		})
		return domain.ImageResult{Index: index, Prompt: fmt.Sprintf("image generation failed: %v", err)}
	}

	filePath, err := s.mediaStore.SaveImage(title, index, data)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to persist generated image", map[string]interface{}{
			"title": title,
			"index": index,
		})
		return domain.ImageResult{Index: index, Prompt: fmt.Sprintf("image generation failed: %v", err)}
	}

	return domain.ImageResult{Index: index, FilePath: filePath, Prompt: prompt}
}

func illustrationPrompt(paragraph string, title string) string {
	return fmt.Sprintf("Children's storybook illustration, cartoon style, soft pastel, "+
		"cute characters, whimsical drawing. "+
		"Scene: %s. "+
		"Story title: %s. "+
		"Do not generate a photo, only an illustration.", paragraph, title)
}
