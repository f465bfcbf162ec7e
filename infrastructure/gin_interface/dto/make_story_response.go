package dto

import "github.com/Hwang9170/demo-llm-hack/domain"

type StoryImage struct {
	Index    int    `json:"idx"`
	FilePath string `json:"file_path"`
	Prompt   string `json:"prompt"`
}

type MakeStoryResponse struct {
	Title        string       `json:"title"`
	Story        string       `json:"story"`
	Images       []StoryImage `json:"images"`
	TTSAudioPath string       `json:"ttsAudioPath"`
}

func NewMakeStoryResponse(result domain.StoryResult) MakeStoryResponse {
	images := make([]StoryImage, 0, len(result.Images))
	for _, img := range result.Images {
		images = append(images, StoryImage{
			Index:    img.Index,
			FilePath: img.FilePath,
			Prompt:   img.Prompt,
		})
	}
	return MakeStoryResponse{
		Title:        result.Title,
		Story:        result.Story,
		Images:       images,
		TTSAudioPath: result.AudioPath,
	}
}
