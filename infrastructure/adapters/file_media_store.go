package adapters

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/Hwang9170/demo-llm-hack/application/ports/outbound"
	"github.com/Hwang9170/demo-llm-hack/config"
	"github.com/Hwang9170/demo-llm-hack/domain"
)

const (
	audioSubdir = "tts"
	imageSubdir = "images"
)

type fileMediaStore struct {
	logger     outbound.LoggerPort
	root       string
	publicPath string
}

// NewFileMediaStore persists artifacts under the content root, creating
// the tts/ and images/ subdirectories up front.
func NewFileMediaStore(serverConfig *config.ServerConfig, logger outbound.LoggerPort) (outbound.MediaStorePort, error) {
	for _, sub := range []string{audioSubdir, imageSubdir} {
		if err := os.MkdirAll(filepath.Join(serverConfig.ContentDir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create content directory %s: %w", sub, err)
		}
	}
	return &fileMediaStore{
		logger:     logger,
		root:       serverConfig.ContentDir,
		publicPath: serverConfig.PublicPath,
	}, nil
}

func (f *fileMediaStore) AudioExists(name string) bool {
	_, err := os.Stat(filepath.Join(f.root, audioSubdir, audioFilename(name)))
	return err == nil
}

func (f *fileMediaStore) AudioPublicPath(name string) string {
	return path.Join(f.publicPath, audioSubdir, audioFilename(name))
}

func (f *fileMediaStore) SaveAudio(name string, data []byte) (string, error) {
	filename := audioFilename(name)
	target := filepath.Join(f.root, audioSubdir, filename)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		f.logger.ErrorWithFields(err, "Failed to write audio file", map[string]interface{}{
			"path": target,
		})
		return "", err
	}
	f.logger.DebugWithFields("audio file saved", map[string]interface{}{
		"path": target,
		"size": len(data),
	})
	return path.Join(f.publicPath, audioSubdir, filename), nil
}

func (f *fileMediaStore) SaveImage(name string, index int, data []byte) (string, error) {
	filename := fmt.Sprintf("%s_%d.png", domain.SanitizeTitle(name), index)
	target := filepath.Join(f.root, imageSubdir, filename)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		f.logger.ErrorWithFields(err, "Failed to write image file", map[string]interface{}{
			"path": target,
		})
		return "", err
	}
	f.logger.DebugWithFields("image file saved", map[string]interface{}{
		"path": target,
		"size": len(data),
	})
	return path.Join(f.publicPath, imageSubdir, filename), nil
}

func audioFilename(name string) string {
	return "tts_" + domain.SanitizeTitle(name) + ".mp3"
}
