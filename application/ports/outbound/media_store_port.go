package outbound

// MediaStorePort persists generated artifacts and answers with the public
// path clients fetch them from. Names are sanitized by the store.
type MediaStorePort interface {
	AudioExists(name string) bool
	AudioPublicPath(name string) string
	SaveAudio(name string, data []byte) (string, error)
	SaveImage(name string, index int, data []byte) (string, error)
}
