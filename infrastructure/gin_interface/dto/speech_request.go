package dto

type SpeechRequest struct {
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
	Speed   string `json:"speed"`
}

type SpeechResponse struct {
	TTSAudioPath string `json:"ttsAudioPath"`
}
