package dto

// TranscriptionResponse is the body of a successful POST /transcribe-live.
type TranscriptionResponse struct {
	Transcription string `json:"transcription"`
}
