package model

// UploadedAudio is the raw upload held for the duration of one request.
type UploadedAudio struct {
	FileName string
	Data     []byte
}

// Transcription is what a Transcriber returns for one audio file.
type Transcription struct {
	Text     string
	Language string
	Duration float64
	Model    string
}
