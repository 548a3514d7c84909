package model

type VoicingsResponse struct {
	Name     string    `json:"name"`
	Voicings []Voicing `json:"voicings"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
