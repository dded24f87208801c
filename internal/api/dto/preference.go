package dto

type PutPreferenceRequest struct {
	Value any `json:"value"`
}

type PreferenceResponse struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}
