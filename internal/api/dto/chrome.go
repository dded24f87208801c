package dto

import "time"

type ShowLoadingRequest struct {
	Message string `json:"message"`
}

type LoadingResponse struct {
	Visible bool   `json:"visible"`
	Message string `json:"message"`
}

type CreateAlertRequest struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type AlertResponse struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

type ChromeStateResponse struct {
	Loading LoadingResponse `json:"loading"`
	Alerts  []AlertResponse `json:"alerts"`
}

type NavItemResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

type ThemeResponse struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Warning   string `json:"warning"`
	Success   string `json:"success"`
	Info      string `json:"info"`
}

type ManifestResponse struct {
	Nav            []NavItemResponse `json:"nav"`
	Theme          ThemeResponse     `json:"theme"`
	SeverityColors map[string]string `json:"severity_colors"`
	Footer         string            `json:"footer"`
}

type FormatResponse struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}
