package models

import "github.com/webforge-studio/studio-api/internal/quote"

// Per-source payloads serialized into LeadRequest.Options. The source column
// tells readers which shape to expect: "quote" rows carry quote.Options,
// "web-design" rows carry WebDesignDetails, "contact" rows store nothing
// (contact fields are flat columns).

type Branding struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	LogoFileName   string `json:"logoFileName,omitempty"`
	LogoDataURL    string `json:"logoDataUrl,omitempty"`
}

type EstimateRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type WebDesignDetails struct {
	Options  quote.WebOptions `json:"options"`
	Branding Branding         `json:"branding"`
	Stack    string           `json:"stack"`
	Estimate EstimateRange    `json:"estimate"`
}
