package models

type College struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	RecruitmentURL *string `json:"recruitment_url,omitempty"`

	LogoKey *string `json:"-"`
	LogoURL *string `json:"logo_url,omitempty"`
}
