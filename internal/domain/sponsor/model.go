package sponsor

import "errors"

var ErrMissingName = errors.New("sponsor name is required")

// Sponsor is a conference sponsor shown in the app. Pure CRUD data;
// no behavior beyond validation lives on the client.
type Sponsor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
	SiteURL string `json:"siteUrl"`
	Tier    string `json:"tier"`
}

// Validate checks required fields for a Sponsor.
func (s *Sponsor) Validate() error {
	if s.Name == "" {
		return ErrMissingName
	}
	return nil
}
