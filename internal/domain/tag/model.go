package tag

import "errors"

var ErrMissingName = errors.New("tag name is required")

// Tag labels activities for filtering and targeted notifications.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Validate checks required fields for a Tag.
func (t *Tag) Validate() error {
	if t.Name == "" {
		return ErrMissingName
	}
	return nil
}
