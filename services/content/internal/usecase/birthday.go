package usecase

import (
	"fmt"
	"time"

	"pulse-feed/services/content/internal/entity"
)

// parseBirthday accepts an optional YYYY-MM-DD date.
func parseBirthday(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	birthday, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("birthday must be formatted as YYYY-MM-DD: %w", entity.ErrInvalidArgument)
	}

	return &birthday, nil
}
