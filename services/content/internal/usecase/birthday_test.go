package usecase

import (
	"testing"
	"time"

	"pulse-feed/services/content/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestParseBirthday_Empty(t *testing.T) {
	birthday, err := parseBirthday("")

	assert.NoError(t, err)
	assert.Nil(t, birthday)
}

func TestParseBirthday_Valid(t *testing.T) {
	birthday, err := parseBirthday("1995-06-15")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC), *birthday)
}

func TestParseBirthday_WrongFormat(t *testing.T) {
	_, err := parseBirthday("15.06.1995")

	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
}
