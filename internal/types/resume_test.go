package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsVariant(t *testing.T) {
	original := &ResumeDocument{ID: uuid.New()}
	assert.False(t, original.IsVariant())

	variant := &ResumeDocument{ID: uuid.New(), ParentID: &original.ID}
	assert.True(t, variant.IsVariant())
}
