package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 20))
	assert.Equal(t, 1, CalculateTotalPages(1, 20))
	assert.Equal(t, 1, CalculateTotalPages(20, 20))
	assert.Equal(t, 2, CalculateTotalPages(21, 20))
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(0, 20))
	assert.Equal(t, 0, CalculateOffset(1, 20))
	assert.Equal(t, 20, CalculateOffset(2, 20))
	assert.Equal(t, 40, CalculateOffset(3, 20))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("", 5))
	assert.Equal(t, 3, ParseInt("3", 5))
	assert.Equal(t, 5, ParseInt("abc", 5))
	assert.Equal(t, 5, ParseInt("-1", 5))
}

func TestGenerateOrderID(t *testing.T) {
	id := GenerateOrderID()
	parts := strings.Split(id, "-")

	assert.Len(t, parts, 3)
	assert.Equal(t, "BOOK", parts[0])
	assert.Len(t, parts[1], 8)
	assert.Len(t, parts[2], 8)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		next := GenerateOrderID()
		assert.False(t, seen[next], "duplicate order ID %s", next)
		seen[next] = true
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("sekrit-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "sekrit-password", hash)

	assert.True(t, CheckPasswordHash("sekrit-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required"`
	}

	assert.Nil(t, ValidateStruct(payload{Email: "a@b.com", Name: "x"}))

	errs := ValidateStruct(payload{Email: "not-an-email"})
	assert.Contains(t, errs, "Email")
	assert.Contains(t, errs, "Name")
}
