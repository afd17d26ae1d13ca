package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ParseInt converts a query-string value to int, falling back to a default.
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 1 {
		return defaultValue
	}

	return result
}

// GenerateOrderID creates a human-readable booking reference.
// Format: BOOK-YYYYMMDD-XXXXXXXX. The suffix comes from a fresh uuid so
// references minted in the same second stay unique.
func GenerateOrderID() string {
	datePart := time.Now().Format("20060102")
	randomPart := strings.ToUpper(uuid.NewString()[:8])

	return fmt.Sprintf("BOOK-%s-%s", datePart, randomPart)
}
