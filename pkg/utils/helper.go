package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// GenerateReservationCode creates a human-readable reservation reference
func GenerateReservationCode(now time.Time) string {
	// Format: RES-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("RES-%s-%s-%s", datePart, timePart, randomPart)
}
