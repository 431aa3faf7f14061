package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Postal code validation (Spanish 5-digit codes)
func IsValidPostalCode(code string) bool {
	return len(code) == 5 && IsNumeric(code)
}

// Phone number validation (Spanish numbers, 9 digits, optional +34/34 prefix)
func IsValidPhoneNumber(phone string) bool {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")

	phone = strings.TrimPrefix(phone, "+")
	phone = strings.TrimPrefix(phone, "34")

	return len(phone) == 9 && IsNumeric(phone)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

var timeRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidTime checks if a string is a wall-clock time in HH:MM format.
// Single-digit hours ("8:00") are accepted.
func IsValidTime(timeStr string) bool {
	return timeRegex.MatchString(timeStr)
}

// NormalizeTime pads single-digit hours so "8:00" becomes "08:00".
// Returns an error for anything that is not a valid HH:MM time.
func NormalizeTime(timeStr string) (string, error) {
	timeStr = strings.TrimSpace(timeStr)
	if !IsValidTime(timeStr) {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	parts := strings.SplitN(timeStr, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	return fmt.Sprintf("%02d:%s", hour, parts[1]), nil
}

// Itoa converts an integer to a string.
func Itoa(i int) string {
	return strconv.Itoa(i)
}
