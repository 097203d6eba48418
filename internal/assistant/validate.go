// Package assistant implements the conversational storefront assistant:
// message validation, keyword preference extraction, prompt assembly, and
// the hosted text-generation client.
package assistant

import (
	"errors"
	"strings"
)

const (
	MaxMessageLength      = 500
	MaxConversationLength = 50

	// A long message made of mostly repeated words is noise, not a question.
	repetitionMinWords = 10
	repetitionMinRatio = 0.3
)

var (
	ErrEmptyMessage         = errors.New("message is required")
	ErrMessageTooLong       = errors.New("message too long, keep it under 500 characters")
	ErrInappropriateContent = errors.New("message contains inappropriate content")
	ErrTooRepetitive        = errors.New("message contains too much repetition")
	ErrConversationTooLong  = errors.New("conversation too long, please start a new one")
)

var inappropriateWords = []string{"spam", "scam", "hack", "virus", "malware", "phishing"}

var jewelryKeywords = []string{
	"ring", "necklace", "earring", "bracelet", "jewelry", "diamond",
	"gold", "silver", "engagement", "wedding", "gem", "stone", "precious",
	"luxury", "fashion", "accessory", "ornament", "adornment",
}

// productKeywords flag messages that should trigger a catalog search.
var productKeywords = []string{
	"product", "jewelry", "ring", "necklace", "earring", "bracelet",
	"gold", "silver", "diamond", "price", "buy", "purchase",
}

// Turn is one prior message of the conversation, supplied by the client.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ValidateMessage applies the input rules: non-empty, bounded length, no
// flagged words, no excessive repetition.
func ValidateMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}
	if len(message) > MaxMessageLength {
		return ErrMessageTooLong
	}

	lower := strings.ToLower(message)
	for _, word := range inappropriateWords {
		if strings.Contains(lower, word) {
			return ErrInappropriateContent
		}
	}

	words := strings.Fields(message)
	if len(words) > repetitionMinWords {
		unique := map[string]bool{}
		for _, w := range words {
			unique[w] = true
		}
		if float64(len(unique))/float64(len(words)) < repetitionMinRatio {
			return ErrTooRepetitive
		}
	}
	return nil
}

// ValidateHistory bounds the client-supplied transcript.
func ValidateHistory(history []Turn) error {
	if len(history) > MaxConversationLength {
		return ErrConversationTooLong
	}
	return nil
}

// ProductIntent reports whether the message looks like a product question
// worth a catalog search.
func ProductIntent(message string) bool {
	lower := strings.ToLower(message)
	for _, keyword := range productKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// OnTopic reports whether any of the last turns mention jewelry at all; long
// conversations that drift entirely off topic get steered back by the caller.
func OnTopic(history []Turn) bool {
	if len(history) <= 10 {
		return true
	}
	recent := history
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	for _, turn := range recent {
		lower := strings.ToLower(turn.Content)
		for _, keyword := range jewelryKeywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}
