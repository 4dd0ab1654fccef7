package util

import "strings"

const tokenPrefixLen = 10

// TokenPrefix shortens a push token for logs.
func TokenPrefix(token string) string {
	return token[:min(tokenPrefixLen, len(token))]
}

// NormalizeTopic trims and lower-cases a topic name.
func NormalizeTopic(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}
