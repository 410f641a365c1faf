// Package proof inspects payment-proof payloads, which arrive either as a
// plain URL or as an embedded data URL ("data:<mimetype>;base64,<content>").
package proof

import (
	"encoding/base64"
	"strings"
)

const dataPrefix = "data:"
const base64Marker = ";base64,"

// IsEmbedded reports whether the payload is an embedded data URL rather than
// a plain reference.
func IsEmbedded(payload string) bool {
	return strings.HasPrefix(payload, dataPrefix) && strings.Contains(payload, base64Marker)
}

// ContentType extracts the mimetype from an embedded data URL. Returns the
// empty string for anything else.
func ContentType(payload string) string {
	start := len(dataPrefix)
	end := strings.Index(payload, base64Marker)

	if !strings.HasPrefix(payload, dataPrefix) || end == -1 || end < start {
		return ""
	}

	return payload[start:end]
}

// Content returns the raw base64 content of an embedded data URL.
func Content(payload string) string {
	idx := strings.Index(payload, base64Marker)
	if idx == -1 {
		return ""
	}

	return payload[idx+len(base64Marker):]
}

// Decode returns the decoded bytes of an embedded data URL. Payloads that
// fail to decode are returned as-is so the caller can still store them.
func Decode(payload string) []byte {
	content := Content(payload)

	decoded, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return []byte(content)
	}

	return decoded
}
