package proof_test

import (
	"bytes"
	"encoding/base64"
	"testing"

	"lodge/shared/proof"
)

func TestIsEmbedded(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected bool
	}{
		{
			name:     "data url",
			payload:  "data:image/png;base64,iVBORw0KGgo=",
			expected: true,
		},
		{
			name:     "plain url",
			payload:  "https://proofs.example.com/BK12345678.png",
			expected: false,
		},
		{
			name:     "empty",
			payload:  "",
			expected: false,
		},
		{
			name:     "data prefix without base64 marker",
			payload:  "data:image/png",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := proof.IsEmbedded(tt.payload); got != tt.expected {
				t.Errorf("IsEmbedded(%q) = %v, want %v", tt.payload, got, tt.expected)
			}
		})
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{
			name:     "png data url",
			payload:  "data:image/png;base64,iVBORw0KGgo=",
			expected: "image/png",
		},
		{
			name:     "pdf data url",
			payload:  "data:application/pdf;base64,JVBERi0=",
			expected: "application/pdf",
		},
		{
			name:     "plain url",
			payload:  "https://proofs.example.com/BK12345678.png",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := proof.ContentType(tt.payload); got != tt.expected {
				t.Errorf("ContentType(%q) = %q, want %q", tt.payload, got, tt.expected)
			}
		})
	}
}

func TestContent(t *testing.T) {
	if got := proof.Content("data:image/png;base64,iVBORw0KGgo="); got != "iVBORw0KGgo=" {
		t.Errorf("Content returned %q", got)
	}

	if got := proof.Content("https://proofs.example.com/x.png"); got != "" {
		t.Errorf("expected empty content for plain url, got %q", got)
	}
}

func TestDecode(t *testing.T) {
	raw := []byte("receipt bytes")
	payload := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(raw)

	if got := proof.Decode(payload); !bytes.Equal(got, raw) {
		t.Errorf("Decode returned %q, want %q", got, raw)
	}

	if got := proof.Decode("data:image/png;base64,!!not-base64!!"); !bytes.Equal(got, []byte("!!not-base64!!")) {
		t.Errorf("expected undecodable content passed through, got %q", got)
	}
}
