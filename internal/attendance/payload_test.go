package attendance

import (
	"errors"
	"testing"
)

func TestParsePayloadRoundTrip(t *testing.T) {
	payload := EncodePayload("abc-123", "tok-456")
	id, tok, err := ParsePayload(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "abc-123" || tok != "tok-456" {
		t.Fatalf("got (%q, %q)", id, tok)
	}
}

func TestParsePayloadMalformed(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"no pipe", "abc123"},
		{"extra segment", "a|b|c"},
		{"empty token", "abc|"},
		{"empty session id", "|tok"},
		{"only pipe", "|"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParsePayload(tc.payload)
			if !errors.Is(err, ErrInvalidPayloadFormat) {
				t.Fatalf("want ErrInvalidPayloadFormat, got %v", err)
			}
		})
	}
}
