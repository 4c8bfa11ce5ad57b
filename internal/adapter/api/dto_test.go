package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{"", false},
		{"  ", false},
		{"false", false},
		{"0", false},
		{"null", false},
		{`""`, false},
		{"true", true},
		{"1", true},
		{`"ok"`, true},
		{"Added book Dune", true},
		{`{"message":"nope"}`, true},
		{"[]", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truthy([]byte(tt.body)), "body %q", tt.body)
	}
}

func TestTextBody(t *testing.T) {
	assert.Equal(t, "tok-123", textBody([]byte(`"tok-123"`)))
	assert.Equal(t, "Auth Success", textBody([]byte(" Auth Success\n")))
	assert.Equal(t, `"unterminated`, textBody([]byte(`"unterminated`)))
	assert.Equal(t, "", textBody(nil))
}

func TestFailureMessage(t *testing.T) {
	assert.Equal(t, "invalid credentials", failureMessage([]byte(`{"message":"invalid credentials"}`)))
	assert.Equal(t, "", failureMessage([]byte(`{"status":500}`)))
	assert.Equal(t, "404", failureMessage([]byte(`{"message":404}`)))
	assert.Equal(t, "Unauthorized", failureMessage([]byte("Unauthorized")))
	assert.Equal(t, "quoted", failureMessage([]byte(`"quoted"`)))
	assert.Equal(t, "{broken", failureMessage([]byte("{broken")))
}
