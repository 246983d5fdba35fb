package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserID(t *testing.T) {
	assert.NoError(t, UserID("alice"))
	assert.Error(t, UserID(""))
	assert.Error(t, UserID("al ice"))
	assert.Error(t, UserID("a_b"))
}

func TestPair(t *testing.T) {
	assert.NoError(t, Pair("alice", "bob"))
	assert.Error(t, Pair("alice", "alice"))
	assert.Error(t, Pair("alice", ""))
}

func TestStructFormatsFieldErrors(t *testing.T) {
	type payload struct {
		URL  string `validate:"omitempty,url"`
		Size int64  `validate:"gte=0"`
	}

	assert.NoError(t, Struct(payload{URL: "https://cdn.example.com/a.png"}))

	err := Struct(payload{URL: "not a url", Size: -1})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "URL must be a valid URL")
		assert.Contains(t, err.Error(), "Size must be at least 0")
	}
}
