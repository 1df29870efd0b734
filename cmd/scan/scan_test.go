package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanCommandMetadata(t *testing.T) {
	assert.Equal(t, "scan", Cmd.Use)
	assert.NotNil(t, Cmd.RunE)

	languageFlag := Cmd.Flags().Lookup("language")
	if assert.NotNil(t, languageFlag) {
		assert.Equal(t, "l", languageFlag.Shorthand)
	}
}

func TestImageExtensions(t *testing.T) {
	assert.True(t, imageExtensions[".jpg"])
	assert.True(t, imageExtensions[".jpeg"])
	assert.True(t, imageExtensions[".png"])
	assert.True(t, imageExtensions[".webp"])
	assert.False(t, imageExtensions[".txt"])
	assert.False(t, imageExtensions[".pdf"])
}
