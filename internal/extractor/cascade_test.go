package extractor

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCascadeFirstMatch(t *testing.T) {
	cascade := Cascade{
		regexp.MustCompile(`first\s+(\w+)`),
		regexp.MustCompile(`second\s+(\w+)`),
	}

	val, ok := cascade.FirstMatch("second beta and first alpha")
	assert.True(t, ok)
	assert.Equal(t, "alpha", val, "cascade order wins over position in the text")

	val, ok = cascade.FirstMatch("only second gamma")
	assert.True(t, ok)
	assert.Equal(t, "gamma", val)

	_, ok = cascade.FirstMatch("nothing relevant")
	assert.False(t, ok)
}

func TestCascadeFirstMatchNoCaptureGroup(t *testing.T) {
	cascade := Cascade{regexp.MustCompile(`\d{4}`)}

	val, ok := cascade.FirstMatch("year 2023 noted")
	assert.True(t, ok)
	assert.Equal(t, "2023", val, "patterns without a group contribute the full match")
}

func TestCascadeMatches(t *testing.T) {
	cascade := Cascade{
		regexp.MustCompile(`alpha`),
		regexp.MustCompile(`beta`),
	}

	assert.True(t, cascade.Matches("some beta text"))
	assert.False(t, cascade.Matches("gamma only"))
	assert.False(t, Cascade{}.Matches("anything"))
}

func TestTextRegions(t *testing.T) {
	assert.Equal(t, "d", lastQuarter("abcd"))
	assert.Equal(t, "ab", firstThird("abcdef"))
	assert.Equal(t, "cdef", middleHalf("abcdefgh"))
	assert.Equal(t, "", lastQuarter(""))
}
