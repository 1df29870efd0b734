package extractor

import (
	"testing"

	"akaul/billsnap/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIdentifyVendor(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "first line is the vendor",
			text:     "ACME Power & Light\n123 Main Street\n04/05/2023\n",
			expected: "ACME Power & Light",
		},
		{
			name:     "skips leading date line",
			text:     "04/05/2023\nGreen Valley Grocers\nFresh produce\n",
			expected: "Green Valley Grocers",
		},
		{
			name:     "skips numeric and short lines",
			text:     "12\n98765 43210\nSharma General Store\n",
			expected: "Sharma General Store",
		},
		{
			name:     "skips contact info lines",
			text:     "Tel: 555-0147\nwww.example.com\ninfo@example.com\nCorner Cafe\n",
			expected: "Corner Cafe",
		},
		{
			name:     "all noise in first five lines",
			text:     "12\n04/05/2023\n98765 43210\nTel: 555-0147\nwww.example.com\nMiscellaneous purchase items\n",
			expected: models.DefaultVendor,
		},
		{
			name:     "empty input",
			text:     "",
			expected: models.DefaultVendor,
		},
		{
			name:     "vendor beyond fifth line is ignored",
			text:     "1\n2\n3\n4\n5\nReal Vendor Name\n",
			expected: models.DefaultVendor,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, identifyVendor(tc.text))
		})
	}
}
