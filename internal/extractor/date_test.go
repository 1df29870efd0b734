package extractor

import (
	"testing"
	"time"

	"akaul/billsnap/internal/dateutils"

	"github.com/stretchr/testify/assert"
)

var testClock = dateutils.FixedClock(time.Date(2023, time.April, 5, 12, 0, 0, 0, time.UTC))

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name: "bare numeric date in header",
			text: `ACME Power & Light
123 Main Street, Springfield
04/05/2023

Electricity charges for March billing cycle
Meter reading: 1247 kWh consumed this period
Account number: 889-445-21

Subtotal: $135.00
Tax: $7.50
Total: $142.50
`,
			expected: "04/05/2023",
		},
		{
			name: "labeled date beats earlier bare date",
			text: `Ref 12/31/2023 delivery window
Invoice Date: 03/15/2024
Acme Logistics consignment note, triple checked by dispatch team before loading

Crate of machine spares
Handling fee included

Balance due on receipt
`,
			expected: "03/15/2024",
		},
		{
			name: "month name date",
			text: `Green Valley Grocers
March 5, 2023
Fresh produce weekly order

Apples, spinach, tomatoes

Paid in cash at the counter by customer
`,
			expected: "March 5, 2023",
		},
		{
			name: "day first date with ordinal suffix",
			text: `City Gas Agency
Receipt issued on 15th August 2023 for refill

Domestic cylinder refill booking confirmed

Delivered to registered address
`,
			expected: "15th August 2023",
		},
		{
			name: "no date falls back to clock",
			text: `Corner Cafe
Order #4521
Served by counter staff

Cappuccino regular        4.50
Croissant butter          3.25
Extra shot of espresso    0.75

All prices include service
Total: 8.50
Thank you, visit again
`,
			expected: "04/05/2023",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, extractDate(tc.text, testClock))
		})
	}
}

func TestExtractDateNoCalendarValidation(t *testing.T) {
	// A syntactically date-shaped token is accepted verbatim, even when
	// the day or month is out of range.
	text := `Oddly Dated Shop
99/99/2023
Receipt for miscellaneous goods purchased

Thanks for shopping with us today
`
	assert.Equal(t, "99/99/2023", extractDate(text, testClock))
}
