package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name: "labeled total with dollar sign",
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
			expected: "142.50",
		},
		{
			name: "grand total beats plain total",
			text: `Shiv Electronics and Home Appliances
Invoice number INV-2024-0042
Customer copy, keep for warranty claims

Mixer grinder unit
Extended warranty pack

Total: 4,500.00
GST 18 percent: 810.00
Grand Total: Rs. 5,310.00
`,
			expected: "5,310.00",
		},
		{
			name: "rupee prefix without decimals keeps grouping",
			text: `Sharma General Store
Bill No 7


Items purchased in store today

Amount payable
Rs. 1,250
`,
			expected: "1,250",
		},
		{
			name: "currency marked line preferred in trailing scan",
			text: `Quick Stop Kiosk
Counter slip 9
Assorted sundries purchased
Ref code 77.12 assigned
$ 56.78
thank you for your visit today
please retain this slip for records
no refunds without this slip
`,
			expected: "56.78",
		},
		{
			name: "labeled total without currency marker",
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
			expected: "8.50",
		},
		{
			name:     "no amount at all",
			text:     "Handwritten note\nillegible scrawl\nno figures at all\n",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, extractAmount(tc.text))
		})
	}
}

func TestExtractAmountNeverFabricates(t *testing.T) {
	assert.Empty(t, extractAmount(""))
	assert.Empty(t, extractAmount("no numbers here\nnor here\n"))
}
