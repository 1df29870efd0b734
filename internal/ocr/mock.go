package ocr

import "context"

// MockEngine implements Engine for testing. It returns predefined text or
// an error instead of calling an external service.
type MockEngine struct {
	Text string
	Err  error

	// Calls records the language code of each Recognize invocation.
	Calls []string
}

// Recognize returns the predefined text or error.
func (m *MockEngine) Recognize(ctx context.Context, image []byte, language string) (string, error) {
	m.Calls = append(m.Calls, language)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

// Close is a no-op.
func (m *MockEngine) Close() error {
	return nil
}
