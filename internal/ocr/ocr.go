// Package ocr defines the boundary to the external optical character
// recognition engine. The engine is an external collaborator: this package
// ships only the interface and client adapters, never recognition logic.
package ocr

import "context"

// Engine recognizes text in a bill image. The call is total: it either
// returns the full recognized text or an error, never partial or
// streaming output.
type Engine interface {
	// Recognize accepts raw image bytes and a language code and returns
	// the recognized text.
	Recognize(ctx context.Context, image []byte, language string) (string, error)

	// Close releases any resources held by the engine client.
	Close() error
}
