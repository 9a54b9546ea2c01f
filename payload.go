package schedule

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadPayload reads the JSON file at path and returns its exact bytes.
// The returned slice is what goes on the wire: the content is checked for
// JSON well-formedness but never re-serialized, so the caller's formatting
// survives intact.
func LoadPayload(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPayloadMissing, path)
		}

		return nil, fmt.Errorf("%w: %w", ErrPayloadRead, err)
	}

	// Unmarshal rather than json.Valid so the decoder's diagnostic
	// (reason and byte offset) stays recoverable via errors.As.
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPayloadSyntax, err)
	}

	return data, nil
}

// Pretty reformats a JSON document with two-space indentation. Key order
// and number formatting are kept as the server produced them.
func Pretty(data []byte) ([]byte, error) {
	var b bytes.Buffer
	if err := json.Indent(&b, bytes.TrimSpace(data), "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResponseSyntax, err)
	}

	return b.Bytes(), nil
}
