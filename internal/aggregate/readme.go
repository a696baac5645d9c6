package aggregate

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// decodeContent decodes a content envelope. base64 payloads come wrapped
// with newlines, which are stripped first; other encodings pass verbatim.
func decodeContent(content, encoding string) (string, error) {
	if encoding != "base64" {
		return content, nil
	}
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(content, "\n", ""))
	if err != nil {
		return "", fmt.Errorf("decode base64 content: %w", err)
	}
	return string(raw), nil
}
