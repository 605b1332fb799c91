// Package filex contains small file helpers for the CLI upload flows.
package filex

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// ReadForUpload reads the file at path and sniffs its content type, for use
// as a multipart upload part. The returned name is the base file name.
func ReadForUpload(path string) (name string, data []byte, contentType string, err error) {
	data, err = os.ReadFile(path)
	if err != nil {
		return "", nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	contentType = http.DetectContentType(data)
	return filepath.Base(path), data, contentType, nil
}
