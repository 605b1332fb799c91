package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Form accumulates scalar fields and file parts for a multipart request.
type Form struct {
	fields [][2]string
	files  []filePart
}

type filePart struct {
	field       string
	name        string
	contentType string
	data        []byte
}

func NewForm() *Form {
	return &Form{}
}

// Set adds a scalar field.
func (f *Form) Set(key, value string) *Form {
	f.fields = append(f.fields, [2]string{key, value})
	return f
}

// AddFile adds a file part with an explicit content type.
func (f *Form) AddFile(field, name string, data []byte, contentType string) *Form {
	f.files = append(f.files, filePart{field: field, name: name, contentType: contentType, data: data})
	return f
}

// OverrideMethod sets the _method marker field so the backend treats the
// POST as the given verb (PUT for updates that carry a file).
func (f *Form) OverrideMethod(method string) *Form {
	return f.Set("_method", method)
}

// Encode renders the multipart body and returns it with its content type
// (including the boundary).
func (f *Form) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, kv := range f.fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", kv[0], err)
		}
	}

	for _, fp := range f.files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
			escapeQuotes(fp.field), escapeQuotes(fp.name)))
		h.Set("Content-Type", fp.contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", fp.field, err)
		}
		if _, err := part.Write(fp.data); err != nil {
			return nil, "", fmt.Errorf("write part %s: %w", fp.field, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
