package xhr

import (
	"bytes"
	"io"
	"mime/multipart"
)

// FormData is a multipart form body.
type FormData struct {
	fields []formField
}

type formField struct {
	name     string
	value    string
	filename string
	content  []byte
}

func NewFormData() *FormData {
	return &FormData{}
}

func (f *FormData) Append(name, value string) *FormData {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

func (f *FormData) AppendFile(name, filename string, content []byte) *FormData {
	f.fields = append(f.fields, formField{name: name, filename: filename, content: content})
	return f
}

func (f *FormData) Len() int { return len(f.fields) }

func (f *FormData) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, field := range f.fields {
		if field.filename == "" {
			if err := w.WriteField(field.name, field.value); err != nil {
				return nil, "", err
			}
			continue
		}
		part, err := w.CreateFormFile(field.name, field.filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(field.content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
