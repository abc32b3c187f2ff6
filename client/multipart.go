package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"
)

const (
	// binaryFieldName is the form field every upload endpoint expects
	// the binary part under.
	binaryFieldName = "file"

	defaultFilename        = "dataset.parquet"
	defaultPartContentType = "application/octet-stream"
)

// Multipart describes an upload body: one binary part plus optional
// plain-text fields. Build one with [NewMultipart] or
// [NewMultipartBytes] and pass it to a call via [WithMultipartBody].
type Multipart struct {
	source      io.Reader
	filename    string
	contentType string
	workspaceID string
	alias       string
}

// MultipartOption customizes a [Multipart].
type MultipartOption func(*Multipart)

// WithFilename sets the filename reported for the binary part.
// Defaults to the source's own name when it has one (e.g. an
// [os.File]), then to "dataset.parquet".
func WithFilename(name string) MultipartOption {
	return func(m *Multipart) {
		m.filename = name
	}
}

// WithPartContentType sets the content type of the binary part.
// Defaults to "application/octet-stream".
func WithPartContentType(contentType string) MultipartOption {
	return func(m *Multipart) {
		m.contentType = contentType
	}
}

// WithWorkspaceID appends a plain-text "workspace_id" field.
func WithWorkspaceID(id string) MultipartOption {
	return func(m *Multipart) {
		m.workspaceID = id
	}
}

// WithAlias appends a plain-text "alias" field.
func WithAlias(alias string) MultipartOption {
	return func(m *Multipart) {
		m.alias = alias
	}
}

// NewMultipart wraps an arbitrary reader as the binary part of an
// upload body.
func NewMultipart(source io.Reader, opts ...MultipartOption) *Multipart {
	m := &Multipart{source: source}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// NewMultipartBytes wraps a raw byte buffer as the binary part of an
// upload body.
func NewMultipartBytes(data []byte, opts ...MultipartOption) *Multipart {
	return NewMultipart(bytes.NewReader(data), opts...)
}

type encodedMultipart struct {
	body        []byte
	contentType string
}

// encode renders the multipart body. The returned content type carries
// the writer-chosen boundary; callers must not override it.
func (m *Multipart) encode() (encodedMultipart, error) {
	if m.source == nil {
		return encodedMultipart{}, fmt.Errorf("multipart source must not be nil")
	}

	filename := m.filename
	if filename == "" {
		if named, ok := m.source.(interface{ Name() string }); ok {
			filename = filepath.Base(named.Name())
		}
	}
	if filename == "" || filename == "." {
		filename = defaultFilename
	}

	contentType := m.contentType
	if contentType == "" {
		contentType = defaultPartContentType
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, binaryFieldName, escapeQuotes(filename)))
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return encodedMultipart{}, fmt.Errorf("creating binary part: %w", err)
	}
	if _, err := io.Copy(part, m.source); err != nil {
		return encodedMultipart{}, fmt.Errorf("writing binary part: %w", err)
	}

	// Absent optional fields are omitted, never sent as empty strings.
	if m.workspaceID != "" {
		if err := w.WriteField("workspace_id", m.workspaceID); err != nil {
			return encodedMultipart{}, fmt.Errorf("writing workspace_id field: %w", err)
		}
	}
	if m.alias != "" {
		if err := w.WriteField("alias", m.alias); err != nil {
			return encodedMultipart{}, fmt.Errorf("writing alias field: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return encodedMultipart{}, fmt.Errorf("finalizing multipart body: %w", err)
	}

	return encodedMultipart{body: buf.Bytes(), contentType: w.FormDataContentType()}, nil
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
