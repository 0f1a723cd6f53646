// Package compress packs a single file into a zip or tar archive stream and
// reads it back.
package compress

import (
	"errors"
	"io"
)

// Supported archive types.
const (
	TypeZip = "zip"
	TypeTar = "tar"
)

// ErrUnknownType is returned for archive types other than zip and tar.
var ErrUnknownType = errors.New("unknown archive type")

// NewWriter returns an archive writer of the given type that stores
// everything written to it as fileName. Close must be called to finish the
// archive.
func NewWriter(archiveType string, w io.Writer, fileName string) (io.WriteCloser, error) {
	switch archiveType {
	case TypeZip:
		return NewZipWriter(w, fileName)
	case TypeTar:
		return NewTarWriter(w, fileName), nil
	default:
		return nil, ErrUnknownType
	}
}

// NewReader opens the archived file fileName from r.
func NewReader(archiveType string, r io.ReadCloser, fileName string) (io.ReadCloser, error) {
	switch archiveType {
	case TypeZip:
		return NewZipReader(r, fileName)
	case TypeTar:
		return NewTarReader(r, fileName)
	default:
		return nil, ErrUnknownType
	}
}

// ContentType returns the MIME type of an archive type.
func ContentType(archiveType string) string {
	switch archiveType {
	case TypeZip:
		return "application/zip"
	case TypeTar:
		return "application/x-tar"
	default:
		return "application/octet-stream"
	}
}
