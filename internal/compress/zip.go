package compress

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

// ZipReader implements io.ReadCloser for reading one file from a ZIP archive.
type ZipReader struct {
	current io.ReadCloser
}

// NewZipReader reads the whole archive from r and opens fileName inside it.
func NewZipReader(r io.ReadCloser, fileName string) (*ZipReader, error) {
	defer r.Close()

	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		return nil, err
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() || f.Name != fileName {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		return &ZipReader{current: rc}, nil
	}

	return nil, fmt.Errorf("%s not found in the ZIP archive", fileName)
}

// Read reads data from the archived file.
func (z *ZipReader) Read(p []byte) (int, error) {
	return z.current.Read(p)
}

// Close closes the archived file.
func (z *ZipReader) Close() error {
	return z.current.Close()
}

// ZipWriter implements packaging data into a ZIP archive.
type ZipWriter struct {
	zipWriter *zip.Writer
	file      io.Writer
}

// NewZipWriter creates a new ZipWriter with the specified file name inside the archive.
func NewZipWriter(w io.Writer, fileName string) (*ZipWriter, error) {
	zw := zip.NewWriter(w)
	f, err := zw.Create(fileName)
	if err != nil {
		return nil, err
	}
	return &ZipWriter{
		zipWriter: zw,
		file:      f,
	}, nil
}

// Write writes data to a file inside the ZIP archive.
func (z *ZipWriter) Write(p []byte) (int, error) {
	return z.file.Write(p)
}

// Close closes the ZIP archive.
func (z *ZipWriter) Close() error {
	return z.zipWriter.Close()
}
