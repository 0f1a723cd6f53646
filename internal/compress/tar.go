package compress

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"time"
)

// TarReader implements io.ReadCloser for reading one file from a TAR archive.
type TarReader struct {
	current io.Reader
	eof     bool
}

// NewTarReader reads the whole archive from r and positions on fileName.
func NewTarReader(r io.ReadCloser, fileName string) (*TarReader, error) {
	defer r.Close()

	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}

	tr := tar.NewReader(bytes.NewReader(buf.Bytes()))
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header.Typeflag == tar.TypeReg && header.Name == fileName {
			return &TarReader{current: tr}, nil
		}
	}

	return nil, fmt.Errorf("%s not found in the TAR archive", fileName)
}

// Read reads data from the archived file.
func (t *TarReader) Read(p []byte) (int, error) {
	if t.eof {
		return 0, io.EOF
	}
	n, err := t.current.Read(p)
	if err == io.EOF {
		t.eof = true
	}
	return n, err
}

// Close завершает чтение.
func (t *TarReader) Close() error {
	return nil
}

// TarWriter packs everything written to it into a single-file TAR archive.
// The tar header needs the file size, so content is buffered until Close.
type TarWriter struct {
	w        io.Writer
	fileName string
	buf      bytes.Buffer
	modTime  time.Time
}

// NewTarWriter creates a TarWriter that stores its content as fileName.
func NewTarWriter(w io.Writer, fileName string) *TarWriter {
	return &TarWriter{
		w:        w,
		fileName: fileName,
		modTime:  time.Now(),
	}
}

// Write buffers p for the archived file.
func (t *TarWriter) Write(p []byte) (int, error) {
	return t.buf.Write(p)
}

// Close writes the header, the buffered content and the archive trailer.
func (t *TarWriter) Close() error {
	tw := tar.NewWriter(t.w)
	header := &tar.Header{
		Name:     t.fileName,
		Mode:     0o644,
		Size:     int64(t.buf.Len()),
		ModTime:  t.modTime,
		Typeflag: tar.TypeReg,
	}
	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	if _, err := tw.Write(t.buf.Bytes()); err != nil {
		return err
	}
	return tw.Close()
}
