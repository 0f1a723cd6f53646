package compress

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	for _, typ := range []string{TypeZip, TypeTar} {
		t.Run(typ, func(t *testing.T) {
			var archive bytes.Buffer
			w, err := NewWriter(typ, &archive, "products.csv")
			require.NoError(t, err)

			_, err = io.WriteString(w, "id,name\n")
			require.NoError(t, err)
			_, err = io.WriteString(w, "1,iPhone\n")
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := NewReader(typ, io.NopCloser(&archive), "products.csv")
			require.NoError(t, err)
			defer r.Close()

			content, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "id,name\n1,iPhone\n", string(content))
		})
	}
}

func TestReader_MissingFile(t *testing.T) {
	for _, typ := range []string{TypeZip, TypeTar} {
		t.Run(typ, func(t *testing.T) {
			var archive bytes.Buffer
			w, err := NewWriter(typ, &archive, "a.csv")
			require.NoError(t, err)
			require.NoError(t, w.Close())

			_, err = NewReader(typ, io.NopCloser(&archive), "b.csv")
			assert.Error(t, err)
		})
	}
}

func TestUnknownType(t *testing.T) {
	_, err := NewWriter("rar", io.Discard, "x")
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = NewReader("rar", io.NopCloser(&bytes.Buffer{}), "x")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/zip", ContentType(TypeZip))
	assert.Equal(t, "application/x-tar", ContentType(TypeTar))
	assert.Equal(t, "application/octet-stream", ContentType("rar"))
}
