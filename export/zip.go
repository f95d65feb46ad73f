package export

import (
	"archive/zip"
	"bytes"
)

type ZipEntry struct {
	Name string
	Data []byte
}

// Zip packages the entries into a single in-memory archive, preserving the
// given order.
func Zip(entries []ZipEntry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			zw.Close()
			return nil, err
		}
		if _, err := w.Write(e.Data); err != nil {
			zw.Close()
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
