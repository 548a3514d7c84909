package catalog

import "os"

// Source provides the raw catalog text.
type Source interface {
	Fetch() (string, error)
}

// FileSource reads the catalog from a local file.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch() (string, error) {
	dat, err := os.ReadFile(s.Path)
	if err != nil {
		return "", err
	}
	return string(dat), nil
}
