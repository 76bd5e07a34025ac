package assetmin

import (
	"bytes"
	"crypto/sha1"
	"io"
	"os"
)

// sameContent checks if the file at path already holds exactly b
func sameContent(path string, b []byte) (bool, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	defer f.Close()

	hash := sha1.New()
	_, err = io.Copy(hash, f)
	if err != nil {
		return false, err
	}

	want := sha1.Sum(b)
	return bytes.Equal(hash.Sum(nil), want[:]), nil
}
