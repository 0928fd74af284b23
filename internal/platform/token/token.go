// Package token stores the opaque session token on disk between CLI
// runs. The token is written as-is; nothing here inspects it.
package token

import (
	"errors"
	"os"
	"strings"
)

type FileKeeper struct {
	path string
}

func NewFileKeeper(path string) *FileKeeper {
	return &FileKeeper{path: path}
}

func (k *FileKeeper) Save(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("refusing to save empty token")
	}
	return os.WriteFile(k.path, []byte(token), 0o600)
}

func (k *FileKeeper) Load() (string, error) {
	data, err := os.ReadFile(k.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (k *FileKeeper) Clear() error {
	err := os.Remove(k.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
