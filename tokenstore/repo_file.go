package tokenstore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// FileRepo persists the bearer token in a single file, the CLI counterpart
// of the browser's local-storage key.
type FileRepo struct {
	path string
}

var _ Repo = (*FileRepo)(nil)

func NewFileRepo(path string) *FileRepo {
	return &FileRepo{path: path}
}

func (r *FileRepo) Get() (string, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return "", TokenNotFoundErr
	}
	if err != nil {
		return "", errors.Wrap(err, "[FileRepo.Get] read token file")
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", TokenNotFoundErr
	}
	return token, nil
}

func (r *FileRepo) Set(token string) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return errors.Wrap(err, "[FileRepo.Set] create token directory")
	}
	if err := os.WriteFile(r.path, []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "[FileRepo.Set] write token file")
	}
	return nil
}

func (r *FileRepo) Delete() error {
	err := os.Remove(r.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileRepo.Delete] remove token file")
	}
	return nil
}
