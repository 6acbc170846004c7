package repofakes

import (
	"sync"

	"github.com/jrsteele09/employee-tracker/tokenstore"
)

var _ tokenstore.Repo = (*FakeTokenRepo)(nil)

// FakeTokenRepo is an in-memory token repository for tests. The error
// fields, when set, are returned by the corresponding operation.
type FakeTokenRepo struct {
	lock  sync.RWMutex
	token string
	set   bool

	GetErr    error
	SetErr    error
	DeleteErr error
}

func NewFakeTokenRepo() *FakeTokenRepo {
	return &FakeTokenRepo{}
}

func (r *FakeTokenRepo) Get() (string, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.GetErr != nil {
		return "", r.GetErr
	}
	if !r.set {
		return "", tokenstore.TokenNotFoundErr
	}
	return r.token, nil
}

func (r *FakeTokenRepo) Set(token string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.SetErr != nil {
		return r.SetErr
	}
	r.token = token
	r.set = true
	return nil
}

func (r *FakeTokenRepo) Delete() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.token = ""
	r.set = false
	return nil
}

// HasToken reports whether a token is currently persisted.
func (r *FakeTokenRepo) HasToken() bool {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.set
}
