package localstore

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	bCtx "github.com/pixelbay/goapi/base/ctx"
	"github.com/pixelbay/goapi/base/log"
)

var ErrNotFound = errors.New("document not found")

// Store persists named JSON documents, one document per name, last write
// wins. It models the per-origin browser storage the marketplace state lives
// in: no transactions, no versioning, shared by every caller in the process.
type Store interface {
	Get(c bCtx.Ctx, name string, container interface{}) error
	Put(c bCtx.Ctx, name string, value interface{}) error
	Del(c bCtx.Ctx, name string) error
}

type impl struct {
	dir string
	mu  sync.Mutex
}

// New creates a file backed store rooted at dir. The directory is created if
// missing.
func New(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &impl{dir: dir}, nil
}

// MustNew is like New but panics on error, for use in main wiring
func MustNew(dir string) Store {
	s, err := New(dir)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *impl) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *impl) Get(c bCtx.Ctx, name string, container interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := ioutil.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		c.WithFields(log.Fields{"err": err, "doc": name}).Error("read document failed")
		return err
	}
	if err := json.Unmarshal(data, container); err != nil {
		c.WithFields(log.Fields{"err": err, "doc": name}).Error("unmarshal document failed")
		return err
	}
	return nil
}

func (s *impl) Put(c bCtx.Ctx, name string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "doc": name}).Error("marshal document failed")
		return err
	}

	// write-then-rename so readers never observe a torn document
	tmp := s.path(name) + ".tmp"
	if err := ioutil.WriteFile(tmp, data, 0o644); err != nil {
		c.WithFields(log.Fields{"err": err, "doc": name}).Error("write document failed")
		return err
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		c.WithFields(log.Fields{"err": err, "doc": name}).Error("rename document failed")
		return err
	}
	return nil
}

func (s *impl) Del(c bCtx.Ctx, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
