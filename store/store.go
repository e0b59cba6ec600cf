package store

import (
	"errors"
	"sort"

	"github.com/golang/glog"
)

var (
	// ErrAlreadyExist error returns when Add attempts to add already existing item
	ErrAlreadyExist = errors.New("already exists")
	// ErrNotFound error returns when Get or Remove attempts to access a non existing item
	ErrNotFound = errors.New("not found")
)

type storeOp uint8

const (
	addItem storeOp = iota + 1
	removeItem
	getItem
	listItems
)

// Storable is any object which can identify itself by a key
type Storable interface {
	Key() string
}

type Manager interface {
	Add(Storable) error
	Remove(Storable) error
	List() []Storable
	Get(string) Storable
	Stop()
}

var _ Manager = &itemStore{}

type mgrReply struct {
	item []Storable
	err  error
}

type storeCh struct {
	op      storeOp
	key     string
	item    Storable
	replyCh chan mgrReply
}

type itemStore struct {
	stopCh chan struct{}
	opCh   chan storeCh
}

func (s *itemStore) do(msg storeCh) mgrReply {
	msg.replyCh = make(chan mgrReply)
	s.opCh <- msg
	return <-msg.replyCh
}

func (s *itemStore) Add(i Storable) error {
	return s.do(storeCh{op: addItem, key: i.Key(), item: i}).err
}

func (s *itemStore) Remove(i Storable) error {
	return s.do(storeCh{op: removeItem, key: i.Key()}).err
}

// Get returns nil when the key is not in the store
func (s *itemStore) Get(key string) Storable {
	r := s.do(storeCh{op: getItem, key: key})
	if r.err != nil {
		return nil
	}
	return r.item[0]
}

// List returns all items ordered by key
func (s *itemStore) List() []Storable {
	return s.do(storeCh{op: listItems}).item
}

func (s *itemStore) Stop() {
	close(s.stopCh)
}

func (s *itemStore) manager() {
	items := make(map[string]Storable)
	for {
		select {
		case <-s.stopCh:
			return
		case msg := <-s.opCh:
			switch msg.op {
			case addItem:
				glog.V(6).Infof("Adding item: %s", msg.key)
				if _, ok := items[msg.key]; ok {
					msg.replyCh <- mgrReply{err: ErrAlreadyExist}
					continue
				}
				items[msg.key] = msg.item
				msg.replyCh <- mgrReply{}
			case removeItem:
				glog.V(6).Infof("Removing item: %s", msg.key)
				if _, ok := items[msg.key]; !ok {
					msg.replyCh <- mgrReply{err: ErrNotFound}
					continue
				}
				delete(items, msg.key)
				msg.replyCh <- mgrReply{}
			case getItem:
				glog.V(6).Infof("Getting item: %s", msg.key)
				it, ok := items[msg.key]
				if !ok {
					msg.replyCh <- mgrReply{err: ErrNotFound}
					continue
				}
				msg.replyCh <- mgrReply{item: []Storable{it}}
			case listItems:
				keys := make([]string, 0, len(items))
				for k := range items {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				l := make([]Storable, len(keys))
				for i, k := range keys {
					l[i] = items[k]
				}
				msg.replyCh <- mgrReply{item: l}
			}
		}
	}
}

// NewStore returns a new instance of a store, any object which is compatible
// with the interface Storable, can be stored in the store.
func NewStore() Manager {
	s := &itemStore{
		stopCh: make(chan struct{}),
		opCh:   make(chan storeCh),
	}
	// Starting store manager
	go s.manager()

	return s
}
