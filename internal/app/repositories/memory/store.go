// Package memory provides an in-memory implementation of the entity store
// used for tests and ephemeral environments.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// collection keeps documents keyed by id together with their insertion order.
// Every method takes the lock for the whole operation, which gives the same
// single-document atomicity a real document store provides.
type collection[T any] struct {
	mu    sync.RWMutex
	order []string
	docs  map[string]*T
	clone func(*T) *T
}

func newCollection[T any](clone func(*T) *T) *collection[T] {
	return &collection[T]{
		docs:  make(map[string]*T),
		clone: clone,
	}
}

func newID() string {
	return uuid.NewString()
}

// canonicalID returns id in the lowercase hyphenated form documents are keyed by.
// uuid.Parse also accepts uppercase, braced, urn and dash-less spellings.
func canonicalID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}

func validID(id string) bool {
	_, ok := canonicalID(id)
	return ok
}

func key(id string) string {
	if canonical, ok := canonicalID(id); ok {
		return canonical
	}
	return id
}

func (c *collection[T]) insert(id string, doc *T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(id, doc)
}

// insertUnique stores doc unless an existing document conflicts with it.
// The scan and the write happen under one lock.
func (c *collection[T]) insertUnique(id string, doc *T, conflicts func(existing *T) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.docs {
		if conflicts(existing) {
			return false
		}
	}
	c.put(id, doc)
	return true
}

func (c *collection[T]) put(id string, doc *T) {
	id = key(id)
	c.docs[id] = c.clone(doc)
	c.order = append(c.order, id)
}

func (c *collection[T]) get(id string) *T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[key(id)]
	if !ok {
		return nil
	}
	return c.clone(doc)
}

func (c *collection[T]) all() []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.clone(c.docs[id]))
	}
	return out
}

func (c *collection[T]) find(match func(*T) bool) *T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range c.order {
		if doc := c.docs[id]; match(doc) {
			return c.clone(doc)
		}
	}
	return nil
}

// modify runs fn on a copy of the stored document and stores the copy only if
// fn succeeds. It returns (nil, nil) when id is absent.
func (c *collection[T]) modify(id string, fn func(*T) error) (*T, error) {
	id = key(id)
	c.mu.Lock()
	defer c.mu.Unlock()
	current, ok := c.docs[id]
	if !ok {
		return nil, nil
	}
	next := c.clone(current)
	if err := fn(next); err != nil {
		return nil, err
	}
	c.docs[id] = next
	return c.clone(next), nil
}

func (c *collection[T]) remove(id string) {
	id = key(id)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		return
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *collection[T]) count() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(len(c.docs))
}

// Close is a no-op kept so the memory backend matches the others at bootstrap.
func Close(context.Context) error { return nil }
