// Package memory implements store.Store with in-process maps. It backs
// the server when no database is configured and the handler tests.
package memory

import (
	"sync"

	"go-task-api/internal/model"
)

type Store struct {
	mu        sync.RWMutex
	users     map[string]model.User // keyed by id
	tasks     map[string]model.Task // keyed by id
	taskOrder []string              // insertion order of task ids
}

func NewStore() *Store {
	return &Store{
		users: map[string]model.User{},
		tasks: map[string]model.Task{},
	}
}
