package filestore

import (
	"context"
	"fmt"
	"path/filepath"
)

// Tx gives a RunLocked callback lock-free access to the paths it holds.
type Tx struct {
	ctx   context.Context
	store *Store
	paths map[string]struct{}
}

// RunLocked holds the locks for all paths while fn runs, so a
// read-modify-write spanning several files is not interleaved with other
// writers. Locks are taken in sorted order. Each Tx.Write is individually
// atomic; callers order their writes so that any prefix is consistent.
// On panic from fn: locks are released and the panic is re-raised.
func (s *Store) RunLocked(ctx context.Context, paths []string, fn func(tx *Tx) error) error {
	tx := &Tx{ctx: ctx, store: s, paths: make(map[string]struct{}, len(paths))}
	keys := make([]string, 0, len(paths))
	for _, p := range paths {
		p = filepath.Clean(p)
		tx.paths[p] = struct{}{}
		keys = append(keys, p)
	}

	unlock := s.locks.LockAll(keys...)
	defer unlock()

	return fn(tx)
}

// Read reads a locked path.
func (tx *Tx) Read(path string) (string, error) {
	path, err := tx.check(path)
	if err != nil {
		return "", err
	}
	return tx.store.read(tx.ctx, path)
}

// Write atomically replaces a locked path.
func (tx *Tx) Write(path, content string) error {
	path, err := tx.check(path)
	if err != nil {
		return err
	}
	return tx.store.write(tx.ctx, path, content)
}

// Append appends to a locked path.
func (tx *Tx) Append(path, content string) error {
	path, err := tx.check(path)
	if err != nil {
		return err
	}
	return tx.store.appendLocked(tx.ctx, path, content)
}

func (tx *Tx) check(path string) (string, error) {
	path = filepath.Clean(path)
	if _, ok := tx.paths[path]; !ok {
		return "", fmt.Errorf("filestore: path %s is not locked by this transaction", path)
	}
	return path, nil
}
