package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// withLock runs fn while holding an exclusive lock next to path
func withLock(ctx context.Context, path string, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return fmt.Errorf("creating save directory: %w", err)
	}

	lock := flock.New(path + LockSuffix)
	ctx, cancel := context.WithTimeout(ctx, LockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(ctx, LockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	if !locked {
		return errors.New(ErrMsgLockTimeout)
	}
	defer func() { _ = lock.Unlock() }()

	return fn()
}

// writeAtomic replaces path with data via a rename so readers never see a partial file
func writeAtomic(path string, data []byte) error {
	tmp := path + TempSuffix
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing save file: %w", err)
	}
	return nil
}
