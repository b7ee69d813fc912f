package files

import (
	"fmt"

	"github.com/gofrs/flock"

	apperrors "github.com/ethandillon/DreamJobRealityCheck/internal/errors"
)

// RunLock is an advisory lock held for the duration of one stage run
type RunLock struct {
	lock *flock.Flock
}

// AcquireRunLock takes the lock at path without waiting. A lock already
// held by another process yields a CONFLICT error.
func AcquireRunLock(path string) (*RunLock, error) {
	lock := flock.New(path)

	locked, err := lock.TryLock()
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to acquire lock %s", path), err).
			WithContext(apperrors.CtxLock, path)
	}
	if !locked {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("another run is already writing this output (lock %s is held)", path), nil).
			WithContext(apperrors.CtxLock, path)
	}

	return &RunLock{lock: lock}, nil
}

// Path returns the lock file path
func (l *RunLock) Path() string {
	return l.lock.Path()
}

// Release unlocks the lock. The lock file itself is left in place.
func (l *RunLock) Release() error {
	if l == nil {
		return nil
	}
	return l.lock.Unlock()
}
