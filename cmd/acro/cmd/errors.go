package cmd

import (
	"errors"
	"fmt"

	berrors "go.etcd.io/bbolt"
)

// isHistoryLockError returns true if the error chain contains a bbolt lock
// timeout. bbolt returns ErrTimeout when it cannot acquire the file lock
// within the configured deadline.
func isHistoryLockError(err error) bool {
	return errors.Is(err, berrors.ErrTimeout)
}

// explainHistoryError adds guidance to history failures. Another acro
// process holds the lock only while it is saving, so a retry usually works.
func explainHistoryError(err error, dbPath string) error {
	if !isHistoryLockError(err) {
		return err
	}
	return fmt.Errorf("history database %s is locked by another acro process\n"+
		"  → another acro is saving right now; retry in a moment\n"+
		"  → if it persists, find the process:  ps aux | grep 'acro'", dbPath)
}
