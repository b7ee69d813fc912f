// Package files provides the file system operations shared by the pipeline
// executables.
//
// Manager resolves paths against the working directory and writes output
// files atomically: content goes to a temporary file beside the target,
// which is renamed over the target only after a successful write. A failed
// run therefore never leaves a truncated output behind.
//
// RunLock guards an output against two concurrent runs of the same stage.
//
// Example usage:
//
//	manager := files.NewManager(paths.WorkDir, logger)
//	err := manager.WriteAtomic(paths.CombinedFile, func(w io.Writer) error {
//	    _, err := w.Write(data)
//	    return err
//	})
//
//	lock, err := files.AcquireRunLock(paths.GetLockPath(paths.CombinedFile))
//	if err != nil {
//	    return err
//	}
//	defer lock.Release()
package files
