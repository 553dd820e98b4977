package ports

// Watcher monitors the catalog file for changes made outside the running
// process. Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring path. onChange is called with the absolute path
	// each time the file is written, created, renamed or removed. The callback
	// may be invoked from any goroutine.
	Watch(path string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
