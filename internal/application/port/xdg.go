package port

// XDGPaths resolves the application's XDG base directories.
type XDGPaths interface {
	ConfigDir() (string, error)
	DataDir() (string, error)
	StateDir() (string, error)
	CacheDir() (string, error)
	LogDir() (string, error)
}
