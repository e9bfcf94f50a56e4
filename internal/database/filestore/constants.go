package filestore

import "time"

// File layout
const (
	LockSuffix = ".lock"
	TempSuffix = ".tmp"

	// DirPerm and FilePerm apply to created save directories and files
	DirPerm  = 0o755
	FilePerm = 0o644
)

// Locking
const (
	LockTimeout    = 5 * time.Second
	LockRetryDelay = 50 * time.Millisecond
)

// Error messages
const (
	ErrMsgLockTimeout = "timed out waiting for save file lock"
)
