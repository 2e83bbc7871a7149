package models

// StoreEntry is one row returned by the content store when listing a
// directory.
type StoreEntry struct {
	Name string
	Type EntryType
	Size int64
	CID  string
}

// StoreStat describes a single path of the content store.
type StoreStat struct {
	CID  string
	Size int64
	Type EntryType
}

// WriteOptions controls how the content store creates a file on write.
type WriteOptions struct {
	// Create creates the file when it does not exist yet.
	Create bool
	// Parents creates missing parent directories.
	Parents bool
}
