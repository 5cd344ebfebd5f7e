package repository

// SizeAbsent is returned by Size when the backing file does not exist.
const SizeAbsent int64 = -1

// Store persists the full ordered task collection as one snapshot per
// Save call. Implementations never retain the slices they are handed.
type Store interface {
	// Save overwrites the snapshot with the given ordered records.
	// A nil slice is written as an empty collection.
	Save(records []*TaskRecord) error

	// Load returns the ordered records from the snapshot. A missing or
	// empty snapshot loads as an empty slice without error.
	Load() ([]*TaskRecord, error)

	// Exists reports whether the backing file currently exists.
	Exists() bool

	// Size returns the byte length of the backing file, or SizeAbsent.
	Size() int64

	// Delete removes the backing file. Succeeds when the file is absent
	// afterwards, whether it was removed or never existed.
	Delete() error

	// Path returns the configured file path.
	Path() string

	// Backup rewrites the current snapshot to path+suffix as a fresh,
	// independent file. Fails when the source snapshot does not exist
	// or cannot be loaded. An empty suffix is rejected: a backup may
	// never target the original path.
	Backup(suffix string) error

	// Close releases any resources held by the store.
	Close() error
}
