package types

// RawRecord is one notification produced by a watch source.
type RawRecord struct {
	Flags Flag
	// Path is the absolute path the record refers to.
	Path string
	// SecondaryPath is only set on MOVED_TO records
	// whose origin the watch source resolved by itself.
	SecondaryPath string
	// Cookie is the inotify pairing token, zero if unknown.
	// It is informational only, move correlation does not depend on it.
	Cookie uint32
}

func (r *RawRecord) IsMovedFrom() bool {
	return r.Flags.Has(FlagMovedFrom)
}

func (r *RawRecord) IsMovedTo() bool {
	return r.Flags.Has(FlagMovedTo)
}

func (r *RawRecord) IsDir() bool {
	return r.Flags.Has(FlagIsDir)
}
