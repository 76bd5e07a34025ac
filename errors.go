package assetmin

import (
	"fmt"
)

// A MissingFileError is returned when a source asset doesn't exist or can't be
// read. Nothing has been written when this is returned.
type MissingFileError struct {
	Kind Kind
	Path string
	Err  error
}

func (err *MissingFileError) Error() string {
	return fmt.Sprintf("missing %s source %q: %v", err.Kind, err.Path, err.Err)
}

func (err *MissingFileError) Unwrap() error { return err.Err }

// A DecodeError is returned when a source asset isn't valid UTF-8. Nothing has
// been written when this is returned.
type DecodeError struct {
	Kind   Kind
	Path   string
	Offset int // Byte offset of the first invalid sequence
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf(
		"%s source %q is not valid UTF-8 (first bad byte at offset %d)",
		err.Kind, err.Path, err.Offset)
}

// A DestinationWriteError is returned when the destination directory or one of
// its files can't be written. Files written before the failure stay in place.
type DestinationWriteError struct {
	Path string
	Err  error
}

func (err *DestinationWriteError) Error() string {
	return fmt.Sprintf("failed to write %q: %v", err.Path, err.Err)
}

func (err *DestinationWriteError) Unwrap() error { return err.Err }
