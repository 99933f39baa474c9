package spritemaker

import (
	"errors"
	"fmt"
)

// ErrNoImages reports that a source directory held no recognized images.
var ErrNoImages = errors.New("spritemaker: no image files found")

// ScanError reports that the source directory could not be listed.
type ScanError struct {
	Dir string
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("spritemaker: scan %s: %v", e.Dir, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// DecodeError reports that a recognized source image could not be read
// (Op "read") or parsed as a bitmap (Op "decode").
type DecodeError struct {
	Path string
	Op   string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("spritemaker: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// SequencingError reports a Maker call made before its prerequisite step
// succeeded. It is a programming error and retrying the same call will not
// help.
type SequencingError struct {
	Op    string
	Need  string
	State State
}

func (e *SequencingError) Error() string {
	return fmt.Sprintf("spritemaker: %s called in state %s; %s must succeed first", e.Op, e.State, e.Need)
}

// EncodeError reports that an output could not be produced.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("spritemaker: encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// WriteError reports that an output could not be persisted.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("spritemaker: unable to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
