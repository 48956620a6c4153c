package main

import "errors"

var (
	// ErrNotFound is returned when the target file does not exist at read time
	ErrNotFound = errors.New("target file not found")
	// ErrDecode is returned when the file bytes are invalid under the encoding
	ErrDecode = errors.New("cannot decode target file")
	// ErrWrite is returned for any failure while replacing the target file
	ErrWrite = errors.New("cannot write target file")
	// ErrConfig is returned for unusable configuration
	ErrConfig = errors.New("invalid configuration")
)
