package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// LookupEncoding resolves a WHATWG encoding label such as "utf-8" or "windows-1250"
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("%w: unknown encoding %q", ErrConfig, name)
	}
	return enc, nil
}

func isUTF8(enc encoding.Encoding) bool {
	name, err := htmlindex.Name(enc)
	return err == nil && name == "utf-8"
}

// ReadText loads the whole file and decodes it as text
func ReadText(path string, enc encoding.Encoding) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	text, err := decode(data, enc)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return text, nil
}

func decode(data []byte, enc encoding.Encoding) (string, error) {
	// The UTF-8 decoder substitutes U+FFFD for bad bytes; validate instead
	if isUTF8(enc) {
		out, _, err := transform.Bytes(encoding.UTF8Validator, data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	// Other decoders also substitute U+FFFD for bytes they cannot map. The
	// decoded text must encode back to the exact input bytes.
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	back, err := enc.NewEncoder().Bytes(out)
	if err != nil {
		return "", fmt.Errorf("invalid byte sequence: %w", err)
	}
	if !bytes.Equal(back, data) {
		return "", errInvalidSequence(data, back)
	}
	return string(out), nil
}

// errInvalidSequence reports the first byte offset where decoding lost data
func errInvalidSequence(data, back []byte) error {
	offset := 0
	for offset < len(data) && offset < len(back) && data[offset] == back[offset] {
		offset++
	}
	return fmt.Errorf("invalid byte sequence at offset %d", offset)
}

func encode(text string, enc encoding.Encoding) ([]byte, error) {
	if isUTF8(enc) {
		return []byte(text), nil
	}
	out, err := enc.NewEncoder().String(text)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
