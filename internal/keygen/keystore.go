// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package keygen

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// HMACKeySize is the size of every v1/v3 key file.
const HMACKeySize = 32

var (
	// ErrKeyNotFound is returned when no key file with the name exists.
	ErrKeyNotFound = errors.New("hmac key not found")
	// ErrBadKey is returned for key material of the wrong size.
	ErrBadKey = errors.New("hmac key has invalid length")
)

// KeyStore provides named HMAC key material.
type KeyStore interface {
	Key(name string) ([]byte, error)
}

// MemoryKeyStore serves keys from a map.
type MemoryKeyStore map[string][]byte

// Key implements KeyStore.
func (m MemoryKeyStore) Key(name string) ([]byte, error) {
	k, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, name)
	}
	return checkKey(name, k)
}

// DirKeyStore reads keys from a directory. A key may be stored raw as
// <name> or zstd compressed as <name>.zst; the raw file wins.
type DirKeyStore struct {
	Dir string
}

// Key implements KeyStore.
func (d DirKeyStore) Key(name string) ([]byte, error) {
	if d.Dir == "" {
		return nil, fmt.Errorf("%w: %s (no key directory configured)", ErrKeyNotFound, name)
	}
	path := filepath.Join(d.Dir, filepath.Base(name))

	data, err := os.ReadFile(path)
	if err == nil {
		return checkKey(name, data)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read key %s: %w", path, err)
	}

	data, err = readZstd(path + ".zst")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s in %s", ErrKeyNotFound, name, d.Dir)
	}
	if err != nil {
		return nil, err
	}
	return checkKey(name, data)
}

func readZstd(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open zstd key %s: %w", path, err)
	}
	defer dec.Close()

	// Read one byte past the key size so oversized files are detected.
	data, err := io.ReadAll(io.LimitReader(dec, HMACKeySize+1))
	if err != nil {
		return nil, fmt.Errorf("decompress key %s: %w", path, err)
	}
	return data, nil
}

func checkKey(name string, k []byte) ([]byte, error) {
	if len(k) != HMACKeySize {
		return nil, fmt.Errorf("%w: %s is %d bytes, want %d", ErrBadKey, name, len(k), HMACKeySize)
	}
	return k, nil
}
