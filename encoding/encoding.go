// Package encoding offers (de)serialization APIs for experiment results.
// It uses CBOR and is schema-less; the layout is tagged with a format
// version checked on read.
package encoding

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/quno/zne"
)

// formatVersion tags the on-disk layout; bumped on breaking changes.
const formatVersion = 1

// ErrInvalidFormat is returned when deserializing a result written with an
// incompatible layout version.
var ErrInvalidFormat = errors.New("unsupported result encoding version")

// Write serializes the result into a file at path.
func Write(path string, res *zne.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Serialize(f, res)
}

// Read reads and deserializes a result from a file at path.
func Read(path string) (*zne.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Deserialize(f)
}

// Serialize writes the result to w; the format version is encoded in the
// first bytes.
func Serialize(w io.Writer, res *zne.Result) error {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return err
	}
	enc := em.NewEncoder(w)

	if err := enc.Encode(formatVersion); err != nil {
		return err
	}
	return enc.Encode(res)
}

// Deserialize reads a result from r, checking the format version first.
func Deserialize(r io.Reader) (*zne.Result, error) {
	dec := cbor.NewDecoder(r)

	var version int
	if err := dec.Decode(&version); err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidFormat, version, formatVersion)
	}

	var res zne.Result
	if err := dec.Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}
