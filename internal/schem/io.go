package schem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"lito/internal/errors"
)

// Read loads a litematic structure file (gzip-compressed NBT).
func Read(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.InputNotFound, fmt.Sprintf("structure file %s not found", path), err)
		}
		return nil, errors.New(errors.IOError, fmt.Sprintf("opening %s", path), err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, errors.New(errors.MalformedStructure, fmt.Sprintf("%s is not gzip-compressed", path), err)
	}
	defer zr.Close()

	_, root, err := newNBTDecoder(zr).readRoot()
	if err != nil {
		return nil, errors.New(errors.MalformedStructure, fmt.Sprintf("decoding NBT from %s", path), err)
	}

	s, err := parseStructure(root)
	if err != nil {
		return nil, errors.New(errors.MalformedStructure, fmt.Sprintf("parsing structure from %s", path), err)
	}
	return s, nil
}

// Write persists a structure as a litematic file. The file is staged
// in the target directory and renamed into place, so a failed run
// never leaves a truncated structure behind.
func Write(s *Structure, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".lito-*.litematic")
	if err != nil {
		return errors.New(errors.IOError, fmt.Sprintf("creating temp file in %s", dir), err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	zw := gzip.NewWriter(tmp)
	encodeErr := newNBTEncoder(zw).writeRoot("", buildRoot(s))
	if err := zw.Close(); encodeErr == nil {
		encodeErr = err
	}
	if err := tmp.Close(); encodeErr == nil {
		encodeErr = err
	}
	if encodeErr != nil {
		return errors.New(errors.IOError, fmt.Sprintf("writing %s", path), encodeErr)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.New(errors.IOError, fmt.Sprintf("replacing %s", path), err)
	}
	return nil
}

// BaseName strips the directory and .litematic suffix from a path,
// the default structure name when writing a new file.
func BaseName(path string) string {
	name := filepath.Base(path)
	if ext := filepath.Ext(name); ext == ".litematic" {
		name = name[:len(name)-len(ext)]
	}
	return name
}
