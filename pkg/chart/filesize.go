package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

var (
	ErrEmptyFileSize       = errors.New("empty file size")
	ErrNoFileSizeUnit      = errors.New("file size has no unit")
	ErrUnknownFileSizeUnit = errors.New("unknown file size unit")
)

var fileSizeUnits = map[string]bool{
	"b": true, "kb": true, "kib": true, "mb": true, "mib": true,
	"gb": true, "gib": true, "tb": true, "tib": true,
}

// FileSize is a size in bytes, as listed for packs on EtternaOnline.
type FileSize uint64

// ParseFileSize parses "<number> <unit>" such as "12.5 MiB" or "800 kb".
// Units are case-insensitive, SI (kb, mb) and IEC (kib, mib) alike, from
// bytes up to terabytes.
func ParseFileSize(s string) (FileSize, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 0:
		return 0, ErrEmptyFileSize
	case 1:
		return 0, fmt.Errorf("%q: %w", s, ErrNoFileSizeUnit)
	}
	unit := strings.ToLower(fields[1])
	if !fileSizeUnits[unit] {
		return 0, fmt.Errorf("%q: %w %q", s, ErrUnknownFileSizeUnit, fields[1])
	}
	n, err := humanize.ParseBytes(fields[0] + " " + unit)
	if err != nil {
		return 0, fmt.Errorf("parsing file size %q: %w", s, err)
	}
	return FileSize(n), nil
}

func (f FileSize) Bytes() uint64 { return uint64(f) }
func (f FileSize) KB() uint64    { return uint64(f) / 1_000 }
func (f FileSize) MB() uint64    { return uint64(f) / 1_000_000 }
func (f FileSize) GB() uint64    { return uint64(f) / 1_000_000_000 }

func (f FileSize) String() string {
	return humanize.Bytes(uint64(f))
}
