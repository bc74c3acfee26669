// Package cpuid decodes x86 processor identification data into a vendor,
// a brand name, signature fields and a fixed set of feature flags.
package cpuid

import (
	"bytes"
	"errors"
	"strings"
)

// ErrUnsupported is returned by a Source when the host has no usable
// identification instruction.
var ErrUnsupported = errors.New("cpuid: identification not supported on this platform")

// Source produces one raw identification record.
type Source interface {
	Read() (Record, error)
}

// Record holds the raw register output of the identification leaves:
// leaf 0 (vendor), leaf 1 (signature and standard features), leaf
// 0x80000001 (extended features) and leaves 0x80000002-4 (brand name).
type Record struct {
	Vendor    [12]byte
	Name      [48]byte
	Signature uint32
	StdEDX    uint32
	StdECX    uint32
	ExtEDX    uint32
}

// Identity is the decoded form of a Record.
type Identity struct {
	Known     bool
	Vendor    string
	Name      string
	Stepping  uint8
	Model     uint8
	Family    uint8
	Type      uint8
	ExtModel  uint8
	ExtFamily uint8
	Features  FeatureSet
}

// Identify reads one record from src and decodes it. Any read error yields
// the zero Identity.
func Identify(src Source) Identity {
	if src == nil {
		return Identity{}
	}
	rec, err := src.Read()
	if err != nil {
		return Identity{}
	}
	return Decode(rec)
}

// Decode extracts the identity fields from rec.
func Decode(rec Record) Identity {
	sig := rec.Signature
	return Identity{
		Known:     true,
		Vendor:    cString(rec.Vendor[:]),
		Name:      strings.TrimLeft(cString(rec.Name[:]), " "),
		Stepping:  uint8(sig & 0xf),
		Model:     uint8((sig >> 4) & 0xf),
		Family:    uint8((sig >> 8) & 0xf),
		Type:      uint8((sig >> 12) & 0x3),
		ExtModel:  uint8((sig >> 16) & 0xf),
		ExtFamily: uint8((sig >> 20) & 0xff),
		Features:  decodeFeatures(rec.StdEDX, rec.StdECX, rec.ExtEDX),
	}
}

// VendorName returns the short vendor name for the identity's vendor string.
func (id Identity) VendorName() string {
	return VendorName(id.Vendor)
}

// DisplayFamily returns the effective family, which folds in the extended
// family for family 0xF parts.
func (id Identity) DisplayFamily() uint {
	f := uint(id.Family)
	if id.Family == 0xf {
		f += uint(id.ExtFamily)
	}
	return f
}

// DisplayModel returns the effective model, which folds in the extended
// model for family 0x6 and 0xF parts.
func (id Identity) DisplayModel() uint {
	m := uint(id.Model)
	if id.Family == 0x6 || id.Family == 0xf {
		m += uint(id.ExtModel) << 4
	}
	return m
}

// cString returns the bytes of b up to the first NUL.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
