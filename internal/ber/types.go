// Package ber implements a BER (Basic Encoding Rules, ITU-T X.690) decoder
// for the subset of encodings used by LDAP wire messages: definite-length,
// primitive-preferred tags, integers, booleans, octet strings, bit strings,
// null, and constructed SEQUENCE/SET containers.
package ber

//go:generate stringer -type=Class -output=class_string.go

// Class identifies the tag class carried in the top two bits of a tag's
// leading byte.
type Class byte

// Tag class constants (bits 7-8 of the leading tag byte).
const (
	ClassUniversal       Class = 0x00 // 00xxxxxx
	ClassApplication     Class = 0x40 // 01xxxxxx
	ClassContextSpecific Class = 0x80 // 10xxxxxx
	ClassPrivate         Class = 0xC0 // 11xxxxxx
)

// Constructed flag (bit 6 of the leading tag byte).
const (
	TypePrimitive   = 0x00 // xx0xxxxx
	TypeConstructed = 0x20 // xx1xxxxx
)

// Universal tag numbers for the primitive and constructed types this
// decoder understands.
const (
	TagBoolean     = 0x01
	TagInteger     = 0x02
	TagBitString   = 0x03
	TagOctetString = 0x04
	TagNull        = 0x05
	TagEnumerated  = 0x0A
	TagSequence    = 0x10
	TagSet         = 0x11
)

// Length encoding constants.
const (
	// lengthLongFormBit marks long-form length encoding (bit 8 set).
	lengthLongFormBit = 0x80
	// maxShortFormLength is the largest length encodable in short form.
	maxShortFormLength = 127
)

// tagLongForm is the low-5-bits pattern that signals a multi-byte tag
// number follows the leading byte.
const tagLongForm = 0x1F

// maxLengthWidth bounds the number of long-form length bytes this decoder
// accepts; a length word wider than this overflows the native int used to
// hold it and is rejected (spec.md §3's overflow guard).
const maxLengthWidth = 8
