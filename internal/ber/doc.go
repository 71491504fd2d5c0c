// Package ber implements a BER (Basic Encoding Rules, ITU-T X.690)
// decoder for the subset of encodings used by LDAP wire messages:
// definite-length, primitive-preferred tags, integers, booleans, octet
// strings, bit strings, null, and constructed SEQUENCE/SET containers.
// Encoding is out of scope; this package only reads.
//
// # Tag classes
//
// BER uses four tag classes to identify data types:
//
//   - Universal (0x00): standard ASN.1 types like INTEGER, BOOLEAN, SEQUENCE
//   - Application (0x40): protocol-specific types (LDAP operations)
//   - Context-specific (0x80): context-dependent types within a structure
//   - Private (0xC0): organization-specific types
//
// # Reading values directly
//
// A Cursor wraps a byte slice and exposes one reader method per
// primitive type:
//
//	cur := ber.NewCursor(data)
//	n, err := cur.ReadInteger()
//
// Constructed types are walked through a Container, which bounds
// further reads on the same Cursor rather than handing out a
// sub-decoder over a copied slice:
//
//	seq, err := cur.EnterSequence()
//	for seq.More() {
//	    n, err := cur.ReadInteger()
//	}
//	err = seq.Close()
//
// # Scripts
//
// For messages with a fixed, repetitive shape, Run executes a sequence
// of Op values against a Cursor with all-or-nothing failure semantics:
// if any step fails, every allocation a prior step in the same Run made
// is released and its output slot reset before the error is returned.
//
//	var version int64
//	var name []byte
//	err := ber.Run(cur,
//	    ber.OpBeginSequence(),
//	    ber.OpInteger(&version),
//	    ber.OpOctetStringOwned(&name),
//	    ber.OpEndContainer(),
//	)
//
// # References
//
//   - ITU-T X.690: ASN.1 encoding rules
//   - RFC 4511: LDAP Protocol (uses BER encoding)
package ber
