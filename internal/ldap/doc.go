// Package ldap is a thin example consumer of internal/ber: it parses
// the LDAPMessage envelope defined by RFC 4511 §4.1.1 and leaves every
// operation body as an opaque, still-tagged byte range.
//
// # Message structure
//
//	LDAPMessage ::= SEQUENCE {
//	    messageID       MessageID,
//	    protocolOp      CHOICE { ... },
//	    controls        [0] Controls OPTIONAL }
//
// Use ParseMessage to decode an incoming message:
//
//	msg, err := ldap.ParseMessage(data)
//	if err != nil {
//	    // handle error
//	}
//	switch msg.OperationType() {
//	case ldap.ApplicationBindRequest:
//	    // msg.Operation.Data holds the raw BindRequest content
//	}
//
// Parsing any operation body further requires a decoder built on
// internal/ber's Cursor/Container/Script primitives directly; this
// package does not provide one.
//
// # References
//
//   - RFC 4511: LDAP Protocol
package ldap
