package ldap

import (
	"github.com/oba-ldap/lber/internal/ber"
)

// ParseMessage parses a BER-encoded LDAP message envelope (RFC 4511
// §4.1.1), leaving the protocolOp body as an opaque RawOperation. It
// is an illustrative consumer of internal/ber, not a full LDAP
// implementation: everything past the envelope (bind/search/modify
// bodies, result codes, filters) is left for a caller that needs it.
func ParseMessage(data []byte) (*Message, error) {
	if len(data) == 0 {
		return nil, ErrEmptyMessage
	}

	cur := ber.NewCursor(data)

	seq, err := cur.EnterSequence()
	if err != nil {
		return nil, NewParseError(0, "expected SEQUENCE for LDAPMessage", err)
	}

	msgID, err := cur.ReadInteger()
	if err != nil {
		return nil, NewParseError(cur.Offset(), "failed to read messageID", err)
	}
	if msgID < MinMessageID || msgID > MaxMessageID {
		return nil, ErrInvalidMessageID
	}

	opStart := cur.Offset()
	tag, opLength, err := cur.SkipTag()
	if err != nil {
		return nil, NewParseError(opStart, "failed to read protocolOp tag", err)
	}
	if tag.Class() != ber.ClassApplication {
		return nil, NewParseError(opStart, "protocolOp must have APPLICATION tag class", ErrInvalidOperation)
	}

	opData, err := cur.ReadRaw(opLength)
	if err != nil {
		return nil, NewParseError(cur.Offset(), "failed to read protocolOp content", err)
	}

	msg := &Message{
		MessageID: int(msgID),
		Operation: &RawOperation{
			Tag:         tag.Number(),
			Constructed: tag.Constructed(),
			Data:        opData,
		},
	}

	if seq.More() {
		controls, err := parseControls(cur)
		if err != nil {
			return nil, NewParseError(cur.Offset(), "failed to parse controls", err)
		}
		msg.Controls = controls
	}

	if err := seq.Close(); err != nil {
		return nil, NewParseError(cur.Offset(), "LDAPMessage not fully consumed", err)
	}
	return msg, nil
}

// parseControls parses the optional [0] Controls field:
//
//	Controls ::= SEQUENCE OF Control
func parseControls(cur *ber.Cursor) ([]Control, error) {
	wrapper, err := cur.EnterTagged("controls", ber.ClassContextSpecific, ContextTagControls)
	if err != nil {
		return nil, err
	}

	var controls []Control
	for wrapper.More() {
		ctrl, err := parseControl(cur)
		if err != nil {
			return nil, err
		}
		controls = append(controls, ctrl)
	}
	if err := wrapper.Close(); err != nil {
		return nil, err
	}
	return controls, nil
}

// parseControl parses a single Control, RFC 4511 §4.1.11:
//
//	Control ::= SEQUENCE {
//	    controlType             LDAPOID,
//	    criticality             BOOLEAN DEFAULT FALSE,
//	    controlValue            OCTET STRING OPTIONAL }
func parseControl(cur *ber.Cursor) (Control, error) {
	ctrl := Control{Criticality: false}

	seq, err := cur.EnterSequence()
	if err != nil {
		return ctrl, err
	}

	oid, err := cur.ReadOctetStringOwned()
	if err != nil {
		return ctrl, NewParseError(cur.Offset(), "failed to read control OID", err)
	}
	ctrl.OID = string(oid[:len(oid)-1])

	if seq.More() {
		tag, _, err := cur.PeekTag()
		if err == nil && tag.Class() == ber.ClassUniversal && tag.Number() == ber.TagBoolean {
			crit, err := cur.ReadBool()
			if err != nil {
				return ctrl, NewParseError(cur.Offset(), "failed to read control criticality", err)
			}
			ctrl.Criticality = crit
		}
	}

	if seq.More() {
		tag, _, err := cur.PeekTag()
		if err == nil && tag.Class() == ber.ClassUniversal && tag.Number() == ber.TagOctetString {
			value, err := cur.ReadOctetStringOwned()
			if err != nil {
				return ctrl, NewParseError(cur.Offset(), "failed to read control value", err)
			}
			ctrl.Value = value[:len(value)-1]
		}
	}

	if err := seq.Close(); err != nil {
		return ctrl, err
	}
	return ctrl, nil
}
