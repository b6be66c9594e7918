// Package wire implements the protobuf wire format: varints, field keys,
// native-type encode/decode, and the message/oneof/map codecs built on top
// of them.
package wire

import "strings"

// DecodeError reports a failure while decoding a varint, a field, or a
// message. Crumbs accumulate as the error unwinds through nested messages,
// innermost first, so the caller sees the full (struct, field) path.
type DecodeError struct {
	Msg    string
	Crumbs []string
}

func NewDecodeError(msg string) *DecodeError {
	return &DecodeError{Msg: msg}
}

func (e *DecodeError) Error() string {
	if len(e.Crumbs) == 0 {
		return e.Msg
	}
	return strings.Join(e.Crumbs, ": ") + ": " + e.Msg
}

// WithCrumb returns a copy of e with (structName.field) pushed onto the
// front of the crumb stack.
func (e *DecodeError) WithCrumb(structName, field string) *DecodeError {
	crumb := structName + "." + field
	crumbs := make([]string, 0, len(e.Crumbs)+1)
	crumbs = append(crumbs, crumb)
	crumbs = append(crumbs, e.Crumbs...)
	return &DecodeError{Msg: e.Msg, Crumbs: crumbs}
}

// AnnotateField wraps err with a (structName, field) crumb, preserving any
// crumbs already attached. Non-DecodeError causes are wrapped into one.
func AnnotateField(err error, structName, field string) error {
	if err == nil {
		return nil
	}
	var de *DecodeError
	if d, ok := err.(*DecodeError); ok {
		de = d
	} else {
		de = &DecodeError{Msg: err.Error()}
	}
	return de.WithCrumb(structName, field)
}
