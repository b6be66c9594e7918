package testpb

import "github.com/wireframe-rpc/wireframe/wire"

// DocumentType is a small enum fixture used to exercise proto3's
// unknown-value-coerces-to-default rule.
type DocumentType int32

const (
	DocumentTypeUnspecified DocumentType = 0
	DocumentTypeMemo        DocumentType = 1
	DocumentTypeInvoice     DocumentType = 2
)

func documentTypeValid(v DocumentType) bool {
	switch v {
	case DocumentTypeUnspecified, DocumentTypeMemo, DocumentTypeInvoice:
		return true
	default:
		return false
	}
}

var documentTypeCodec = wire.NewEnumCodec(DocumentTypeUnspecified, documentTypeValid)

// Document exercises the enum, repeated-scalar (packed/unpacked), and map
// corners of the wire codec alongside HelloRequest/HelloReply's plain
// scalar path.
type Document struct {
	Type DocumentType    // tag 1
	Tags []string        // tag 2, repeated unpacked (string can't be packed)
	Page []int32         // tag 3, repeated packed
	Meta map[string]string // tag 4
}

var documentMetaCodec = wire.MapEntryCodec[string, string]{
	KeyCodec: wire.StringCodec,
}

func init() {
	enc, size, dec := wire.ScalarMapValue(wire.StringCodec)
	documentMetaCodec.EncodeValue = enc
	documentMetaCodec.ValueLen = size
	documentMetaCodec.DecodeValue = dec
}

func (m *Document) WriteTo(dst []byte) []byte {
	dst = documentTypeCodec.Serialize(dst, 1, m.Type, wire.OnDefault[DocumentType]())
	dst = wire.SerializeRepeatedUnpacked(dst, 2, m.Tags, wire.StringCodec)
	dst = wire.SerializeRepeatedPacked(dst, 3, m.Page, wire.Int32Codec)
	dst = wire.SerializeMap(dst, 4, m.Meta, documentMetaCodec)
	return dst
}

func (m *Document) EncodedLen() int {
	n := documentTypeCodec.SerializedLen(1, m.Type, wire.OnDefault[DocumentType]())
	n += wire.SerializedLenRepeatedUnpacked(2, m.Tags, wire.StringCodec)
	n += wire.SerializedLenRepeatedPacked(3, m.Page, wire.Int32Codec)
	n += wire.SerializedLenMap(4, m.Meta, documentMetaCodec)
	return n
}

func (m *Document) UnmarshalFrom(src []byte) error {
	for len(src) > 0 {
		fk, n, err := wire.DecodeFieldKey(src)
		if err != nil {
			return wire.AnnotateField(err, "Document", "?")
		}
		src = src[n:]
		switch fk.Tag {
		case 1:
			v, n, err := documentTypeCodec.Deserialize(src)
			if err != nil {
				return wire.AnnotateField(err, "Document", "type")
			}
			m.Type = v
			src = src[n:]
		case 2:
			var n int
			var err error
			m.Tags, n, err = wire.AppendDecodedRepeated(m.Tags, fk.Type, src, wire.StringCodec)
			if err != nil {
				return wire.AnnotateField(err, "Document", "tags")
			}
			src = src[n:]
		case 3:
			var n int
			var err error
			m.Page, n, err = wire.AppendDecodedRepeated(m.Page, fk.Type, src, wire.Int32Codec)
			if err != nil {
				return wire.AnnotateField(err, "Document", "page")
			}
			src = src[n:]
		case 4:
			k, v, n, err := documentMetaCodec.DecodeEntry(src)
			if err != nil {
				return wire.AnnotateField(err, "Document", "meta")
			}
			if m.Meta == nil {
				m.Meta = make(map[string]string)
			}
			m.Meta[k] = v
			src = src[n:]
		default:
			n, err := wire.SkipField(fk, src)
			if err != nil {
				return wire.AnnotateField(err, "Document", "?")
			}
			src = src[n:]
		}
	}
	return nil
}

var _ wire.Submessage[Document] = (*Document)(nil)
