package machineid

import "bytes"

// Markers of the binary message object format: a leading object-start
// marker, a per-field type tag, and explicit end-of-object markers. Names
// are null-terminated and cannot contain an embedded null byte.
const (
	markerObject byte = 0x00 // object-start
	markerString byte = 0x01 // field-type tag: byte-string
	markerEnd    byte = 0x08 // end-of-object
)

// messageObjectName is the type name of the encoded object.
const messageObjectName = "MessageObject"

// MessageLength is the exact size in bytes of an encoded machine ID message.
const MessageLength = 155

// ToMessage encodes the machine ID as a binary message object, the format
// supplied in the machine_id field of a Steam logon request. The result is
// always exactly [MessageLength] bytes:
//
//	offset  len  content
//	0       1    0x00 object-start
//	1       14   "MessageObject\0"
//	15      46   0x01 "BB3\0" <40 hex bytes> 0x00
//	61      46   0x01 "FF2\0" <40 hex bytes> 0x00
//	107     46   0x01 "3B3\0" <40 hex bytes> 0x00
//	153     2    0x08 0x08
func (id MachineID) ToMessage() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, MessageLength))

	buf.WriteByte(markerObject)
	writeCString(buf, messageObjectName)

	writeHashField(buf, labelBB3, id.ValueBB3)
	writeHashField(buf, labelFF2, id.ValueFF2)
	writeHashField(buf, label3B3, id.Value3B3)

	buf.WriteByte(markerEnd)
	buf.WriteByte(markerEnd)

	return buf.Bytes()
}

// writeHashField appends one byte-string field: the type tag, the
// null-terminated field name, the 40 hex value bytes, and the value's null
// terminator.
func writeHashField(buf *bytes.Buffer, name string, value HashValue) {
	buf.WriteByte(markerString)
	writeCString(buf, name)
	buf.Write(value[:])
	buf.WriteByte(0)
}

// writeCString appends s followed by a null byte.
func writeCString(buf *bytes.Buffer, s string) {
	buf.WriteString(s)
	buf.WriteByte(0)
}
