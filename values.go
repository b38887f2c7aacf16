package bytable

// --- Typed Write Operations ---

func (b *ByteBuffer) WriteBool(v bool)       { Bool.Encode(b, v) }
func (b *ByteBuffer) WriteString(v string)   { String.Encode(b, v) }
func (b *ByteBuffer) WriteBytes(v []byte)    { Bytes.Encode(b, v) }
func (b *ByteBuffer) WriteFloat32(v float32) { Float32.Encode(b, v) }
func (b *ByteBuffer) WriteFloat64(v float64) { Float64.Encode(b, v) }

func (b *ByteBuffer) WriteInt(v int)     { b.writeSigned(int64(v)) }
func (b *ByteBuffer) WriteInt8(v int8)   { b.writeSigned(int64(v)) }
func (b *ByteBuffer) WriteInt16(v int16) { b.writeSigned(int64(v)) }
func (b *ByteBuffer) WriteInt32(v int32) { b.writeSigned(int64(v)) }
func (b *ByteBuffer) WriteInt64(v int64) { b.writeSigned(v) }

func (b *ByteBuffer) WriteUint(v uint)     { b.writeUnsigned(uint64(v)) }
func (b *ByteBuffer) WriteUint8(v uint8)   { b.writeUnsigned(uint64(v)) }
func (b *ByteBuffer) WriteUint16(v uint16) { b.writeUnsigned(uint64(v)) }
func (b *ByteBuffer) WriteUint32(v uint32) { b.writeUnsigned(uint64(v)) }
func (b *ByteBuffer) WriteUint64(v uint64) { b.writeUnsigned(v) }

// WriteValue encodes a Bytable.
func (b *ByteBuffer) WriteValue(v Bytable) { v.EncodeTo(b) }

// --- Typed Read Operations ---
//
// Every read either consumes a whole value or leaves the buffer untouched.

func (b *ByteBuffer) ReadBool() (bool, error)       { return Read(b, Bool) }
func (b *ByteBuffer) ReadString() (string, error)   { return Read(b, String) }
func (b *ByteBuffer) ReadBytes() ([]byte, error)    { return Read(b, Bytes) }
func (b *ByteBuffer) ReadFloat32() (float32, error) { return Read(b, Float32) }
func (b *ByteBuffer) ReadFloat64() (float64, error) { return Read(b, Float64) }

func (b *ByteBuffer) ReadInt() (int, error)     { return Read(b, Int) }
func (b *ByteBuffer) ReadInt8() (int8, error)   { return Read(b, Int8) }
func (b *ByteBuffer) ReadInt16() (int16, error) { return Read(b, Int16) }
func (b *ByteBuffer) ReadInt32() (int32, error) { return Read(b, Int32) }
func (b *ByteBuffer) ReadInt64() (int64, error) { return Read(b, Int64) }

func (b *ByteBuffer) ReadUint() (uint, error)     { return Read(b, Uint) }
func (b *ByteBuffer) ReadUint8() (uint8, error)   { return Read(b, Uint8) }
func (b *ByteBuffer) ReadUint16() (uint16, error) { return Read(b, Uint16) }
func (b *ByteBuffer) ReadUint32() (uint32, error) { return Read(b, Uint32) }
func (b *ByteBuffer) ReadUint64() (uint64, error) { return Read(b, Uint64) }

// ReadValue decodes into v. On failure the buffer is left as it was, but v
// may have been partially overwritten.
func (b *ByteBuffer) ReadValue(v Bytable) error {
	head := b.head
	if err := v.DecodeFrom(b); err != nil {
		b.head = head
		return err
	}
	return nil
}
