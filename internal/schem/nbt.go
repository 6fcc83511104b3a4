package schem

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sort"
)

// NBT tag types, in wire order.
const (
	tagEnd byte = iota
	tagByte
	tagShort
	tagInt
	tagLong
	tagFloat
	tagDouble
	tagByteArray
	tagString
	tagList
	tagCompound
	tagIntArray
	tagLongArray
)

// nbtList carries a list payload together with its element tag, which
// the wire format needs again on encode.
type nbtList struct {
	elem  byte
	items []any
}

// maxNBTLength bounds array and string lengths read from the wire, so
// a corrupt header cannot trigger a huge allocation.
const maxNBTLength = 1 << 28

type nbtDecoder struct {
	r *bufio.Reader
}

func newNBTDecoder(r io.Reader) *nbtDecoder {
	return &nbtDecoder{r: bufio.NewReader(r)}
}

// readRoot reads the single named compound that starts every NBT
// document.
func (d *nbtDecoder) readRoot() (string, map[string]any, error) {
	t, err := d.r.ReadByte()
	if err != nil {
		return "", nil, fmt.Errorf("reading root tag: %w", err)
	}
	if t != tagCompound {
		return "", nil, fmt.Errorf("root tag is %d, want compound", t)
	}
	name, err := d.readString()
	if err != nil {
		return "", nil, err
	}
	payload, err := d.readCompound()
	if err != nil {
		return "", nil, err
	}
	return name, payload, nil
}

func (d *nbtDecoder) readCompound() (map[string]any, error) {
	out := map[string]any{}
	for {
		t, err := d.r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("reading tag type: %w", err)
		}
		if t == tagEnd {
			return out, nil
		}
		name, err := d.readString()
		if err != nil {
			return nil, err
		}
		value, err := d.readPayload(t)
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", name, err)
		}
		out[name] = value
	}
}

func (d *nbtDecoder) readPayload(t byte) (any, error) {
	switch t {
	case tagByte:
		b, err := d.r.ReadByte()
		return int8(b), err
	case tagShort:
		v, err := d.readUint(2)
		return int16(v), err
	case tagInt:
		v, err := d.readUint(4)
		return int32(v), err
	case tagLong:
		v, err := d.readUint(8)
		return int64(v), err
	case tagFloat:
		v, err := d.readUint(4)
		return math.Float32frombits(uint32(v)), err
	case tagDouble:
		v, err := d.readUint(8)
		return math.Float64frombits(v), err
	case tagByteArray:
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(d.r, buf); err != nil {
			return nil, err
		}
		return buf, nil
	case tagString:
		return d.readString()
	case tagList:
		elem, err := d.r.ReadByte()
		if err != nil {
			return nil, err
		}
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		items := make([]any, 0, n)
		for i := 0; i < n; i++ {
			v, err := d.readPayload(elem)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return nbtList{elem: elem, items: items}, nil
	case tagCompound:
		return d.readCompound()
	case tagIntArray:
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		out := make([]int32, n)
		for i := range out {
			v, err := d.readUint(4)
			if err != nil {
				return nil, err
			}
			out[i] = int32(v)
		}
		return out, nil
	case tagLongArray:
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		out := make([]int64, n)
		for i := range out {
			v, err := d.readUint(8)
			if err != nil {
				return nil, err
			}
			out[i] = int64(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown tag type %d", t)
	}
}

func (d *nbtDecoder) readUint(size int) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(d.r, buf[:size]); err != nil {
		return 0, err
	}
	v := uint64(0)
	for i := 0; i < size; i++ {
		v = v<<8 | uint64(buf[i])
	}
	return v, nil
}

func (d *nbtDecoder) readLength() (int, error) {
	v, err := d.readUint(4)
	if err != nil {
		return 0, err
	}
	n := int(int32(v))
	if n < 0 || n > maxNBTLength {
		return 0, fmt.Errorf("invalid length %d", n)
	}
	return n, nil
}

func (d *nbtDecoder) readString() (string, error) {
	v, err := d.readUint(2)
	if err != nil {
		return "", err
	}
	buf := make([]byte, v)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

type nbtEncoder struct {
	w *bufio.Writer
}

func newNBTEncoder(w io.Writer) *nbtEncoder {
	return &nbtEncoder{w: bufio.NewWriter(w)}
}

// writeRoot writes a named compound and flushes.
func (e *nbtEncoder) writeRoot(name string, value map[string]any) error {
	e.w.WriteByte(tagCompound)
	e.writeString(name)
	if err := e.writeCompound(value); err != nil {
		return err
	}
	return e.w.Flush()
}

// writeCompound writes entries in sorted key order so output is
// deterministic.
func (e *nbtEncoder) writeCompound(m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := m[k]
		t, err := tagTypeOf(v)
		if err != nil {
			return fmt.Errorf("tag %q: %w", k, err)
		}
		e.w.WriteByte(t)
		e.writeString(k)
		if err := e.writePayload(v); err != nil {
			return fmt.Errorf("tag %q: %w", k, err)
		}
	}
	return e.w.WriteByte(tagEnd)
}

func tagTypeOf(v any) (byte, error) {
	switch v.(type) {
	case int8:
		return tagByte, nil
	case int16:
		return tagShort, nil
	case int32:
		return tagInt, nil
	case int64:
		return tagLong, nil
	case float32:
		return tagFloat, nil
	case float64:
		return tagDouble, nil
	case []byte:
		return tagByteArray, nil
	case string:
		return tagString, nil
	case nbtList:
		return tagList, nil
	case map[string]any:
		return tagCompound, nil
	case []int32:
		return tagIntArray, nil
	case []int64:
		return tagLongArray, nil
	default:
		return 0, fmt.Errorf("unsupported NBT value %T", v)
	}
}

func (e *nbtEncoder) writePayload(v any) error {
	switch v := v.(type) {
	case int8:
		return e.w.WriteByte(byte(v))
	case int16:
		return e.writeUint(uint64(uint16(v)), 2)
	case int32:
		return e.writeUint(uint64(uint32(v)), 4)
	case int64:
		return e.writeUint(uint64(v), 8)
	case float32:
		return e.writeUint(uint64(math.Float32bits(v)), 4)
	case float64:
		return e.writeUint(math.Float64bits(v), 8)
	case []byte:
		e.writeUint(uint64(uint32(len(v))), 4)
		_, err := e.w.Write(v)
		return err
	case string:
		return e.writeString(v)
	case nbtList:
		e.w.WriteByte(v.elem)
		e.writeUint(uint64(uint32(len(v.items))), 4)
		for _, item := range v.items {
			t, err := tagTypeOf(item)
			if err != nil {
				return err
			}
			if t != v.elem {
				return fmt.Errorf("list element %T does not match element tag %d", item, v.elem)
			}
			if err := e.writePayload(item); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		return e.writeCompound(v)
	case []int32:
		e.writeUint(uint64(uint32(len(v))), 4)
		for _, n := range v {
			if err := e.writeUint(uint64(uint32(n)), 4); err != nil {
				return err
			}
		}
		return nil
	case []int64:
		e.writeUint(uint64(uint32(len(v))), 4)
		for _, n := range v {
			if err := e.writeUint(uint64(n), 8); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported NBT value %T", v)
	}
}

func (e *nbtEncoder) writeUint(v uint64, size int) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v<<(8*(8-size)))
	_, err := e.w.Write(buf[:size])
	return err
}

func (e *nbtEncoder) writeString(s string) error {
	e.writeUint(uint64(uint16(len(s))), 2)
	_, err := e.w.WriteString(s)
	return err
}
