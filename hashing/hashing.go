// Package hashing computes stable fingerprints of wire values.
package hashing

import (
	"context"
	"hash"
	"hash/fnv"
	"slices"
	"strconv"

	"github.com/speakeasy-api/wes/marshaller"
	"github.com/speakeasy-api/wes/values"
)

// Hash returns a 16 character hex FNV-64a fingerprint of v. Map member order
// does not affect the result and integral numbers hash the same whether they
// were written as integers or floats, mirroring values.Equal.
func Hash(v *values.Value) string {
	hasher := fnv.New64a()
	writeValue(hasher, v)
	return formatHash(hasher.Sum64())
}

// HashModel fingerprints the serialized form of m prefixed with its model
// name, so equal instances of different models do not collide.
func HashModel(ctx context.Context, m marshaller.Model) (string, error) {
	v, err := marshaller.Serialize(ctx, m)
	if err != nil {
		return "", err
	}

	hasher := fnv.New64a()
	if m != nil && m.Schema() != nil {
		writeString(hasher, 'm', m.Schema().Name())
	}
	writeValue(hasher, v)
	return formatHash(hasher.Sum64()), nil
}

// formatHash converts a uint64 hash to a zero-padded 16-character hex string.
func formatHash(h uint64) string {
	const hexDigits = "0123456789abcdef"
	var buf [16]byte
	for i := 15; i >= 0; i-- {
		buf[i] = hexDigits[h&0xf]
		h >>= 4
	}
	return string(buf[:])
}

func writeValue(h hash.Hash64, v *values.Value) {
	if v == nil {
		_, _ = h.Write([]byte{'~'})
		return
	}

	switch v.Kind() {
	case values.KindNull:
		_, _ = h.Write([]byte{'n'})
	case values.KindBool:
		b, _ := v.AsBool()
		_, _ = h.Write([]byte("b" + strconv.FormatBool(b)))
	case values.KindInt, values.KindFloat:
		if i, ok := v.AsInt(); ok {
			_, _ = h.Write([]byte("i" + strconv.FormatInt(i, 10)))
			return
		}
		f, _ := v.AsFloat()
		_, _ = h.Write([]byte("f" + strconv.FormatFloat(f, 'g', -1, 64)))
	case values.KindString:
		s, _ := v.AsString()
		writeString(h, 's', s)
	case values.KindSequence:
		_, _ = h.Write([]byte("[" + strconv.Itoa(v.Len())))
		for _, item := range v.Items() {
			writeValue(h, item)
		}
	case values.KindMap:
		fields := v.Fields()
		keys := slices.Sorted(fields.Keys())

		_, _ = h.Write([]byte("{" + strconv.Itoa(len(keys))))
		for _, k := range keys {
			writeString(h, 'k', k)
			writeValue(h, fields.GetOrZero(k))
		}
	}
}

// writeString length-prefixes s so adjacent strings cannot collide by concatenation.
func writeString(h hash.Hash64, tag byte, s string) {
	_, _ = h.Write([]byte{tag})
	_, _ = h.Write([]byte(strconv.Itoa(len(s)) + ":"))
	_, _ = h.Write([]byte(s))
}
