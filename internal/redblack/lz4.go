package redblack

import (
	"encoding/binary"

	"github.com/pierrec/lz4/v4"
)

// The first byte of every compressed slice tells how the rest was stored.
const (
	blockRaw byte = iota
	blockLZ4
)

// CompressUInt32Slice compresses a slice of uint32-s with LZ4.
func CompressUInt32Slice(data []uint32) []byte {
	if len(data) == 0 {
		return nil
	}
	src := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(src[i*4:], v)
	}
	dst := make([]byte, lz4.CompressBlockBound(len(src))+1)
	dstSize, err := lz4.CompressBlockHC(src, dst[1:], lz4.Level9, nil, nil)
	if err != nil {
		panic(err)
	}
	if dstSize == 0 {
		// incompressible
		dst[0] = blockRaw
		return append(dst[:1:1], src...)
	}
	dst[0] = blockLZ4
	finalDst := make([]byte, dstSize+1)
	copy(finalDst, dst[:dstSize+1])
	return finalDst
}

// DecompressUInt32Slice decompresses a slice of uint32-s previously compressed with LZ4.
// `result` must be preallocated.
func DecompressUInt32Slice(data []byte, result []uint32) {
	if len(result) == 0 {
		return
	}
	dst := make([]byte, len(result)*4)
	switch data[0] {
	case blockRaw:
		doAssert(copy(dst, data[1:]) == len(dst))
	case blockLZ4:
		n, err := lz4.UncompressBlock(data[1:], dst)
		if err != nil {
			panic(err)
		}
		doAssert(n == len(dst))
	default:
		panic("unknown compressed block type")
	}
	for i := range result {
		result[i] = binary.LittleEndian.Uint32(dst[i*4:])
	}
}
