package h264

import (
	"encoding/binary"
	"fmt"
)

// AVCCUnmarshal decodes NALUs from the AVCC stream format.
func AVCCUnmarshal(buf []byte) ([][]byte, error) {
	bl := len(buf)
	pos := 0
	n := 0

	for {
		if (bl - pos) < 4 {
			return nil, fmt.Errorf("invalid length")
		}

		le := int(binary.BigEndian.Uint32(buf[pos:]))
		pos += 4

		if le == 0 {
			return nil, fmt.Errorf("invalid NALU")
		}

		if (bl - pos) < le {
			return nil, fmt.Errorf("invalid length")
		}

		if le > MaxNALUSize {
			return nil, fmt.Errorf("NALU size (%d) is too big (maximum is %d)", le, MaxNALUSize)
		}

		pos += le
		n++

		if (bl - pos) == 0 {
			break
		}
	}

	if n > MaxNALUsPerGroup {
		return nil, fmt.Errorf("NALU count (%d) exceeds maximum allowed (%d)",
			n, MaxNALUsPerGroup)
	}

	ret := make([][]byte, n)
	pos = 0

	for i := 0; i < n; i++ {
		le := int(binary.BigEndian.Uint32(buf[pos:]))
		pos += 4
		ret[i] = buf[pos : pos+le]
		pos += le
	}

	return ret, nil
}

func avccMarshalSize(nalus [][]byte) int {
	n := 0
	for _, nalu := range nalus {
		n += 4 + len(nalu)
	}
	return n
}

// AVCCMarshal encodes NALUs into the AVCC stream format.
func AVCCMarshal(nalus [][]byte) ([]byte, error) {
	buf := make([]byte, avccMarshalSize(nalus))
	pos := 0

	for _, nalu := range nalus {
		binary.BigEndian.PutUint32(buf[pos:], uint32(len(nalu)))
		pos += 4
		pos += copy(buf[pos:], nalu)
	}

	return buf, nil
}
