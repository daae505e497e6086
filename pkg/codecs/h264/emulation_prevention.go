package h264

// EmulationPreventionAdd adds emulation prevention bytes to a NALU.
func EmulationPreventionAdd(nalu []byte) []byte {
	// 0x00 0x00 0x00 -> 0x00 0x00 0x03 0x00
	// 0x00 0x00 0x01 -> 0x00 0x00 0x03 0x01
	// 0x00 0x00 0x02 -> 0x00 0x00 0x03 0x02
	// 0x00 0x00 0x03 -> 0x00 0x00 0x03 0x03

	l := len(nalu)
	n := l

	// after a match the cursor advances by 2, not 3: the byte that
	// triggered the escape is re-examined as the first byte of a
	// potential further match, so longer zero runs are escaped at
	// every qualifying boundary.
	for i := 0; (i + 2) < l; {
		if nalu[i] == 0 && nalu[i+1] == 0 && nalu[i+2] <= 3 {
			n++
			i += 2
		} else {
			i++
		}
	}

	ret := make([]byte, n)
	pos := 0
	start := 0

	for i := 0; (i + 2) < l; {
		if nalu[i] == 0 && nalu[i+1] == 0 && nalu[i+2] <= 3 {
			pos += copy(ret[pos:], nalu[start:i+2])
			ret[pos] = 0x03
			pos++
			start = i + 2
			i += 2
		} else {
			i++
		}
	}

	copy(ret[pos:], nalu[start:])

	return ret
}

// EmulationPreventionRemove removes emulation prevention bytes from a NALU.
func EmulationPreventionRemove(nalu []byte) []byte {
	// 0x00 0x00 0x03 0x00 -> 0x00 0x00 0x00
	// 0x00 0x00 0x03 0x01 -> 0x00 0x00 0x01
	// 0x00 0x00 0x03 0x02 -> 0x00 0x00 0x02
	// 0x00 0x00 0x03 0x03 -> 0x00 0x00 0x03

	l := len(nalu)
	n := l

	for i := 2; i < l; i++ {
		if nalu[i-2] == 0 && nalu[i-1] == 0 && nalu[i] == 3 {
			n--
		}
	}

	ret := make([]byte, n)
	pos := 0
	start := 0

	for i := 2; i < l; i++ {
		if nalu[i-2] == 0 && nalu[i-1] == 0 && nalu[i] == 3 {
			pos += copy(ret[pos:], nalu[start:i])
			start = i + 1
		}
	}

	copy(ret[pos:], nalu[start:])

	return ret
}
