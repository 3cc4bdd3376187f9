// SPDX-License-Identifier: EPL-2.0

package audio

// NormalizePeak scales buf down so its absolute peak is exactly 1.0. Buffers
// whose peak is already <= 1.0 are returned unchanged, never scaled up.
// Every sample is divided by the peak, so the peak sample becomes exactly +-1.0.
func NormalizePeak(buf *Buffer) *Buffer {
	peak := buf.Peak()
	if peak <= 1.0 {
		return buf
	}

	out := NewBuffer(buf.Channels(), buf.Frames())
	for c, ch := range buf.Data {
		dst := out.Data[c]
		for f, v := range ch {
			dst[f] = v / peak
		}
	}

	return out
}
