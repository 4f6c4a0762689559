// SPDX-License-Identifier: EPL-2.0

package mix

// The kernels run over contiguous sample runs, four lanes at a time with a
// scalar tail, which is the shape the compiler vectorizes best.
// len(dst) is the run length; src must be at least as long.

// scaleInto sets dst[i] = src[i] * g.
func scaleInto(dst, src []float32, g float32) {
	n := len(dst)
	src = src[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		d[0] = s[0] * g
		d[1] = s[1] * g
		d[2] = s[2] * g
		d[3] = s[3] * g
	}
	for ; i < n; i++ {
		dst[i] = src[i] * g
	}
}

// mulAdd sets dst[i] += src[i] * g.
func mulAdd(dst, src []float32, g float32) {
	n := len(dst)
	src = src[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		s := src[i : i+4 : i+4]
		d := dst[i : i+4 : i+4]
		d[0] += s[0] * g
		d[1] += s[1] * g
		d[2] += s[2] * g
		d[3] += s[3] * g
	}
	for ; i < n; i++ {
		dst[i] += src[i] * g
	}
}
