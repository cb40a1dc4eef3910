package poesy

import (
	"crypto/md5"
	"strings"
)

// DuplicateHash fingerprints a poem so that reprints which differ only in
// case or punctuation hash the same.
func DuplicateHash(poem string) [md5.Size]byte {
	return md5.Sum([]byte(strings.ToUpper(hashStrip(poem))))
}

func hashStrip(s string) string {
	return stripBytes(s, func(b byte) bool {
		return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || b == ' ' || b == '\n'
	})
}

func stripBytes(s string, keep func(byte) bool) string {
	var result strings.Builder
	for i := 0; i < len(s); i++ {
		if keep(s[i]) {
			result.WriteByte(s[i])
		}
	}
	return result.String()
}
