package batch

import (
	"crypto/md5"
	"encoding/hex"
)

// digests remembers the content hash of every file translated by a
// Watcher. Editors often emit several write events for one save.
type digests map[string]string

// changed records data as the content of path and reports whether it
// differs from the previously recorded content.
func (d digests) changed(path string, data []byte) bool {
	sum := md5.Sum(data)
	hash := hex.EncodeToString(sum[:])
	if d[path] == hash {
		return false
	}
	d[path] = hash
	return true
}
