package normalize

import (
	"strconv"
	"strings"
)

const gidPrefix = "gid://"

// IsGID reports whether s looks like a global object identifier of the form
// gid://<namespace>/<Type>/<id>.
func IsGID(s string) bool {
	return strings.HasPrefix(s, gidPrefix)
}

// GIDLegacyID extracts the numeric REST id from a global object identifier,
// i.e. the digits after the final slash. ok is false when the suffix is not
// numeric.
func GIDLegacyID(gid string) (id int64, ok bool) {
	idx := strings.LastIndexByte(gid, '/')
	if idx < 0 || idx == len(gid)-1 {
		return 0, false
	}
	id, err := strconv.ParseInt(gid[idx+1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// legacyIDValue is the map value emitted for a decoded gid: the numeric id,
// or nil when the suffix is not numeric.
func legacyIDValue(gid string) interface{} {
	id, ok := GIDLegacyID(gid)
	if !ok {
		return nil
	}
	return id
}
