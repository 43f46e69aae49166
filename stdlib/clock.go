package stdlib

import (
	"dis/object"
	"time"
)

var (
	startWall = time.Now()
	epochBase = float64(startWall.UnixNano()) / float64(time.Second)
)

// clock returns seconds since the Unix epoch. It is derived from the
// monotonic reading taken at start up, so it never goes backwards.
func clock(args ...object.Object) object.Object {
	return &object.Float{Value: epochBase + time.Since(startWall).Seconds()}
}
