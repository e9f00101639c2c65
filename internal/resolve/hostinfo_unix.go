//go:build unix

package resolve

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// osVersion returns the kernel release, e.g. "6.8.0-41-generic".
func osVersion() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Release[:])
}

func hardware() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOARCH
	}
	return unix.ByteSliceToString(uts.Machine[:])
}
