//go:build windows

package resolve

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"
)

// osVersion returns the Windows version triple, e.g. "10.0.22631".
func osVersion() string {
	v := windows.RtlGetVersion()
	return fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber)
}

func hardware() string {
	return runtime.GOARCH
}
