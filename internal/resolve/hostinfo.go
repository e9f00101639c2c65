package resolve

import (
	"os"
	"runtime"
	"time"

	"github.com/juren53/pathmanager/internal/model"
)

// hostInfo captures the host metadata once per snapshot. Report
// renderers reuse the captured record instead of re-querying the OS.
func hostInfo() model.HostInfo {
	name, err := os.Hostname()
	if err != nil {
		name = "unknown"
	}
	return model.HostInfo{
		MachineName: name,
		OSName:      osName(),
		OSVersion:   osVersion(),
		Hardware:    hardware(),
		Timestamp:   time.Now(),
	}
}

func osName() string {
	switch runtime.GOOS {
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	}
	return runtime.GOOS
}
