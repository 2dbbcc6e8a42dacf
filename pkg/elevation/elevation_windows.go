//go:build windows

package elevation

import "golang.org/x/sys/windows"

func probe() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
