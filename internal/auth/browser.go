package auth

import (
	"fmt"
	"os/exec"
	"runtime"
)

// BrowserNavigator opens URLs in the system browser.
type BrowserNavigator struct{}

var _ Navigator = BrowserNavigator{}

// OpenExternal launches the platform opener for url.
func (BrowserNavigator) OpenExternal(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	}
	return fmt.Errorf("no browser opener for %s", runtime.GOOS)
}
