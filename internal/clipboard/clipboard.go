// Package clipboard writes to the system clipboard via whichever
// helper the session has available.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Copy writes text to the system clipboard. wl-copy is preferred since
// waybar implies a Wayland session; X11 and macOS helpers are
// fallbacks.
func Copy(text string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "linux":
		switch {
		case commandExists("wl-copy"):
			cmd = exec.Command("wl-copy")
		case commandExists("xclip"):
			cmd = exec.Command("xclip", "-selection", "clipboard")
		default:
			cmd = exec.Command("xsel", "--clipboard", "--input")
		}
	default:
		return fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}

	pipe, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	_, _ = pipe.Write([]byte(text))
	_ = pipe.Close()
	return cmd.Wait()
}

func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
