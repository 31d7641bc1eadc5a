package systemd

import (
	"fmt"
	"os"
)

// Restart restarts the service using the existing unit file, so manual edits
// to the unit are preserved.
func Restart() error {
	unitPath := UnitPath()
	if _, err := os.Stat(unitPath); os.IsNotExist(err) {
		return fmt.Errorf("unit file not found at %s, run 'systemd install' first", unitPath)
	}

	fmt.Println("Restarting service...")
	if err := systemctl("restart", UnitName); err != nil {
		return err
	}

	fmt.Println("Service restarted.")
	return nil
}
