package systemd

import (
	"fmt"
	"os"
)

// Remove stops the service and removes the unit file.
func Remove() error {
	fmt.Println("Removing systemd service...")

	if IsActive() {
		if err := systemctl("disable", "--now", UnitName); err != nil {
			return err
		}
		fmt.Println("Service stopped and disabled")
	}

	unitPath := UnitPath()
	if _, err := os.Stat(unitPath); err == nil {
		if err := os.Remove(unitPath); err != nil {
			return fmt.Errorf("failed to remove unit file: %w", err)
		}
		fmt.Printf("Removed unit file: %s\n", unitPath)
	}

	if err := systemctl("daemon-reload"); err != nil {
		return err
	}

	fmt.Println("Service removed")
	return nil
}
