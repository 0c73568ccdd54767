package runner

import (
	"fmt"
	"os"
	"strconv"
	"syscall"
)

// CreatePidFile refuses to start a second screen: if the file names a live
// process the caller should bail out.
func CreatePidFile(path string) error {
	if pidBytes, err := os.ReadFile(path); err == nil {
		pid, err := strconv.Atoi(string(pidBytes))
		if err != nil {
			return fmt.Errorf("pidfile: could not parse pid: %w", err)
		}

		if process, err := os.FindProcess(pid); err == nil {
			// Signal 0 probes for existence without touching the process.
			if err := process.Signal(syscall.Signal(0)); err == nil {
				return fmt.Errorf("pidfile: process with pid %d already exists", pid)
			}
		}
	}

	pid := os.Getpid()
	if err := os.WriteFile(path, []byte(strconv.Itoa(pid)), 0644); err != nil {
		return fmt.Errorf("pidfile: could not write pid file: %w", err)
	}

	return nil
}

func RemovePidFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("pidfile: could not remove pid file: %w", err)
	}
	return nil
}
