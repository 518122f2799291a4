package engine

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// Assumed when the host's total memory cannot be determined.
const fallbackTotalMemMB = 2048

// detectTotalMemMB reads MemTotal from /proc/meminfo. Returns 0 when the
// value is unavailable (non-Linux hosts, restricted environments).
func detectTotalMemMB() int {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return 0
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			return 0
		}
		kb, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0
		}
		return kb / 1024
	}
	return 0
}
