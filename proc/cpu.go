package proc

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// ReadTotalCPUTime returns the sum of all time fields on the first line of
// /proc/stat, in clock ticks across all CPUs. Returns 0 when unreadable.
func ReadTotalCPUTime() uint64 {
	f, err := os.Open("/proc/stat")
	if err != nil {
		return 0
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil {
		return 0
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0
	}

	var total uint64
	for _, tok := range fields[1:] {
		if v, err := strconv.ParseUint(tok, 10, 64); err == nil {
			total += v
		}
	}
	return total
}
