package proc

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// statInfo holds the fields of /proc/<pid>/stat this program consumes.
type statInfo struct {
	comm     string
	procTime uint64 // utime + stime, in clock ticks
	rssBytes uint64
}

// parseStat extracts comm, cpu time and rss from one stat line. The comm
// field is delimited by the last ')' because comm itself may contain spaces
// and parentheses; everything after it is space-separated.
func parseStat(line string, pageSize int) (statInfo, bool) {
	l := strings.IndexByte(line, '(')
	r := strings.LastIndexByte(line, ')')
	if l < 0 || r < 0 || r <= l {
		return statInfo{}, false
	}

	info := statInfo{comm: line[l+1 : r]}
	fields := strings.Fields(strings.TrimSpace(line[r+1:]))
	if len(fields) < 22 {
		return statInfo{}, false
	}

	// fields[0] is stat field 3 (state).
	field := func(i int) string { return fields[i-3] }

	utime, _ := strconv.ParseUint(field(14), 10, 64)
	stime, _ := strconv.ParseUint(field(15), 10, 64)
	info.procTime = utime + stime

	rss, _ := strconv.ParseUint(field(24), 10, 64)
	info.rssBytes = rss * uint64(pageSize)

	return info, true
}

func readStat(pid int) (statInfo, bool) {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", pid))
	if err != nil {
		return statInfo{}, false
	}
	return parseStat(strings.TrimSpace(string(data)), os.Getpagesize())
}
