package model

import "sort"

// Record is one row of a process snapshot. A snapshot is replaced wholesale
// on every refresh; Pid is unique within one snapshot only.
type Record struct {
	Pid  int
	Name string

	// CPU is the percentage of total CPU time consumed since the source's
	// previous snapshot. The first snapshot after startup reports 0.
	CPU float64

	// Memory is the resident set size in bytes.
	Memory uint64
}

// SortByPid orders records by Pid ascending, the stable display order.
// Reapplied after every refresh and after every filter, since the /proc
// walk yields directory order.
func SortByPid(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Pid < records[j].Pid
	})
}
