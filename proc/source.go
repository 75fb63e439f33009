package proc

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alexei-ozerov/syskill/model"
)

// Source enumerates live processes from /proc. It keeps the previous
// snapshot's per-PID cpu times so that each call can report CPU percentages
// relative to the last call; the records it hands out carry no state of
// their own.
type Source struct {
	prevProcTime map[int]uint64
	prevTotal    uint64
}

func NewSource() *Source {
	return &Source{prevProcTime: make(map[int]uint64)}
}

// Snapshot walks /proc and returns one record per live process, in directory
// order. CPU percent is the share of total CPU time consumed since the
// previous Snapshot call; the first call reports 0 for every process, as does
// any process first seen this call.
func (s *Source) Snapshot() ([]model.Record, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, fmt.Errorf("reading /proc: %w", err)
	}

	curTotal := ReadTotalCPUTime()
	sysDelta := uint64(1)
	if curTotal > s.prevTotal {
		sysDelta = curTotal - s.prevTotal
	}

	records := make([]model.Record, 0, len(entries))
	curProcTime := make(map[int]uint64, len(entries))

	for _, ent := range entries {
		if !IsNumeric(ent.Name()) {
			continue
		}
		pid, _ := strconv.Atoi(ent.Name())

		// The process may exit between ReadDir and here; skip and let
		// the next snapshot settle it.
		info, ok := readStat(pid)
		if !ok {
			continue
		}

		cpu := 0.0
		if prev, seen := s.prevProcTime[pid]; seen && info.procTime > prev {
			cpu = float64(info.procTime-prev) * 100.0 / float64(sysDelta)
		}
		curProcTime[pid] = info.procTime

		records = append(records, model.Record{
			Pid:    pid,
			Name:   info.comm,
			CPU:    cpu,
			Memory: info.rssBytes,
		})
	}

	s.prevProcTime = curProcTime
	s.prevTotal = curTotal
	return records, nil
}
