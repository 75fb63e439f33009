package model

import "testing"

func TestSortByPidOrdersAscending(t *testing.T) {
	records := []Record{
		{Pid: 42, Name: "c"},
		{Pid: 1, Name: "a"},
		{Pid: 7, Name: "b"},
	}

	SortByPid(records)

	for i, want := range []int{1, 7, 42} {
		if records[i].Pid != want {
			t.Fatalf("records[%d].Pid = %d, want %d", i, records[i].Pid, want)
		}
	}
}

func TestSortByPidHandlesDegenerateInputs(t *testing.T) {
	SortByPid(nil)
	SortByPid([]Record{})

	one := []Record{{Pid: 9}}
	SortByPid(one)
	if one[0].Pid != 9 {
		t.Fatalf("single-element sort changed Pid to %d", one[0].Pid)
	}
}
