package proc

// IsNumeric reports whether s is a non-empty run of ASCII digits, the shape
// of a PID directory name under /proc.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
