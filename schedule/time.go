package schedule

import "fmt"

// TimeToMinutes converts "HH:MM" to minutes since midnight. A trailing
// seconds component ("HH:MM:SS") is ignored. Returns 0 for invalid input.
func TimeToMinutes(t string) int {
	if len(t) < 5 || t[2] != ':' {
		return 0
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}

// MinutesToTime converts minutes since midnight to "HH:MM" format.
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= 24*60 {
		m = 24*60 - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ValidTime reports whether t is a well-formed "HH:MM" or "HH:MM:SS" string.
func ValidTime(t string) bool {
	if len(t) != 5 && len(t) != 8 {
		return false
	}
	if t[2] != ':' {
		return false
	}
	if len(t) == 8 && t[5] != ':' {
		return false
	}
	for i, c := range []byte(t) {
		if i == 2 || i == 5 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	h := int(t[0]-'0')*10 + int(t[1]-'0')
	m := int(t[3]-'0')*10 + int(t[4]-'0')
	return h < 24 && m < 60
}
