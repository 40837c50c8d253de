package jtd

import (
	"strconv"
	"time"
)

// isRFC3339OffsetDateTime reports whether s is a valid RFC 3339
// offset-date-time: a full-date, "T", and a full-time carrying either "Z"
// or a numeric UTC offset.
//
// Unlike time.Parse(time.RFC3339, s), seconds are parsed manually so that
// leap-second representations (":60") are accepted rather than rejected.
func isRFC3339OffsetDateTime(s string) bool {
	if len(s) < 20 { // yyyy-mm-ddThh:mm:ssZ
		return false
	}
	if s[10] != 'T' && s[10] != 't' {
		return false
	}
	return isFullDate(s[:10]) && isFullTime(s[11:])
}

func isFullDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// isFullTime parses an RFC 3339 "full-time" production: hh:mm:ss[.frac]
// followed by either "Z"/"z" or a "+hh:mm"/"-hh:mm" offset.
func isFullTime(str string) bool {
	// hh:mm:ss
	// 01234567
	if len(str) < 9 || str[2] != ':' || str[5] != ':' {
		return false
	}

	inRange := func(s string, min, max int) (int, bool) {
		n, err := strconv.Atoi(s)
		if err != nil || n < min || n > max {
			return 0, false
		}
		return n, true
	}

	h, ok := inRange(str[0:2], 0, 23)
	if !ok {
		return false
	}
	m, ok := inRange(str[3:5], 0, 59)
	if !ok {
		return false
	}
	sec, ok := inRange(str[6:8], 0, 60)
	if !ok {
		return false
	}
	str = str[8:]

	if len(str) > 0 && str[0] == '.' {
		str = str[1:]
		digits := 0
		for len(str) > 0 && str[0] >= '0' && str[0] <= '9' {
			digits++
			str = str[1:]
		}
		if digits == 0 {
			return false
		}
	}

	if len(str) == 0 {
		return false
	}

	if str[0] == 'Z' || str[0] == 'z' {
		if len(str) != 1 {
			return false
		}
	} else {
		// +hh:mm / -hh:mm
		// 0123456
		if len(str) != 6 || str[3] != ':' {
			return false
		}

		var sign int
		switch str[0] {
		case '+':
			sign = -1
		case '-':
			sign = 1
		default:
			return false
		}

		zh, ok := inRange(str[1:3], 0, 23)
		if !ok {
			return false
		}
		zm, ok := inRange(str[4:6], 0, 59)
		if !ok {
			return false
		}

		hm := (h*60 + m) + sign*(zh*60+zm)
		if hm < 0 {
			hm += 24 * 60
		}
		h, m = hm/60, hm%60
	}

	if sec == 60 && (h != 23 || m != 59) {
		return false
	}

	return true
}
