package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ErrInvalidTimeFormat is returned when a time string is not "HH:MM" 24-hour.
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

// TimeToMinutes converts an "HH:MM" string to minutes from midnight [0, 1439].
func TimeToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, t)
	}
	return hours*60 + minutes, nil
}

// MinutesToTime converts minutes from midnight to an "HH:MM" string,
// wrapping modulo one day.
func MinutesToTime(m int) string {
	m %= minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutes shifts an "HH:MM" time by delta minutes, wrapping across midnight.
func AddMinutes(t string, delta int) (string, error) {
	m, err := TimeToMinutes(t)
	if err != nil {
		return "", err
	}
	return MinutesToTime(m + delta), nil
}

// Duration returns end minus start in minutes. Ordering is not validated here;
// callers must reject non-positive durations.
func Duration(start, end string) (int, error) {
	s, err := TimeToMinutes(start)
	if err != nil {
		return 0, err
	}
	e, err := TimeToMinutes(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}
