package cereal

import (
	"golang.org/x/sys/unix"
)

// GetTime returns boot time in nanoseconds, matching the clock used for
// logMonoTime by the rest of the system.
func GetTime() uint64 {
	var ts unix.Timespec
	err := unix.ClockGettime(unix.CLOCK_BOOTTIME, &ts)
	if err != nil {
		panic(err)
	}
	return uint64(ts.Nano())
}
