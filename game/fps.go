package game

import (
	"fmt"
	"time"
)

// FPSWindow is the number of frame timestamps averaged by FPSMeter
const FPSWindow = 30

// FPSMeter averages frame rate over the last FPSWindow frames
type FPSMeter struct {
	stamps [FPSWindow]time.Time
	head   int // Index of the oldest stamp once full
	count  int
}

// Record adds a frame timestamp
func (f *FPSMeter) Record(now time.Time) {
	if f.count < FPSWindow {
		f.stamps[f.count] = now
		f.count++
		return
	}
	f.stamps[f.head] = now
	f.head = (f.head + 1) % FPSWindow
}

// FPS returns frames per second across the window, 0 with fewer than 2 frames
func (f *FPSMeter) FPS() float64 {
	if f.count < 2 {
		return 0
	}
	oldest := f.stamps[f.head%f.count]
	newest := f.stamps[(f.head+f.count-1)%f.count]
	span := newest.Sub(oldest).Seconds()
	if span <= 0 {
		return 0
	}
	return float64(f.count-1) / span
}

// Clock splits a duration into whole hours, minutes and seconds
func Clock(d time.Duration) (hours, minutes, seconds int) {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return total / 3600, (total % 3600) / 60, total % 60
}

// FormatElapsed renders d as HH:MM:SS
func FormatElapsed(d time.Duration) string {
	h, m, s := Clock(d)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
