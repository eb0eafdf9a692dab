package core

// World dimensions in simulation units. The renderer scales these to the
// terminal grid or window size.
const (
	WorldW = 800.0
	WorldH = 600.0
)

// TimerEpsilon absorbs float drift in millisecond countdowns driven by
// 1/60 s steps, so 120 steps always cover exactly 2000 ms.
const TimerEpsilon = 1e-6

// Expired reports whether a remaining-milliseconds countdown has run out.
func Expired(remainingMS float64) bool {
	return remainingMS <= TimerEpsilon
}

// Reached reports whether an elapsed-milliseconds counter has hit target.
func Reached(elapsedMS, targetMS float64) bool {
	return elapsedMS >= targetMS-TimerEpsilon
}
