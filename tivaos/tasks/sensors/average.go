package sensors

// Channel indexes one analog input of the sensor board.
type Channel uint8

const (
	AccelX Channel = iota
	AccelY
	AccelZ
	JoyX
	JoyY
	Mic

	ChannelCount = 6
)

var channelLabels = [ChannelCount]string{
	AccelX: "Accelerometer X:",
	AccelY: "Accelerometer Y:",
	AccelZ: "Accelerometer Z:",
	JoyX:   "Joystick X:",
	JoyY:   "Joystick Y:",
	Mic:    "Microphone:",
}

func (c Channel) Label() string {
	if int(c) >= ChannelCount {
		return "?"
	}
	return channelLabels[c]
}

// Sample holds one raw 12-bit reading per channel.
type Sample [ChannelCount]uint16

// DefaultWindow is the number of samples averaged per readout.
const DefaultWindow = 200

// Averager accumulates samples and yields the per-channel mean of every
// Window samples. The zero value uses DefaultWindow.
type Averager struct {
	Window int

	sum [ChannelCount]uint64
	n   int
}

func (a *Averager) window() int {
	if a.Window <= 0 {
		return DefaultWindow
	}
	return a.Window
}

// Add accumulates s. When the window completes it returns the truncated
// mean of each channel and starts a new window.
func (a *Averager) Add(s Sample) (Sample, bool) {
	for i, v := range s {
		a.sum[i] += uint64(v)
	}
	a.n++
	if a.n < a.window() {
		return Sample{}, false
	}

	var avg Sample
	for i, v := range a.sum {
		avg[i] = uint16(v / uint64(a.n))
	}
	a.Reset()
	return avg, true
}

// Pending reports how many samples the current window holds.
func (a *Averager) Pending() int { return a.n }

func (a *Averager) Reset() {
	a.sum = [ChannelCount]uint64{}
	a.n = 0
}
