// Package sensor keeps the latest motion sensor samples.
package sensor

// Kind is the type of a motion sensor.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindAccel
	KindGyro
)

func (k Kind) String() string {
	switch k {
	case KindAccel:
		return "accel"
	case KindGyro:
		return "gyro"
	default:
		return "unknown"
	}
}

// Vec3 is one three-axis sample.
type Vec3 [3]float32

// Aggregator holds the most recent accelerometer and gyroscope samples.
// There is no history, smoothing or timestamping.
type Aggregator struct {
	accel Vec3
	gyro  Vec3
}

// Update stores v as the latest sample of kind k. It reports false and
// leaves the aggregator untouched for kinds it does not track.
func (a *Aggregator) Update(k Kind, v Vec3) bool {
	switch k {
	case KindAccel:
		a.accel = v
	case KindGyro:
		a.gyro = v
	default:
		return false
	}
	return true
}

// Accel returns the latest accelerometer sample.
func (a *Aggregator) Accel() Vec3 {
	return a.accel
}

// Gyro returns the latest gyroscope sample.
func (a *Aggregator) Gyro() Vec3 {
	return a.gyro
}
