package sample

// Sample describes the values parsed from one measurement cycle. Both
// fields default to zero when the measurement tool's output carries no
// usable value.
type Sample struct {
	AvgMs    float64
	StdDevMs float64
}
