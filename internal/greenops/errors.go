package greenops

type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrNegativeValue indicates a negative emissions figure.
	ErrNegativeValue = constError("negative emissions value")

	// ErrCalculationOverflow indicates a non-finite input or result.
	ErrCalculationOverflow = constError("calculation overflow")
)
