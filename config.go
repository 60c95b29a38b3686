package qmeasure

/*
Config holds the tunables shared by the expectation engine and the
measurement module.
*/
type Config struct {
	// Tolerance bounds the deviation from unit probability mass accepted
	// by StateTensor.Normalized.
	Tolerance float64

	// StrictRegisterMapping makes MeasureAll fail with ErrMissingMapping
	// when a classical column has no entry in the register mapping,
	// instead of dropping that column from the output.
	StrictRegisterMapping bool
}

func NewConfig() *Config {
	return &Config{
		Tolerance:             1e-6,
		StrictRegisterMapping: false,
	}
}
