package utils

import (
	"fmt"
	"math/big"
)

// Config holds the parameters build_proof needs beyond the trace itself.
type Config struct {
	// Field modulus for finite field arithmetic.
	FieldModulus *big.Int

	// ExtensionFactor is the low-degree-extension blowup (extended length =
	// ExtensionFactor * trace length).
	ExtensionFactor int

	// NumSamples is the number of positions the verifier samples.
	NumSamples int

	// FRITargetLength is the length FRI folds down to before stopping.
	FRITargetLength int
}

// DefaultConfig returns the configuration used by the Fibonacci demo: the
// pinned default prime, a 4x blowup, 5 samples, folding FRI down to length 1.
func DefaultConfig() *Config {
	return &Config{
		FieldModulus:    big.NewInt(3221225473), // 3 * 2^30 + 1
		ExtensionFactor: 4,
		NumSamples:      5,
		FRITargetLength: 1,
	}
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.FieldModulus.Cmp(big.NewInt(2)) <= 0 {
		return fmt.Errorf("field modulus must be greater than 2")
	}
	if c.ExtensionFactor <= 1 {
		return fmt.Errorf("extension factor must be greater than 1")
	}
	if c.NumSamples <= 0 {
		return fmt.Errorf("number of samples must be positive")
	}
	if c.FRITargetLength <= 0 {
		return fmt.Errorf("FRI target length must be positive")
	}
	return nil
}

// WithFieldModulus sets the field modulus.
func (c *Config) WithFieldModulus(modulus *big.Int) *Config {
	c.FieldModulus = new(big.Int).Set(modulus)
	return c
}

// WithExtensionFactor sets the LDE blowup factor.
func (c *Config) WithExtensionFactor(factor int) *Config {
	c.ExtensionFactor = factor
	return c
}

// WithNumSamples sets the number of verifier samples.
func (c *Config) WithNumSamples(n int) *Config {
	c.NumSamples = n
	return c
}

// WithFRITargetLength sets the length FRI folds down to.
func (c *Config) WithFRITargetLength(n int) *Config {
	c.FRITargetLength = n
	return c
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	return &Config{
		FieldModulus:    new(big.Int).Set(c.FieldModulus),
		ExtensionFactor: c.ExtensionFactor,
		NumSamples:      c.NumSamples,
		FRITargetLength: c.FRITargetLength,
	}
}
