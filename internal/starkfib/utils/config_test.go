package utils

import (
	"math/big"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config == nil {
		t.Fatal("DefaultConfig() returned nil")
	}
	if config.FieldModulus.Cmp(big.NewInt(0)) <= 0 {
		t.Error("FieldModulus should be positive")
	}
	if config.ExtensionFactor <= 1 {
		t.Error("ExtensionFactor should be greater than 1")
	}
	if config.NumSamples <= 0 {
		t.Error("NumSamples should be positive")
	}
	if config.FRITargetLength <= 0 {
		t.Error("FRITargetLength should be positive")
	}
	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		expectErr bool
	}{
		{
			name:      "valid default config",
			config:    DefaultConfig(),
			expectErr: false,
		},
		{
			name: "invalid field modulus (too small)",
			config: &Config{
				FieldModulus:    big.NewInt(1),
				ExtensionFactor: 4,
				NumSamples:      5,
				FRITargetLength: 1,
			},
			expectErr: true,
		},
		{
			name: "invalid extension factor (one)",
			config: &Config{
				FieldModulus:    big.NewInt(3221225473),
				ExtensionFactor: 1,
				NumSamples:      5,
				FRITargetLength: 1,
			},
			expectErr: true,
		},
		{
			name: "invalid num samples (zero)",
			config: &Config{
				FieldModulus:    big.NewInt(3221225473),
				ExtensionFactor: 4,
				NumSamples:      0,
				FRITargetLength: 1,
			},
			expectErr: true,
		},
		{
			name: "invalid fri target length (zero)",
			config: &Config{
				FieldModulus:    big.NewInt(3221225473),
				ExtensionFactor: 4,
				NumSamples:      5,
				FRITargetLength: 0,
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.expectErr {
				t.Errorf("Validate() error = %v, expectErr = %v", err, tt.expectErr)
			}
		})
	}
}

func TestConfigWithMethodsChaining(t *testing.T) {
	config := DefaultConfig().
		WithExtensionFactor(8).
		WithNumSamples(10).
		WithFRITargetLength(2)

	if config.ExtensionFactor != 8 {
		t.Errorf("ExtensionFactor: expected 8, got %d", config.ExtensionFactor)
	}
	if config.NumSamples != 10 {
		t.Errorf("NumSamples: expected 10, got %d", config.NumSamples)
	}
	if config.FRITargetLength != 2 {
		t.Errorf("FRITargetLength: expected 2, got %d", config.FRITargetLength)
	}
}

func TestConfigClone(t *testing.T) {
	original := DefaultConfig()
	original.NumSamples = 20

	cloned := original.Clone()

	if cloned.FieldModulus.Cmp(original.FieldModulus) != 0 {
		t.Error("Cloned FieldModulus doesn't match")
	}
	if cloned.NumSamples != original.NumSamples {
		t.Error("Cloned NumSamples doesn't match")
	}

	cloned.NumSamples = 999
	if original.NumSamples == 999 {
		t.Error("Modifying clone affected original")
	}

	cloned.FieldModulus.SetInt64(123)
	if original.FieldModulus.Int64() == 123 {
		t.Error("Modifying cloned FieldModulus affected original")
	}
}

func TestConfigImmutabilityOfDefault(t *testing.T) {
	config1 := DefaultConfig()
	config2 := DefaultConfig()

	config1.NumSamples = 999
	if config2.NumSamples == 999 {
		t.Error("DefaultConfig() returns shared instances (should return independent instances)")
	}
}

func BenchmarkDefaultConfig(b *testing.B) {
	for i := 0; i < b.N; i++ {
		DefaultConfig()
	}
}

func BenchmarkConfigValidate(b *testing.B) {
	config := DefaultConfig()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		config.Validate()
	}
}
