package sparse

import "github.com/rs/zerolog"

// Config bundles the caller-chosen codec engine with an optional
// diagnostic logger. Nothing in Encode/Decode's core path depends on it;
// it only drives EncodeDiagnostic's logging, keeping the constant-time
// argument moot (this package, unlike field/ntt64/prf/rs, never handles
// secret-dependent branching in the first place).
type Config struct {
	Engine Engine
	Logger *zerolog.Logger
}

// EncodeDiagnostic behaves exactly like Encode(values, cfg.Engine), but
// when cfg.Logger is non-nil it additionally logs the chosen engine, the
// non-zero count, and the resulting compression ratio against the naive
// one-byte-per-element baseline.
func EncodeDiagnostic(values []int8, cfg Config) ([]byte, error) {
	blob, err := Encode(values, cfg.Engine)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error().Err(err).Int("dimension", len(values)).Msg("sparse encode failed")
		}
		return nil, err
	}
	if cfg.Logger != nil {
		k := 0
		for _, v := range values {
			if v != 0 {
				k++
			}
		}
		ratio := float64(len(blob)) / float64(len(values))
		cfg.Logger.Debug().
			Int("dimension", len(values)).
			Int("nonzero_count", k).
			Uint8("engine", uint8(cfg.Engine)).
			Int("encoded_bytes", len(blob)).
			Float64("bytes_per_element", ratio).
			Msg("sparse vector encoded")
	}
	return blob, nil
}
