package sparse

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eth2030/latticecore/log"
)

func TestSparse_EncodeDiagnosticLogsAndMatchesEncode(t *testing.T) {
	values := make([]int8, 64)
	values[4] = 1
	values[40] = -2

	var buf bytes.Buffer
	logger := log.New(&buf)

	blob, err := EncodeDiagnostic(values, Config{Engine: EnginePacked, Logger: &logger})
	require.NoError(t, err)

	plain, err := Encode(values, EnginePacked)
	require.NoError(t, err)
	require.Equal(t, plain, blob, "EncodeDiagnostic must produce the same bytes as Encode")
	require.NotZero(t, buf.Len(), "expected a log line to be written")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log line must be valid JSON")
	require.Equal(t, float64(2), entry["nonzero_count"])
	require.Equal(t, float64(EnginePacked), entry["engine"])
}

func TestSparse_EncodeDiagnosticNoLoggerIsSilent(t *testing.T) {
	values := make([]int8, 8)
	values[1] = 2
	_, err := EncodeDiagnostic(values, Config{Engine: EnginePacked})
	require.NoError(t, err)
}
