package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trashtocash/admin-api/pkg/model"
)

func setBaseEnv(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "trash-to-cash")
	t.Setenv("FIREBASE_CREDS_BASE64", "e30=")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "employ", cfg.EmployeeRole)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, 1.0, cfg.ReviewRatePerSec)
	assert.Equal(t, 5, cfg.ReviewRateBurst)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown timezone", "DISPLAY_TIMEZONE", "Mars/Olympus"},
		{"log format", "LOG_FORMAT", "xml"},
		{"rate not a number", "REVIEW_RATE_PER_SEC", "fast"},
		{"zero burst", "REVIEW_RATE_BURST", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRequiresProject(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestFirebaseCredentialsJSON(t *testing.T) {
	cfg := Config{FirebaseCredsBase64: "e30="}
	data, source, err := cfg.FirebaseCredentialsJSON()
	require.NoError(t, err)
	assert.Equal(t, "base64", source)
	assert.Equal(t, "{}", string(data))

	path := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"service_account"}`), 0o600))
	cfg = Config{FirebaseCredsFile: path}
	_, source, err = cfg.FirebaseCredentialsJSON()
	require.NoError(t, err)
	assert.Equal(t, "file", source)
}

func TestOrigins(t *testing.T) {
	cfg := Config{AllowedOrigins: " http://a.test, ,http://b.test"}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins())
}

func TestParseScoring(t *testing.T) {
	s, err := ParseScoring([]byte(`
[weights]
cans = 10

[aliases]
employee_id = ["employeeId"]
`))
	require.NoError(t, err)
	assert.Equal(t, model.Weights{Glass: 2, Plastic: 3, Cans: 10}, s.Weights)
	assert.Equal(t, []string{"employeeId"}, s.Aliases.EmployeeID)
	assert.Equal(t, model.DefaultFieldAliases().OccurredAt, s.Aliases.OccurredAt)
}

func TestParseScoringRejectsUnknownKeys(t *testing.T) {
	_, err := ParseScoring([]byte("[weights]\npaper = 1\n"))
	assert.Error(t, err)
}

func TestParseScoringRejectsNegativeWeights(t *testing.T) {
	_, err := ParseScoring([]byte("[weights]\nglass = -1\n"))
	assert.Error(t, err)
}

func TestLoadScoringEmptyPath(t *testing.T) {
	s, err := LoadScoring("")
	require.NoError(t, err)
	assert.Equal(t, DefaultScoring(), s)
}
