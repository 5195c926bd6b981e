// dev_process_utils/increment_version_test.go
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBumpPatch(t *testing.T) {
	testCases := []struct {
		name            string
		input           string
		expected        string
		expectedVersion string
	}{
		{
			name:            "Double quotes",
			input:           "package main\n\nconst Version = \"1.0.0\"\n",
			expected:        "package main\n\nconst Version = \"1.0.1\"\n",
			expectedVersion: "1.0.1",
		},
		{
			name:            "Trailing comment kept",
			input:           "const Version = \"0.2.9\" // release\n",
			expected:        "const Version = \"0.2.10\" // release\n",
			expectedVersion: "0.2.10",
		},
		{
			name:            "Extra spacing normalised",
			input:           "const Version   =   \"3.4.5\"",
			expected:        "const Version = \"3.4.6\"",
			expectedVersion: "3.4.6",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, version, err := bumpPatch(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
			assert.Equal(t, tc.expectedVersion, version)
		})
	}
}

func TestBumpPatch_NotFound(t *testing.T) {
	_, _, err := bumpPatch("package main\n\nvar Version = \"dev\"\n")
	assert.ErrorIs(t, err, errVersionNotFound)
}

func TestUpdateVersionInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n\nconst Version = \"1.2.3\"\n"), 0644))

	version, err := updateVersionInFile(path)

	require.NoError(t, err)
	assert.Equal(t, "1.2.4", version)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "const Version = \"1.2.4\"")

	_, err = updateVersionInFile(filepath.Join(t.TempDir(), "missing.go"))
	assert.Error(t, err)
}
