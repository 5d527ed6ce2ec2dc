package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShadowSession(t *testing.T) {
	tests := []struct {
		name            string
		fileName        string
		expectedShadow  string
		expectedSession int
	}{
		{
			name:            "explicit_session_suffix",
			fileName:        "weaver_session2.mp3",
			expectedShadow:  "weaver",
			expectedSession: 2,
		},
		{
			name:            "short_numeric_suffix",
			fileName:        "atlas_3.wav",
			expectedShadow:  "atlas",
			expectedSession: 3,
		},
		{
			name:            "year_stays_in_shadow_id",
			fileName:        "phoenix_2024.mp3",
			expectedShadow:  "phoenix_2024",
			expectedSession: 1,
		},
		{
			name:            "year_plus_session",
			fileName:        "phoenix_2024_1.mp3",
			expectedShadow:  "phoenix_2024",
			expectedSession: 1,
		},
		{
			name:            "no_suffix_at_all",
			fileName:        "willow.m4a",
			expectedShadow:  "willow",
			expectedSession: 1,
		},
		{
			name:            "two_digit_session",
			fileName:        "echo_12.flac",
			expectedShadow:  "echo",
			expectedSession: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shadow, session := ParseShadowSession(tt.fileName)
			assert.Equal(t, tt.expectedShadow, shadow)
			assert.Equal(t, tt.expectedSession, session)
		})
	}
}

func TestIsSupportedAudioFile(t *testing.T) {
	assert.True(t, IsSupportedAudioFile("a.mp3"))
	assert.True(t, IsSupportedAudioFile("a.WAV"))
	assert.True(t, IsSupportedAudioFile("a.m4a"))
	assert.True(t, IsSupportedAudioFile("a.ogg"))
	assert.False(t, IsSupportedAudioFile("a.txt"))
	assert.False(t, IsSupportedAudioFile("a"))
}

func TestGetAllAudioFiles(t *testing.T) {
	dir := t.TempDir()

	names := []string{
		"willow.mp3",
		"phoenix_2024_2.mp3",
		"phoenix_2024_1.mp3",
		"notes.txt",
		".hidden.mp3",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.mp3"), 0755))

	fileInfos, err := GetAllAudioFiles(dir)
	require.NoError(t, err)

	var got []string
	for _, fi := range fileInfos {
		got = append(got, fi.Name)
	}
	// Sorted by shadow then session; dotfiles, directories and non-audio
	// files are skipped.
	assert.Equal(t, []string{"phoenix_2024_1.mp3", "phoenix_2024_2.mp3", "willow.mp3"}, got)

	assert.Equal(t, "phoenix_2024", fileInfos[0].ShadowID)
	assert.Equal(t, 1, fileInfos[0].SessionNo)
	assert.Equal(t, 2, fileInfos[1].SessionNo)
	assert.Equal(t, filepath.Join(dir, "willow.mp3"), fileInfos[2].FullPath)
}

func TestGetAllAudioFiles_MissingDirectory(t *testing.T) {
	_, err := GetAllAudioFiles("/does/not/exist")
	assert.Error(t, err)
}

func TestReadOutputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("  transcribed text \n"), 0644))

	content, err := ReadOutputFile(path)
	require.NoError(t, err)
	assert.Equal(t, "transcribed text", content)

	_, err = ReadOutputFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
