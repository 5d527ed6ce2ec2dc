package files

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/model"
)

// audioExtensions lists the recording formats the pipeline accepts.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".mp4":  true,
	".ogg":  true,
	".flac": true,
}

// sessionSuffix matches an optional session marker at the end of a file
// stem: "_session3" or a short "_3". Long digit runs such as the year in
// "phoenix_2024" are part of the shadow ID, not a session number.
var sessionSuffix = regexp.MustCompile(`^(.+)_(?:session)?(\d{1,2})$`)

func GetProjectRoot() (string, error) {
	_, filename, _, _ := runtime.Caller(0)
	return findGoModRoot(filename)
}

// GetWavDir returns the directory where converted 16kHz WAV files are kept.
func GetWavDir() string {
	root, err := GetProjectRoot()
	if err != nil {
		log.Fatalf("GetWavDir failed: %v\n", err)
	}
	return filepath.Join(root, "data/wav")
}

func CheckAndCreateDirectory(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		fmt.Printf("Creating directory: %s\n", dir)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			log.Fatalf("Failed to create directory: %v\n", err)
		}
	}
}

// IsSupportedAudioFile reports whether the file name has a recognized
// recording extension.
func IsSupportedAudioFile(name string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(name))]
}

// ParseShadowSession derives the shadow ID and session number from a file
// name. "weaver_session2.mp3" is session 2 of shadow "weaver";
// "phoenix_2024.mp3" is session 1 of shadow "phoenix_2024".
func ParseShadowSession(fileName string) (string, int) {
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if m := sessionSuffix.FindStringSubmatch(stem); m != nil {
		session, err := strconv.Atoi(m[2])
		if err == nil && session > 0 {
			return m[1], session
		}
	}
	return stem, 1
}

// GetAllAudioFiles lists the supported recordings in inputDir, sorted by
// shadow ID and session number so transcripts come out in testimony order.
func GetAllAudioFiles(inputDir string) ([]model.FileInfo, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var fileInfos []model.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") || !IsSupportedAudioFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		shadowID, sessionNo := ParseShadowSession(entry.Name())
		fileInfos = append(fileInfos, model.FileInfo{
			FullPath:  filepath.Join(inputDir, entry.Name()),
			ModTime:   info.ModTime(),
			Name:      entry.Name(),
			ShadowID:  shadowID,
			SessionNo: sessionNo,
		})
	}

	sort.Slice(fileInfos, func(i, j int) bool {
		if fileInfos[i].ShadowID != fileInfos[j].ShadowID {
			return fileInfos[i].ShadowID < fileInfos[j].ShadowID
		}
		if fileInfos[i].SessionNo != fileInfos[j].SessionNo {
			return fileInfos[i].SessionNo < fileInfos[j].SessionNo
		}
		return fileInfos[i].Name < fileInfos[j].Name
	})

	return fileInfos, nil
}

// ReadOutputFile reads the specified output file and returns its text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}

func findGoModRoot(path string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, nil
		}
		newPath := filepath.Dir(path)
		if newPath == path {
			return "", fmt.Errorf("go.mod not found")
		}
		path = newPath
	}
}
