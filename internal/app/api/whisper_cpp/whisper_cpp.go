package whisper_cpp

import (
	"bytes"
	"fmt"
	"log"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/audio"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/util/files"
)

// LocalTranscriber implements local transcription, using the whisper.cpp
// binary through os/exec.
type LocalTranscriber struct {
	binaryPath string
	modelPath  string
	language   string
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(binaryPath, modelPath, language string) *LocalTranscriber {
	if language == "" {
		language = "en"
	}
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelPath:  modelPath,
		language:   language,
	}
}

// Transcript converts the recording to 16kHz WAV if needed, runs the
// whisper.cpp binary with text output, and reads the result back.
func (lt *LocalTranscriber) Transcript(inputFilePath string) (string, error) {
	log.Printf("Starting transcription of file %s\n", inputFilePath)

	is16kHzWav, err := audio.Is16kHzWavFile(inputFilePath)
	if err != nil {
		return "", fmt.Errorf("error checking input file: %v", err)
	}

	if !is16kHzWav {
		inputFilePath, err = audio.ConvertTo16kHzWav(inputFilePath)
		if err != nil {
			return "", fmt.Errorf("error converting input file: %v", err)
		}
	}

	outputFile := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath))

	args := []string{
		"-m", lt.modelPath,
		"-l", lt.language,
		"-otxt",
		"-f", inputFilePath,
		"-of", outputFile,
	}

	command := exec.Command(lt.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	log.Printf("Running transcription command: %s %s", lt.binaryPath, strings.Join(args, " "))

	err = command.Run()
	if err != nil {
		return "", fmt.Errorf("command execution error: %v, stderr: %s", err, stderr.String())
	}

	output, err := files.ReadOutputFile(outputFile + ".txt")
	if err != nil {
		return "", fmt.Errorf("failed to read output file: %v", err)
	}

	return output, nil
}
