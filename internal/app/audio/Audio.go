package audio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/model"
	"github.com/Taran-0107/VoiceDetectiveAI/internal/app/util/files"
)

func GetAudioDuration(filePath string) (int, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, err
	}
	duration := int(math.Round(durationFloat))
	return duration, nil
}

func Is16kHzWavFile(filePath string) (bool, error) {
	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json", "-show_streams", filePath)
	output, err := cmd.Output()
	if err != nil {
		return false, err
	}

	var probeOutput model.FFProbeOutput
	err = json.Unmarshal(output, &probeOutput)
	if err != nil {
		return false, err
	}

	for _, stream := range probeOutput.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" && stream.SampleRate == 16000 {
			return true, nil
		}
	}

	return false, nil
}

// ConvertTo16kHzWav converts a recording to the mono 16kHz WAV layout the
// local whisper.cpp binary expects. Converted files are kept under
// data/wav so reruns skip the conversion.
func ConvertTo16kHzWav(inputFilePath string) (string, error) {
	wavDir := files.GetWavDir()
	files.CheckAndCreateDirectory(wavDir)

	stem := strings.TrimSuffix(filepath.Base(inputFilePath), filepath.Ext(inputFilePath))
	outputFilePath := filepath.Join(wavDir, stem+"_16khz.wav")
	err := convertTo16kHzWav(inputFilePath, outputFilePath)
	if err != nil {
		return "", err
	}

	return outputFilePath, nil
}

func convertTo16kHzWav(inputAudioFilePath, outputWavPath string) error {
	if _, err := os.Stat(outputWavPath); !os.IsNotExist(err) {
		log.Printf("16kHz WAV file already exists for '%s', skipping conversion.\n", inputAudioFilePath)
		return nil
	}

	log.Printf("convert to 16kHz wav: %s\n", inputAudioFilePath)

	cmd := exec.Command("ffmpeg", "-nostdin", "-i", inputAudioFilePath, "-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "1", outputWavPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("FFmpeg error: %v, stderr: %s", err, stderr.String())
	}

	log.Printf("Audio to 16kHz WAV conversion completed: '%s'\n", outputWavPath)
	return nil
}
