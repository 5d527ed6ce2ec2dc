package pipeline

import (
	"fmt"
	"os"
	"strings"
)

// AppendTranscriptBlock appends one block to the plain-text transcript
// log: the file name as a header followed by the transcribed text.
func AppendTranscriptBlock(logPath, fileName, transcription string) error {
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open transcript log: %w", err)
	}
	defer f.Close()

	block := fmt.Sprintf("=== %s ===\n%s\n\n", fileName, strings.TrimSpace(transcription))
	if _, err := f.WriteString(block); err != nil {
		return fmt.Errorf("failed to write transcript block: %w", err)
	}
	return nil
}
