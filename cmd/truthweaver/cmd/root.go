package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Taran-0107/VoiceDetectiveAI/cmd/truthweaver/cmd/analyze"
	"github.com/Taran-0107/VoiceDetectiveAI/cmd/truthweaver/cmd/export"
	"github.com/Taran-0107/VoiceDetectiveAI/cmd/truthweaver/cmd/run"
	"github.com/Taran-0107/VoiceDetectiveAI/cmd/truthweaver/cmd/transcribe"
	"github.com/Taran-0107/VoiceDetectiveAI/cmd/truthweaver/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "truthweaver",
	Short: "Transcribe testimony recordings and analyze each subject for contradictions",
	Long: `Truth Weaver transcribes a directory of testimony recordings, groups the
transcripts by shadow (subject), and asks Gemini for a structured
contradiction and deception analysis per shadow.
- transcribe: batch-convert recordings to text (transcript log + session store)
- analyze: produce the per-shadow analysis report JSON
- run: both steps in sequence`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(analyze.Cmd)
	rootCmd.AddCommand(run.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
