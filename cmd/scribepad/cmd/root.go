package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"scribepad/cmd/scribepad/cmd/serve"
	"scribepad/cmd/scribepad/cmd/user"
	"scribepad/cmd/scribepad/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scribepad",
	Short: "A dictation and handwriting practice sheet service",
	Long: `Scribepad is a web backend for handwriting practice:
- Users sign up and log in against a local credential store
- Recorded audio clips are transcribed by the Whisper speech model
- Transcribed (or typed) text is rendered into a dotted-font practice
  sheet PDF for download.`,
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
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(user.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
