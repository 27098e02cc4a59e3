package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var version = "dev"
var commitHash string

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of wavshift",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wavshift Version: %s, %s/%s, Commit: %s\n",
				version, runtime.GOOS, runtime.GOARCH, commitHash)
		},
	}
}
