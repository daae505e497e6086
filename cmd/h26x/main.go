// Command h26x adds or removes emulation prevention bytes from
// H264/H265 NALU payloads stored in files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bluenviron/h26x/pkg/codecs/h264"
)

var version = "dev"

var outputPath string

var rootCmd = &cobra.Command{
	Use:           "h26x",
	Short:         "Work with H264/H265 emulation prevention bytes.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var escapeCmd = &cobra.Command{
	Use:   "escape <file>",
	Short: "Insert emulation prevention bytes into a NALU payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transform(args[0], h264.EmulationPreventionAdd)
	},
	DisableFlagsInUseLine: true,
}

var unescapeCmd = &cobra.Command{
	Use:   "unescape <file>",
	Short: "Remove emulation prevention bytes from a NALU payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transform(args[0], h264.EmulationPreventionRemove)
	},
	DisableFlagsInUseLine: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "h26x version: %s\n", version)
		return nil
	},
	DisableFlagsInUseLine: true,
}

func init() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file (default: stdout)")

	rootCmd.AddCommand(escapeCmd)
	rootCmd.AddCommand(unescapeCmd)
	rootCmd.AddCommand(versionCmd)
}

func transform(path string, fn func([]byte) []byte) error {
	var buf []byte
	var err error

	if path == "-" {
		buf, err = io.ReadAll(os.Stdin)
	} else {
		buf, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	out := fn(buf)

	if outputPath == "" || outputPath == "-" {
		_, err = os.Stdout.Write(out)
		return err
	}

	return os.WriteFile(outputPath, out, 0o644)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "h26x: %s\n", err.Error())
		os.Exit(1)
	}
}
