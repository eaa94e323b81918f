// vcxml inspects and surgically rewrites Visual Studio project files.
// Regions a command does not change are reproduced byte-for-byte, so the
// resulting version-control diffs contain only the intended edit.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vcxtools/vcxml"
	"github.com/vcxtools/vcxml/internal/projfile"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:           "vcxml",
		Short:         "Inspect and surgically rewrite Visual Studio project files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(inspectCmd(), guidCmd(), removeCmd(), setCmd(), verifyCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Log the event stream of a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			data, _, err := projfile.Read(args[0])
			if err != nil {
				return err
			}
			return vcxml.Inspect(data, vcxml.NewEventLogger(log))
		},
	}
}

func guidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guid FILE",
		Short: "Print the ProjectGuid values of a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, _, err := projfile.Read(args[0])
			if err != nil {
				return err
			}
			collector := vcxml.CollectText("ProjectGuid")
			if err := vcxml.Inspect(data, collector); err != nil {
				return err
			}
			if len(collector.Values) == 0 {
				return fmt.Errorf("%s: no ProjectGuid element", args[0])
			}
			for _, v := range collector.Values {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
}

func removeCmd() *cobra.Command {
	var element string
	var inPlace bool
	cmd := &cobra.Command{
		Use:   "remove FILE",
		Short: "Remove every element with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transformFile(cmd, args[0], inPlace, vcxml.RemoveElements(element))
		},
	}
	cmd.Flags().StringVarP(&element, "element", "e", "", "element name to remove")
	cmd.Flags().BoolVarP(&inPlace, "write", "w", false, "rewrite the file in place")
	_ = cmd.MarkFlagRequired("element")
	return cmd
}

func setCmd() *cobra.Command {
	var element, value string
	var inPlace bool
	cmd := &cobra.Command{
		Use:   "set FILE",
		Short: "Set the text content of every element with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transformFile(cmd, args[0], inPlace, vcxml.SetElementText(element, value))
		},
	}
	cmd.Flags().StringVarP(&element, "element", "e", "", "element name to rewrite")
	cmd.Flags().StringVar(&value, "value", "", "new text content")
	cmd.Flags().BoolVarP(&inPlace, "write", "w", false, "rewrite the file in place")
	_ = cmd.MarkFlagRequired("element")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE",
		Short: "Check that the file round-trips byte-identically",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, _, err := projfile.Read(args[0])
			if err != nil {
				return err
			}
			var out bytes.Buffer
			if err := vcxml.Transform(data, nil, &out); err != nil {
				return err
			}
			if !bytes.Equal(data, out.Bytes()) {
				return fmt.Errorf("%s: output differs from input", args[0])
			}
			return nil
		},
	}
}

func transformFile(cmd *cobra.Command, path string, inPlace bool, stage vcxml.Stage) error {
	data, bom, err := projfile.Read(path)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := vcxml.Transform(data, stage, &out); err != nil {
		return err
	}
	if inPlace {
		return projfile.Write(path, out.Bytes(), bom)
	}
	_, err = cmd.OutOrStdout().Write(out.Bytes())
	return err
}
