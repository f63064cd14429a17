// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

// Command alter converts markup or object-notation documents into a
// generic tree and prints the result as a listing, YAML, or an HTML
// report. With no file arguments it reads a single document from stdin.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"

	alter "github.com/elkhaliff/Alter-Converter"
	"github.com/elkhaliff/Alter-Converter/emit"
	"github.com/elkhaliff/Alter-Converter/tree"
)

var (
	outMode     = "listing"
	colorMode   = "auto"
	logLevel    = "info"
	standardize bool
	selectExpr  string

	rootCmd = &cobra.Command{
		Use:   "alter [file...]",
		Short: "Convert markup or object-notation documents to a generic tree",
		Long: "alter sniffs each input buffer, parses it with the matching reader\n" +
			"(markup or object notation), and prints the resulting tree.\n" +
			"Inputs whose format is not recognized produce no output.",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return initLogging(logLevel)
		},
		RunE: runConvert,
	}
)

func main() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", logLevel, "log level: debug|info|warn|error")
	rootCmd.Flags().StringVar(&outMode, "out", outMode, "output format: listing|yaml|html")
	rootCmd.Flags().StringVar(&colorMode, "color", colorMode, "colorize listings: auto|always|never")
	rootCmd.Flags().BoolVar(&standardize, "standardize", false,
		"standardize JWCC input (comments, trailing commas) before dispatch")
	rootCmd.Flags().StringVar(&selectExpr, "select", "", "only list subtrees matching this filter expression")
	rootCmd.AddCommand(diffCmd, detectCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	pal, err := palette()
	if err != nil {
		return err
	}
	if selectExpr != "" && outMode != "listing" {
		return errors.New("--select applies to listing output only")
	}

	for _, in := range inputs(args) {
		src, err := in.read()
		if err != nil {
			return err
		}
		if standardize {
			if std, err := hujson.Standardize(src); err == nil {
				src = std
			} else {
				logrus.Debugf("%s: standardize: %v", in.name, err)
			}
		}

		root, err := alter.Convert(string(src))
		if err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
		if root == nil {
			logrus.Warnf("%s: input format not recognized", in.name)
			continue
		}
		if err := write(root, pal); err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
	}
	return nil
}

func write(root *tree.Node, pal *emit.Palette) error {
	switch outMode {
	case "listing":
		if selectExpr == "" {
			return emit.Listing(os.Stdout, root, pal)
		}
		prog, err := emit.CompileFilter(selectExpr)
		if err != nil {
			return fmt.Errorf("compile filter: %w", err)
		}
		picked, err := emit.Select(root, prog)
		if err != nil {
			return fmt.Errorf("run filter: %w", err)
		}
		for _, n := range picked {
			if err := emit.Listing(os.Stdout, n, pal); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		out, err := emit.YAML(root)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	case "html":
		return emit.HTML(root).Render(os.Stdout)
	default:
		return fmt.Errorf("unknown output format %q", outMode)
	}
}

func palette() (*emit.Palette, error) {
	switch colorMode {
	case "always":
		return emit.DefaultPalette(), nil
	case "never":
		return nil, nil
	case "auto":
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return emit.DefaultPalette(), nil
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown color mode %q", colorMode)
	}
}

var diffCmd = &cobra.Command{
	Use:   "diff A B",
	Short: "Compare the converted trees of two documents",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		trees := make([]*tree.Node, 2)
		for i, in := range inputs(args) {
			src, err := in.read()
			if err != nil {
				return err
			}
			root, err := alter.Convert(string(src))
			if err != nil {
				return fmt.Errorf("%s: %w", in.name, err)
			} else if root == nil {
				return fmt.Errorf("%s: input format not recognized", in.name)
			}
			trees[i] = root
		}

		d := emit.DiffListings(trees[0], trees[1])
		if d == "" {
			logrus.Info("listings match")
			return nil
		}
		fmt.Print(d)
		os.Exit(1)
		return nil
	},
}

var detectCmd = &cobra.Command{
	Use:   "detect [file...]",
	Short: "Report the detected format of each input",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, in := range inputs(args) {
			src, err := in.read()
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", in.name, alter.DetectFormat(string(src)))
		}
		return nil
	},
}

type input struct {
	name string
	path string
}

func inputs(args []string) []input {
	if len(args) == 0 {
		return []input{{name: "stdin"}}
	}
	ins := make([]input, len(args))
	for i, a := range args {
		ins[i] = input{name: a, path: a}
	}
	return ins
}

func (in input) read() ([]byte, error) {
	if in.path == "" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return src, nil
	}
	src, err := os.ReadFile(in.path)
	if err != nil {
		return nil, err
	}
	return src, nil
}
