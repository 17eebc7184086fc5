package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stt/internal/xlog"
)

// newRootCmd builds the sttctl command tree.
func newRootCmd() *cobra.Command {
	var (
		file    string
		impl    string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "sttctl",
		Short: "Run a spec.md §6.3 query file against a dynamic-forest implementation",
	}

	run := &cobra.Command{
		Use:   "run",
		Short: "Parse and execute a query file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(file, impl, verbose)
		},
	}
	run.Flags().StringVarP(&file, "file", "f", "", "path to a spec.md §6.3 query file (required)")
	run.Flags().StringVarP(&impl, "impl", "i", "greedy-splay", "implementation: move-to-root, stable-move-to-root, greedy-splay, stable-greedy-splay, two-pass-splay, stable-two-pass-splay, local-two-pass-splay, stable-local-two-pass-splay, link-cut, one-cut, graph, simple")
	run.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every query, not just the summary")
	_ = run.MarkFlagRequired("file")

	root.AddCommand(run)
	return root
}

func runCommand(filePath, impl string, verbose bool) error {
	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	qf, err := ParseQueryFile(f)
	if err != nil {
		return err
	}

	log := xlog.New()
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	entry := log.WithField("run_id", uuid.NewString())
	entry.WithFields(logrus.Fields{
		"kind":     qf.Kind,
		"vertices": qf.NumVertices,
		"queries":  len(qf.Queries),
		"impl":     impl,
	}).Info("starting run")

	return runQueries(qf, impl, entry)
}

// Execute runs the sttctl command tree, returning any error it produced.
func Execute() error {
	return newRootCmd().Execute()
}
