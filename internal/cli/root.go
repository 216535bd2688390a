// Package cli implements the 'logsink' command, which writes a single line using one of the loggers.
package cli

import (
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/couchbase/tools-logging/log"
)

// Logger is used to report command failures on stderr.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "logsink",
})

type options struct {
	file   string
	level  string
	lock   bool
	strict bool
}

// NewRootCommand returns the 'logsink' command.
func NewRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "logsink [flags] <message...>",
		Short: "Write a log line to the console or a file",
		Long: "logsink formats the given message with a timestamp and level, then prints it to the console in " +
			"color or appends it to a file when --file is given.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "append to this file instead of printing to the console")
	flags.StringVarP(&opts.level, "level", "l", "debug", "severity of the message (debug, warning, error)")
	flags.BoolVar(&opts.lock, "lock", false, "hold an advisory lock on the file whilst appending")
	flags.BoolVar(&opts.strict, "strict", false, "exit with an error if the file can't be written")

	return cmd
}

func run(cmd *cobra.Command, opts options, args []string) error {
	level, err := log.ParseLevel(opts.level)
	if err != nil {
		return err
	}

	message := strings.Join(args, " ")

	if opts.file == "" {
		log.NewConsoleLoggerWithOptions(log.ConsoleLoggerOptions{Writer: cmd.OutOrStdout()}).Log(level, message)
		return nil
	}

	logger := log.NewFileLoggerWithOptions(opts.file, log.FileLoggerOptions{
		LockFile:    opts.lock,
		ErrorWriter: cmd.ErrOrStderr(),
	})

	if opts.strict {
		return logger.Append(level, message)
	}

	logger.Log(level, message)

	return nil
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		Logger.Fatal(err)
	}
}
