package cmd

import (
	"io"
	"log"
	"os"
	"time"

	logger "pagelock/internal/logging"
	"pagelock/internal/ui"
	"pagelock/internal/utils"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

// registerCommonFlags wires the shared verbosity flags and logger setup
// into a command. Every Pagelock command calls this from its init.
func registerCommonFlags(c *cobra.Command) {
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	c.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	preRun := c.PreRun
	c.PreRun = func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{Verbose: verbose, Debug: debug}
		Logger.Debugf("Running %s with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		if preRun != nil {
			preRun(cmd, args)
		}
	}
}

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			os.Stdout.WriteString(finalMsg)
		}
	}

	return s, cleanup
}

// resolvePassword returns the password from the flag, or prompts for it
// on the terminal when the flag was omitted. Encrypting commands set
// confirm so a typo cannot silently lock the operator out.
func resolvePassword(flagValue string, confirm bool) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	if confirm {
		pw, err := utils.ReadPassphraseConfirmed("Password: ", "Confirm password: ")
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}

	pw, err := utils.ReadPassphrase("Password: ")
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
