// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"io"

	"calstage/internal/catalog"
	"calstage/internal/issue"
	"calstage/internal/splitjoin"
	"calstage/internal/staging"
)

// resolveCodes turns command arguments into normalized source codes, falling
// back to the configured code list when no arguments were given.
func resolveCodes(args []string) ([]catalog.SourceCode, error) {
	if len(args) > 0 {
		return catalog.ParseSourceCodes(args)
	}

	codes, err := settings.Codes()
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return nil, issue.NewErrorContext().
			WithOperation("resolve source codes").
			WithResource("settings").
			WithSuggestion("pass codes as arguments, e.g. 'calstage prepare DEV'").
			WithSuggestion("or configure them: calstage config set source_codes DEV,BSE,PRD").
			Wrap(fmt.Errorf("no source codes configured")).
			Build()
	}
	return codes, nil
}

// selectTool builds the split/join tool from the current settings.
func selectTool() splitjoin.Tool {
	return splitjoin.Select(settings.Tool.Bin, settings.Tool.SplitCommand, settings.Tool.JoinCommand)
}

// newPipeline builds a staging pipeline over the configured working
// directory.
func newPipeline() *staging.Pipeline {
	return staging.NewPipeline(settings.WorkingDir, selectTool())
}

// printReport writes the per-code outcomes of a batch run. Notices are
// informational; warnings name the code that failed and its cause.
func printReport(w io.Writer, rep *staging.Report) {
	for _, entry := range rep.Entries {
		switch entry.Level {
		case staging.LevelNotice:
			if entry.Code != "" {
				fmt.Fprintf(w, "%s %s: %s\n", SubtitleStyle.Render("note"), CodeStyle.Render(string(entry.Code)), entry.Message)
			} else {
				fmt.Fprintf(w, "%s %s\n", SubtitleStyle.Render("note"), entry.Message)
			}
		case staging.LevelWarning:
			label := WarningStyle.Render("warning")
			msg := entry.Message
			if entry.Err != nil {
				msg = fmt.Sprintf("%s: %v", entry.Message, entry.Err)
			}
			if entry.Code != "" {
				fmt.Fprintf(w, "%s %s: %s\n", label, CodeStyle.Render(string(entry.Code)), msg)
			} else {
				fmt.Fprintf(w, "%s %s\n", label, msg)
			}
		}
	}
}

// reportExitError converts a report with warnings into an ExitError so the
// process exit code reflects partial failure.
func reportExitError(rep *staging.Report) error {
	if !rep.HasWarnings() {
		return nil
	}
	n := len(rep.Warnings())
	return &ExitError{
		Code: 1,
		Err:  fmt.Errorf("%d of the requested codes failed", n),
	}
}
