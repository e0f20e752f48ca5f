package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cococonv/internal/posetrack"
	"cococonv/internal/tracking"
)

// printSummary writes v to stdout as indented JSON when asJSON is set, and
// the rendered table otherwise.
func printSummary(cmd *cobra.Command, asJSON bool, v any, render func() string) error {
	out := cmd.OutOrStdout()
	if !asJSON {
		_, err := fmt.Fprintln(out, render())
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}

func renderTrackingSummary(result tracking.Result) string {
	size := "-"
	if result.Images > 0 {
		size = fmt.Sprintf("%dx%d", result.Width, result.Height)
	}
	return renderTable(
		[]string{"Images", "Annotations", "Frame Size", "Output"},
		[][]string{{
			strconv.Itoa(result.Images),
			strconv.Itoa(result.Annotations),
			size,
			result.Path,
		}},
		[]columnAlignment{alignRight, alignRight, alignRight, alignLeft},
	)
}

func renderPoseTrackSummary(results []posetrack.Result) string {
	title := cases.Title(language.English)
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			title.String(r.Split),
			strconv.Itoa(r.Sequences),
			strconv.Itoa(r.Images),
			strconv.Itoa(r.Annotations),
			strconv.Itoa(r.Skipped),
			r.Path,
		})
	}
	return renderTable(
		[]string{"Split", "Sequences", "Images", "Annotations", "Skipped", "Output"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
	)
}
