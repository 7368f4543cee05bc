package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newWorkoutsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "workouts",
		Short: "List workouts with their exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.open()
			if err != nil {
				return err
			}
			defer rt.close()

			workouts, err := rt.store.Workouts.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(workouts) == 0 {
				color.New(color.FgYellow).Fprintln(out, "No workouts yet")
				return nil
			}

			bold := color.New(color.Bold)
			faint := color.New(color.Faint)
			for _, w := range workouts {
				bold.Fprintf(out, "#%d %s\n", w.ID, w.Name)

				exercises, err := rt.store.Exercises.ListForWorkout(w.ID)
				if err != nil {
					return err
				}
				if len(exercises) == 0 {
					faint.Fprintln(out, "   (no exercises)")
					continue
				}
				for _, e := range exercises {
					fmt.Fprintf(out, "   %s %dx%d\n", padRight(e.Name, 24), e.Sets, e.Reps)
				}
			}
			return nil
		},
	}
}

func newRecentCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "Show the latest session of each workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.open()
			if err != nil {
				return err
			}
			defer rt.close()

			entries, err := rt.store.History.Recent()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				color.New(color.FgYellow).Fprintln(out, "No history yet")
				return nil
			}

			cyan := color.New(color.FgCyan)
			for _, e := range entries {
				cyan.Fprintf(out, "%s  ", e.CompletedAt.Format("2006-01-02 15:04"))
				fmt.Fprintln(out, e.WorkoutName)
			}
			return nil
		},
	}
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
