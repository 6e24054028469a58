package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"animesh/internal/render"
	"animesh/internal/schedule"
)

func newScheduleCmd(a *app) *cobra.Command {
	var (
		day    string
		days   uint32
		output string
		input  string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "View anime airing schedule",
		Example: `  animesh schedule
  animesh schedule --day friday --days 3
  animesh schedule -t JST -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(output)
			if err != nil {
				return err
			}

			planner, err := a.planner(input)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.HTTPTimeout*time.Duration(a.cfg.MaxPages))
			defer cancel()

			result, err := planner.Run(ctx, schedule.Request{
				Day:      day,
				Days:     days,
				Timezone: a.cfg.Timezone,
			})
			if err != nil {
				return err
			}

			r := render.Renderer{Out: cmd.OutOrStdout(), Color: !a.cfg.NoColor}
			return r.Render(result, format)
		},
	}

	cmd.Flags().StringVarP(&day, "day", "w", "", "day of the week to show schedule for (e.g. monday, tue)")
	cmd.Flags().Uint32VarP(&days, "days", "n", 1, "number of days to show schedule for")
	cmd.Flags().StringP("timezone", "t", "", "timezone to show schedule in (e.g. UTC, IST, JST, +05:30, Asia/Tokyo)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table or json")
	cmd.Flags().Bool("no-color", false, "disable coloured table output")
	cmd.Flags().StringVar(&input, "input", "", "read airings from a saved AniList response instead of the API")
	return cmd
}
