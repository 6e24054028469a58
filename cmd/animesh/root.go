package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"animesh/internal/anilist"
	"animesh/internal/config"
	"animesh/internal/logger"
	"animesh/internal/schedule"
)

// app holds state shared by subcommands once flags and environment are merged.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:          "animesh",
		Version:      version,
		Short:        "Track anime schedules and discover new shows",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetVersionTemplate(`{{printf "animesh %s\n" .Version}}`)
	root.PersistentFlags().String("log-level", "", "log verbosity: debug, info, warn or error (env ANIMESH_LOG_LEVEL)")

	root.AddCommand(newScheduleCmd(a), newServeCmd(a))
	return root
}

// init binds flags to configuration keys so unset flags fall back to ANIMESH_* variables.
func (a *app) init(cmd *cobra.Command) error {
	bindings := map[string]string{
		"log_level": "log-level",
		"timezone":  "timezone",
		"no_color":  "no-color",
	}
	for key, name := range bindings {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg, err := config.FromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	l, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = l
	return nil
}

// planner builds a schedule planner over the API, or over a saved response when input is set.
func (a *app) planner(input string) (*schedule.Planner, error) {
	var source schedule.Source
	if input != "" {
		fs, err := schedule.NewFileSource(input)
		if err != nil {
			return nil, err
		}
		source = fs
	} else {
		client := anilist.NewClient(
			anilist.WithBaseURL(a.cfg.APIURL),
			anilist.WithTimeout(a.cfg.HTTPTimeout),
			anilist.WithPaging(a.cfg.PerPage, a.cfg.MaxPages),
			anilist.WithLogger(a.logger),
		)
		source = schedule.AniListSource{Client: client}
	}

	return schedule.NewPlanner(source, schedule.LocalOffset(time.Now()), a.logger)
}
