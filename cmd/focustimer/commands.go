package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"focustimer/internal/di"
	"focustimer/internal/models"
	"focustimer/internal/services"
	"focustimer/internal/structures"
	"focustimer/internal/timestats"
	"focustimer/internal/tui"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func parseAt(at string) (time.Time, error) {
	if at == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at must be RFC 3339: %w", err)
	}
	return t, nil
}

func newTimerCmd(flags *structures.CliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "timer",
		Short: "Run the stopwatch in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withToolkit(flags, func(tk *di.Toolkit) error {
				return tui.Run(tk.Conf, tk.Sessions, tk.Stats, tk.Notifier, tk.Metrics, tk.Logger)
			})
		},
	}
}

func newStatsCmd(flags *structures.CliFlags) *cobra.Command {
	var at string
	var grid bool
	cmd := &cobra.Command{
		Use:       "stats [weekly|daily|hourly|heatmap|summary]",
		Short:     "Print aggregate statistics as JSON",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"weekly", "daily", "hourly", "heatmap", "summary"},
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseAt(at)
			if err != nil {
				return err
			}
			view := "summary"
			if len(args) == 1 {
				view = args[0]
			}
			return withToolkit(flags, func(tk *di.Toolkit) error {
				ctx := context.Background()
				var out any
				switch view {
				case "weekly":
					out = tk.Stats.Weekly(ctx, now)
				case "daily":
					out = tk.Stats.Daily(ctx, now)
				case "hourly":
					out = tk.Stats.Hourly(ctx)
				case "heatmap":
					cells := tk.Stats.HeatMap(ctx)
					if grid {
						renderHeatMap(cmd.OutOrStdout(), cells, timestats.LookupLocale(tk.Conf.Display.Locale))
						return nil
					}
					out = cells
				default:
					out = tk.Stats.Summary(ctx, now)
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "reference instant (RFC 3339), defaults to now")
	cmd.Flags().BoolVar(&grid, "grid", false, "render the heat map as a text grid instead of JSON")
	return cmd
}

func newSessionsCmd(flags *structures.CliFlags) *cobra.Command {
	sessions := &cobra.Command{Use: "sessions", Short: "List, add and delete sessions"}

	var query string
	list := &cobra.Command{
		Use:   "list",
		Short: "List sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withToolkit(flags, func(tk *di.Toolkit) error {
				loc := tk.Conf.Location()
				locale := timestats.LookupLocale(tk.Conf.Display.Locale)
				list := services.FilterByDate(tk.Sessions.List(context.Background()), query, locale, loc)
				if len(list) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
					return nil
				}
				for _, s := range list {
					start := s.StartTime.In(loc)
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s-%s\t%s\t%s\n",
						s.ID, locale.Date(start), locale.Clock(start), locale.Clock(s.EndTime.In(loc)),
						timestats.FormatDuration(s.Duration), s.Source)
				}
				return nil
			})
		},
	}
	list.Flags().StringVarP(&query, "query", "q", "", "keep sessions whose d/M/yyyy start date contains this text")

	var start, end string
	add := &cobra.Command{
		Use:   "add --start <RFC3339> --end <RFC3339>",
		Short: "Record a session manually",
		RunE: func(cmd *cobra.Command, _ []string) error {
			startTime, err := time.Parse(time.RFC3339, start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			endTime, err := time.Parse(time.RFC3339, end)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}
			return withToolkit(flags, func(tk *di.Toolkit) error {
				s := &models.Session{
					StartTime: startTime,
					EndTime:   endTime,
					Duration:  int(endTime.Sub(startTime).Seconds()),
					Source:    models.SourceLocal,
				}
				if err := tk.Sessions.Insert(context.Background(), s); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session saved: %s (%s)\n", s.ID, timestats.FormatDurationDetailed(s.Duration))
				return nil
			})
		},
	}
	add.Flags().StringVar(&start, "start", "", "start time")
	add.Flags().StringVar(&end, "end", "", "end time")
	_ = add.MarkFlagRequired("start")
	_ = add.MarkFlagRequired("end")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withToolkit(flags, func(tk *di.Toolkit) error {
				if err := tk.Sessions.Delete(context.Background(), args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}

	sessions.AddCommand(list, add, del)
	return sessions
}

func newSettingsCmd(flags *structures.CliFlags) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Show or change user settings"}

	settings.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withToolkit(flags, func(tk *di.Toolkit) error {
				return printJSON(cmd.OutOrStdout(), tk.Sessions.Settings(context.Background()))
			})
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "set <weeklyGoal> [exitFullscreenOnPause]",
		Short: "Change the weekly goal (hours) and the pause behaviour",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := cast.ToFloat64E(args[0])
			if err != nil {
				return fmt.Errorf("weeklyGoal: %w", err)
			}
			return withToolkit(flags, func(tk *di.Toolkit) error {
				ctx := context.Background()
				next := tk.Sessions.Settings(ctx)
				next.WeeklyGoal = goal
				if len(args) == 2 {
					if next.ExitFullscreenOnPause, err = cast.ToBoolE(args[1]); err != nil {
						return fmt.Errorf("exitFullscreenOnPause: %w", err)
					}
				}
				if err := services.ValidateSettings(next); err != nil {
					return err
				}
				if err := tk.Sessions.SaveSettings(ctx, next); err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), next)
			})
		},
	})
	return settings
}

func newExportCmd(flags *structures.CliFlags) *cobra.Command {
	export := &cobra.Command{Use: "export", Short: "Export sessions as CSV or a JSON backup"}

	var out string
	run := func(format string) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			return withToolkit(flags, func(tk *di.Toolkit) error {
				now := time.Now()
				w := cmd.OutOrStdout()
				if out != "" {
					if out == "." {
						out = services.CSVFileName(now)
						if format == "json" {
							out = services.JSONFileName(now)
						}
					}
					f, err := os.Create(out)
					if err != nil {
						return err
					}
					defer f.Close()
					w = f
				}
				if format == "json" {
					return tk.Transfer.ExportJSON(context.Background(), w, now)
				}
				return tk.Transfer.ExportCSV(context.Background(), w)
			})
		}
	}

	csvCmd := &cobra.Command{Use: "csv", Short: "Export sessions as CSV", RunE: run("csv")}
	jsonCmd := &cobra.Command{Use: "json", Short: "Export a JSON backup", RunE: run("json")}
	export.PersistentFlags().StringVarP(&out, "out", "o", "", `output file ("." for the dated default name), stdout when empty`)
	export.AddCommand(csvCmd, jsonCmd)
	return export
}

func newImportCmd(flags *structures.CliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import <backup.json>",
		Short: "Import a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return withToolkit(flags, func(tk *di.Toolkit) error {
				result, err := tk.Transfer.ImportJSON(context.Background(), f)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d sessions, skipped %d, settings saved: %t\n",
					result.Imported, result.Skipped, result.SettingsSaved)
				return nil
			})
		},
	}
}

func newDemoCmd(flags *structures.CliFlags) *cobra.Command {
	var seed string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Load two weeks of sample sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Now()
			s := uint64(now.UnixNano())
			if seed != "" {
				v, err := cast.ToUint64E(seed)
				if err != nil {
					return fmt.Errorf("--seed: %w", err)
				}
				s = v
			}
			return withToolkit(flags, func(tk *di.Toolkit) error {
				added, err := tk.Transfer.LoadDemo(context.Background(), now, rand.New(rand.NewPCG(s, 0)))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %d demo sessions\n", added)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "", "random seed for reproducible data")
	return cmd
}

func newClearCmd(flags *structures.CliFlags) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every session and reset settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear data without --yes")
			}
			return withToolkit(flags, func(tk *di.Toolkit) error {
				if err := tk.Sessions.Clear(context.Background()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all data cleared")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm")
	return cmd
}
