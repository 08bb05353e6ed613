package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/flowise/cycle-tracker/internal/cycle"
	"github.com/flowise/cycle-tracker/internal/domain"
	"github.com/flowise/cycle-tracker/internal/insight"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const monthLayout = "2006-01"

// now is replaced in tests.
var now = time.Now

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cyclectl",
		Short:         "Offline cycle predictions and insight prompts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDayCmd(), newPhaseCmd(), newCalendarCmd(), newSummaryCmd(), newPromptCmd())
	return root
}

// --- baseline flags ---

type baselineFlags struct {
	last   string
	cycle  int
	period int
}

func (f *baselineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.last, "last", "", "first day of the last period (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.cycle, "cycle", cycle.DefaultCycleLength, "average cycle length in days")
	cmd.Flags().IntVar(&f.period, "period", cycle.DefaultPeriodLength, "average period length in days")
	_ = cmd.MarkFlagRequired("last")
}

func (f *baselineFlags) baseline() (cycle.Baseline, error) {
	last, err := domain.ParseDate(f.last)
	if err != nil {
		return cycle.Baseline{}, fmt.Errorf("--last: %w", err)
	}
	if f.cycle <= 0 {
		return cycle.Baseline{}, fmt.Errorf("--cycle must be positive")
	}
	return cycle.Baseline{LastPeriod: last.Time, CycleLength: f.cycle, PeriodLength: f.period}, nil
}

// dateFlag parses an optional YYYY-MM-DD value, defaulting to today.
func dateFlag(value string) (time.Time, error) {
	if value == "" {
		return cycle.Civil(now()), nil
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, err
	}
	return d.Time, nil
}

// --- day ---

type dayOutput struct {
	Date string `json:"date"`
	cycle.DayClassification
	Phase cycle.PhaseInfo `json:"phase"`
}

func newDayCmd() *cobra.Command {
	var flags baselineFlags
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Classify one date against a baseline",
		Long: `Classify one date against a baseline.

Examples:
  cyclectl day --last 2024-01-01 --cycle 28 --period 5 --date 2024-01-15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := flags.baseline()
			if err != nil {
				return err
			}
			d, err := dateFlag(date)
			if err != nil {
				return fmt.Errorf("--date: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), dayOutput{
				Date:              d.Format(cycle.DateLayout),
				DayClassification: cycle.ClassifyDay(d, b),
				Phase:             cycle.Phase(d, b),
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&date, "date", "", "date to classify (YYYY-MM-DD, default today)")
	return cmd
}

// --- phase ---

func newPhaseCmd() *cobra.Command {
	var flags baselineFlags
	var date string

	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Show the cycle phase of a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := flags.baseline()
			if err != nil {
				return err
			}
			d, err := dateFlag(date)
			if err != nil {
				return fmt.Errorf("--date: %w", err)
			}
			p := cycle.Phase(d, b)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s  day %d  %.0f%%\n%s\n", p.Name, p.CycleDay, p.Progress, p.Description)
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&date, "date", "", "date to inspect (YYYY-MM-DD, default today)")
	return cmd
}

// --- calendar ---

func newCalendarCmd() *cobra.Command {
	var flags baselineFlags
	var month, today string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a month grid with predicted periods and fertile days",
		Long: `Print a month grid with predicted periods and fertile days.

Legend: P recorded period, p predicted period, O ovulation, f fertile, > today.

Examples:
  cyclectl calendar --last 2024-01-01 --month 2024-02
  cyclectl calendar --last 2024-01-01 --month 2024-02 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := flags.baseline()
			if err != nil {
				return err
			}
			t, err := dateFlag(today)
			if err != nil {
				return fmt.Errorf("--today: %w", err)
			}
			start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
			if month != "" {
				if start, err = time.Parse(monthLayout, month); err != nil {
					return fmt.Errorf("--month must be YYYY-MM")
				}
			}

			days := cycle.MonthGrid(start, b, t, nil)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), days)
			}
			return renderGrid(cmd.OutOrStdout(), start, days)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&month, "month", "", "month to show (YYYY-MM, default the month of --today)")
	cmd.Flags().StringVar(&today, "today", "", "reference date for highlighting (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the grid as JSON")
	return cmd
}

func renderGrid(w io.Writer, month time.Time, days []cycle.CalendarDay) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", month.Format("January 2006"))
	sb.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")
	for i, d := range days {
		sb.WriteString(gridCell(d))
		if i%7 == 6 {
			sb.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func gridCell(d cycle.CalendarDay) string {
	if !d.InMonth {
		return "    "
	}
	mark := " "
	switch {
	case d.IsPeriod && d.IsPredicted:
		mark = "p"
	case d.IsPeriod:
		mark = "P"
	case d.IsOvulation:
		mark = "O"
	case d.IsFertile:
		mark = "f"
	}
	day := d.Date[len(d.Date)-2:]
	if d.IsToday {
		return ">" + day + mark
	}
	return " " + day + mark
}

// --- summary ---

func newSummaryCmd() *cobra.Command {
	var flags baselineFlags
	var today string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the dashboard summary for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := flags.baseline()
			if err != nil {
				return err
			}
			t, err := dateFlag(today)
			if err != nil {
				return fmt.Errorf("--today: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), cycle.Summarize(t, b))
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&today, "today", "", "reference date (YYYY-MM-DD, default today)")
	return cmd
}

// --- prompt ---

func newPromptCmd() *cobra.Command {
	var profilePath, symptomsPath, cyclesPath string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the insight prompt built from a profile",
		Long: `Print the insight prompt built from a profile.

The profile file holds the questionnaire as JSON, the same body PUT /profile
accepts. Symptom and cycle entry files are optional JSON arrays.

Examples:
  cyclectl prompt --profile profile.json
  cyclectl prompt --profile profile.json --symptoms symptoms.json --cycles cycles.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in domain.ProfileInput
			if err := readJSON(profilePath, &in); err != nil {
				return fmt.Errorf("--profile: %w", err)
			}
			var symptoms []domain.SymptomEntry
			if symptomsPath != "" {
				if err := readJSON(symptomsPath, &symptoms); err != nil {
					return fmt.Errorf("--symptoms: %w", err)
				}
			}
			var cycles []domain.CycleEntry
			if cyclesPath != "" {
				if err := readJSON(cyclesPath, &cycles); err != nil {
					return fmt.Errorf("--cycles: %w", err)
				}
			}

			prompt := insight.BuildPrompt(in.ToProfile(uuid.Nil), symptoms, cycles)
			_, err := io.WriteString(cmd.OutOrStdout(), prompt)
			return err
		},
	}
	cmd.Flags().StringVar(&profilePath, "profile", "", "questionnaire profile JSON file")
	cmd.Flags().StringVar(&symptomsPath, "symptoms", "", "symptom entries JSON file")
	cmd.Flags().StringVar(&cyclesPath, "cycles", "", "cycle entries JSON file")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
