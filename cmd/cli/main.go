package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/AiroGriefwind/ScheduleMaker/internal/config"
	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/services"
	"github.com/AiroGriefwind/ScheduleMaker/pkg/store"
	"github.com/AiroGriefwind/ScheduleMaker/pkg/utils"
	"github.com/AiroGriefwind/ScheduleMaker/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg    *config.Config
	store  *store.Store
	saves  *store.SaveManager
	logger *zap.Logger
	ctx    context.Context
}

var (
	env        string
	configPath string
	app        *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "schedulemaker",
		Short: "ScheduleMaker CLI - Turn an availability grid into a staffing table",
		Long:  `A CLI tool for managing a roster, collecting shift availability, and generating fair work schedules.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.logger != nil {
				app.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "app", "Environment name used to prefix log files")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file (defaults to searching cwd and home)")

	rootCmd.AddCommand(addRoleCmd())
	rootCmd.AddCommand(listRolesCmd())
	rootCmd.AddCommand(addEmployeeCmd())
	rootCmd.AddCommand(editEmployeeCmd())
	rootCmd.AddCommand(deleteEmployeeCmd())
	rootCmd.AddCommand(listEmployeesCmd())
	rootCmd.AddCommand(initAvailabilityCmd())
	rootCmd.AddCommand(clearAvailabilityCmd())
	rootCmd.AddCommand(syncCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(importFormCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(saveSnapshotCmd())
	rootCmd.AddCommand(listSnapshotsCmd())
	rootCmd.AddCommand(restoreSnapshotCmd())
	rootCmd.AddCommand(deleteSnapshotCmd())
	rootCmd.AddCommand(backupSnapshotCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, stores and the snapshot manager
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if configPath != "" {
		app.cfg, err = config.LoadFromPath(configPath)
	} else {
		app.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded",
		zap.String("data_dir", app.cfg.DataDir),
		zap.Int("window_days", app.cfg.WindowDays))

	app.store, err = store.New(app.cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}

	app.saves, err = store.NewSaveManager(app.cfg.SavesDir)
	if err != nil {
		return fmt.Errorf("failed to open saves directory: %w", err)
	}

	return nil
}

// window expands the configured calendar window from a start date
func window(start time.Time) ([]string, error) {
	return services.WindowDates(start, app.cfg.WindowDays, app.cfg.WindowRRule)
}

// Command definitions

func addRoleCmd() *cobra.Command {
	var (
		ruleType     string
		defaultShift string
		weekday      []string
		weekend      []string
		weekdayReq   []string
		weekendReq   []string
	)

	cmd := &cobra.Command{
		Use:   "addRole <role_name>",
		Short: "Add a new role rule to the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule := model.RoleRule{
				RuleType:     model.RuleType(ruleType),
				DefaultShift: defaultShift,
			}

			if rule.RuleType == model.RuleShiftBased {
				shifts, err := parseShiftFlags(weekday, weekend)
				if err != nil {
					return err
				}
				rule.Shifts = shifts

				requirements, err := parseRequirementFlags(weekdayReq, weekendReq)
				if err != nil {
					return err
				}
				rule.Requirements = requirements
			}

			if err := services.AddRole(app.ctx, app.store, app.logger, args[0], rule); err != nil {
				return err
			}

			fmt.Printf("\n✓ Role %q added (%s)\n\n", args[0], ruleType)
			return nil
		},
	}

	cmd.Flags().StringVar(&ruleType, "type", string(model.RuleShiftBased), "Rule type: shift_based or fixed_time")
	cmd.Flags().StringVar(&defaultShift, "default-shift", "", "Default shift-code for fixed_time roles (e.g. 13-22)")
	cmd.Flags().StringArrayVar(&weekday, "weekday", nil, "Weekday shift as label=code (repeatable, e.g. early=7-16)")
	cmd.Flags().StringArrayVar(&weekend, "weekend", nil, "Weekend shift as label=code (repeatable)")
	cmd.Flags().StringArrayVar(&weekdayReq, "weekday-req", nil, "Weekday headcount as label=count (repeatable)")
	cmd.Flags().StringArrayVar(&weekendReq, "weekend-req", nil, "Weekend headcount as label=count (repeatable)")
	return cmd
}

func listRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listRoles",
		Short: "List all roles in the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := app.store.LoadRules()
			if err != nil {
				return err
			}

			names := make([]string, 0, len(rules))
			for name := range rules {
				names = append(names, name)
			}
			utils.SortNames(names)

			fmt.Printf("\nRoles (%d):\n", len(names))
			for _, name := range names {
				rule := rules[name]
				if rule.RuleType == model.RuleFixedTime {
					fmt.Printf("  %-22s fixed_time  default %s\n", name, rule.DefaultShift)
				} else {
					fmt.Printf("  %-22s shift_based %d weekday / %d weekend shifts\n",
						name, len(rule.Shifts[model.Weekday]), len(rule.Shifts[model.Weekend]))
				}
			}
			fmt.Println()
			return nil
		},
	}
}

func addEmployeeCmd() *cobra.Command {
	var (
		additionalRoles []string
		startTime       string
		endTime         string
	)

	cmd := &cobra.Command{
		Use:   "addEmployee <name> <role>",
		Short: "Add an employee to the roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			employee, err := services.AddEmployee(app.ctx, app.store, app.logger, services.AddEmployeeParams{
				Name:            args[0],
				Role:            args[1],
				AdditionalRoles: additionalRoles,
				StartTime:       startTime,
				EndTime:         endTime,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Employee added!\n\n")
			fmt.Printf("Name: %s\n", employee.Name)
			fmt.Printf("Role: %s\n", employee.Role)
			if w := employee.Window(); w != "" {
				fmt.Printf("Window: %s\n", w)
			}
			fmt.Println()
			return nil
		},
	}

	addEmployeeFlags(cmd.Flags(), &additionalRoles, &startTime, &endTime)
	return cmd
}

func editEmployeeCmd() *cobra.Command {
	var (
		additionalRoles []string
		startTime       string
		endTime         string
	)

	cmd := &cobra.Command{
		Use:   "editEmployee <old_name> <new_name> <new_role>",
		Short: "Rename or re-role an employee",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := services.EditEmployee(app.ctx, app.store, app.logger, services.EditEmployeeParams{
				OldName:         args[0],
				NewName:         args[1],
				NewRole:         args[2],
				AdditionalRoles: additionalRoles,
				StartTime:       startTime,
				EndTime:         endTime,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Employee %q updated\n\n", args[1])
			return nil
		},
	}

	addEmployeeFlags(cmd.Flags(), &additionalRoles, &startTime, &endTime)
	return cmd
}

func deleteEmployeeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deleteEmployee <name>",
		Short: "Remove an employee from the roster and the calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.DeleteEmployee(app.ctx, app.store, app.logger, args[0]); err != nil {
				return err
			}
			fmt.Printf("\n✓ Employee %q deleted\n\n", args[0])
			return nil
		},
	}
}

func listEmployeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listEmployees",
		Short: "List the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := app.store.LoadEmployees()
			if err != nil {
				return err
			}

			fmt.Printf("\nEmployees (%d):\n", len(employees))
			for _, e := range employees {
				line := fmt.Sprintf("  %-20s %s", e.Name, e.Role)
				if len(e.AdditionalRoles) > 0 {
					line += " (+" + strings.Join(e.AdditionalRoles, ", ") + ")"
				}
				if w := e.Window(); w != "" {
					line += "  " + w
				}
				fmt.Println(line)
			}
			fmt.Println()
			return nil
		},
	}
}

func initAvailabilityCmd() *cobra.Command {
	var startDate string

	cmd := &cobra.Command{
		Use:   "initAvailability",
		Short: "Initialize a fresh availability window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseStartDate(startDate)
			if err != nil {
				return err
			}
			dates, err := window(start)
			if err != nil {
				return err
			}
			if err := services.InitAvailability(app.ctx, app.store, app.logger, dates); err != nil {
				return err
			}
			fmt.Printf("\n✓ Availability initialized: %s to %s (%d days)\n\n",
				dates[0], dates[len(dates)-1], len(dates))
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Window start date (YYYY-MM-DD, defaults to today)")
	return cmd
}

func clearAvailabilityCmd() *cobra.Command {
	var startDate string

	cmd := &cobra.Command{
		Use:   "clearAvailability",
		Short: "Reset custom windows and reinitialize the calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseStartDate(startDate)
			if err != nil {
				return err
			}
			dates, err := window(start)
			if err != nil {
				return err
			}
			if err := services.ClearAvailability(app.ctx, app.store, app.logger, dates); err != nil {
				return err
			}
			fmt.Printf("\n✓ Availability cleared: fresh window %s to %s\n\n",
				dates[0], dates[len(dates)-1])
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Window start date (YYYY-MM-DD, defaults to today)")
	return cmd
}

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the availability calendar against the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := services.SyncAvailability(app.ctx, app.store, app.logger)
			if err != nil {
				return err
			}
			fmt.Printf("\n✓ Sync complete: %d dates, %d entries added, %d removed\n\n",
				report.Dates, report.EntriesAdded, report.EntriesRemoved)
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Report consistency violations without repairing them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			violations, err := services.ValidateSync(app.ctx, app.store, app.logger)
			if err != nil {
				return err
			}

			if len(violations) == 0 {
				fmt.Printf("\n✓ No violations found\n\n")
				return nil
			}

			fmt.Printf("\nViolations (%d):\n", len(violations))
			for _, v := range violations {
				fmt.Printf("  - %s\n", v)
			}
			fmt.Println()
			return nil
		},
	}
}

func generateCmd() *cobra.Command {
	var exportPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the schedule for every date in the calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.GenerateSchedule(app.ctx, app.store, app.logger, services.GenerateOptions{
				Export:     exportPath != "",
				ExportPath: exportPath,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Schedule generated: %d days\n\n", len(result.Entries))
			if len(result.Warnings) > 0 {
				fmt.Printf("Warnings (%d):\n", len(result.Warnings))
				for _, w := range result.Warnings {
					fmt.Printf("  - %s\n", w)
				}
				fmt.Println()
			}
			if exportPath != "" {
				fmt.Printf("Exported to %s\n\n", exportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&exportPath, "export", "", "Write the wide schedule table to this path")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import availability from a flat Date/Employee/Shift table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			if err := services.ImportAvailability(app.ctx, app.store, app.logger, f); err != nil {
				return err
			}
			fmt.Printf("\n✓ Availability imported from %s\n\n", args[0])
			return nil
		},
	}
}

func importFormCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "importForm <file>",
		Short: "Import availability from a form response table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			if err := services.ImportFormResponses(app.ctx, app.store, app.logger, f); err != nil {
				return err
			}
			fmt.Printf("\n✓ Form responses imported from %s\n\n", args[0])
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export availability as a flat Date/Employee/Shift table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", args[0], err)
			}
			defer f.Close()

			if err := services.ExportAvailability(app.ctx, app.store, app.logger, f); err != nil {
				return err
			}
			fmt.Printf("\n✓ Availability exported to %s\n\n", args[0])
			return nil
		},
	}
}

func saveSnapshotCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "saveSnapshot",
		Short: "Save the current availability calendar as a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := services.SaveSnapshot(app.ctx, app.store, app.saves, app.logger, description, nil)
			if err != nil {
				return err
			}
			fmt.Printf("\n✓ Snapshot saved: %s\n\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Snapshot description")
	return cmd
}

func listSnapshotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listSnapshots",
		Short: "List snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			saves, err := app.saves.List()
			if err != nil {
				return err
			}

			fmt.Printf("\nSnapshots (%d):\n", len(saves))
			for _, meta := range saves {
				fmt.Printf("  %s  %s", meta.ID, meta.CreatedAt)
				if meta.Description != "" {
					fmt.Printf("  %s", meta.Description)
				}
				if meta.StartDate != "" {
					fmt.Printf("  [%s to %s]", meta.StartDate, meta.EndDate)
				}
				fmt.Println()
			}
			fmt.Println()
			return nil
		},
	}
}

func restoreSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restoreSnapshot <save_id>",
		Short: "Restore the availability calendar from a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.RestoreSnapshot(app.ctx, app.store, app.saves, app.logger, args[0]); err != nil {
				return err
			}
			fmt.Printf("\n✓ Snapshot %s restored\n\n", args[0])
			return nil
		},
	}
}

func deleteSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deleteSnapshot <save_id>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.saves.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("\n✓ Snapshot %s deleted\n\n", args[0])
			return nil
		},
	}
}

func backupSnapshotCmd() *cobra.Command {
	var backupDir string

	cmd := &cobra.Command{
		Use:   "backupSnapshot <save_id>",
		Short: "Copy a snapshot into the backup directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.saves.Backup(args[0], backupDir); err != nil {
				return err
			}
			fmt.Printf("\n✓ Snapshot %s backed up to %s\n\n", args[0], backupDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&backupDir, "dir", "backups", "Backup directory")
	return cmd
}

// Flag and argument helpers

func addEmployeeFlags(flags *pflag.FlagSet, additionalRoles *[]string, startTime, endTime *string) {
	flags.StringSliceVar(additionalRoles, "additional", nil, "Additional roles (comma-separated)")
	flags.StringVar(startTime, "start", "", "Custom window start (HH:MM, fixed_time roles only)")
	flags.StringVar(endTime, "end", "", "Custom window end (HH:MM, fixed_time roles only)")
}

func parseStartDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	start, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("start date must be YYYY-MM-DD: %w", err)
	}
	return start, nil
}

func parseShiftFlags(weekday, weekend []string) (map[model.DayType]map[string]string, error) {
	shifts := map[model.DayType]map[string]string{
		model.Weekday: {},
		model.Weekend: {},
	}
	for dayType, pairs := range map[model.DayType][]string{model.Weekday: weekday, model.Weekend: weekend} {
		for _, pair := range pairs {
			label, code, ok := strings.Cut(pair, "=")
			if !ok {
				return nil, fmt.Errorf("shift must be label=code, got %q", pair)
			}
			shifts[dayType][label] = code
		}
	}
	return shifts, nil
}

func parseRequirementFlags(weekday, weekend []string) (map[model.DayType]map[string]int, error) {
	requirements := map[model.DayType]map[string]int{
		model.Weekday: {},
		model.Weekend: {},
	}
	for dayType, pairs := range map[model.DayType][]string{model.Weekday: weekday, model.Weekend: weekend} {
		for _, pair := range pairs {
			label, countStr, ok := strings.Cut(pair, "=")
			if !ok {
				return nil, fmt.Errorf("requirement must be label=count, got %q", pair)
			}
			var count int
			if _, err := fmt.Sscanf(countStr, "%d", &count); err != nil || count < 0 {
				return nil, fmt.Errorf("requirement count must be a non-negative number, got %q", countStr)
			}
			requirements[dayType][label] = count
		}
	}
	return requirements, nil
}
