package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/classdesk/internal/api"
	"github.com/gravitrone/classdesk/internal/config"
	"github.com/gravitrone/classdesk/internal/ui"
)

// ClassroomsCmd returns the `classdesk classrooms` command group.
func ClassroomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "classrooms",
		Aliases: []string{"classroom", "cr"},
		Short:   "Manage classrooms without the TUI",
	}
	cmd.AddCommand(classroomsListCmd())
	cmd.AddCommand(classroomsShowCmd())
	cmd.AddCommand(classroomsCreateCmd())
	cmd.AddCommand(classroomsDeleteCmd())
	return cmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("not logged in: %w", err)
	}
	return cfg, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid classroom id %q", arg)
	}
	return id, nil
}

func classroomsListCmd() *cobra.Command {
	var skip, limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List classrooms",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			items, err := cfg.NewClient().ListClassrooms(skip, limit)
			if err != nil {
				return fmt.Errorf("list classrooms: %w", err)
			}

			slog.Debug("classrooms listed", "skip", skip, "limit", limit, "count", len(items))
			out := c.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "no classrooms found")
				return nil
			}
			for _, item := range items {
				fmt.Fprintf(out, "  %4d  %-32s  %s → %s\n", item.ID, item.Name, item.BeginDate, item.EndDate)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&skip, "skip", 0, "number of classrooms to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum classrooms to return (server default when 0)")
	return cmd
}

func classroomsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a classroom the way the TUI shows it",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			classroom, err := cfg.NewClient().GetClassroom(id)
			if err != nil {
				return fmt.Errorf("get classroom %d: %w", id, err)
			}
			panel := ui.NewClassroomPanel(*classroom, nil, ui.PanelOptionsFromConfig(cfg))
			fmt.Fprintln(c.OutOrStdout(), panel.View())
			return nil
		},
	}
}

func classroomsCreateCmd() *cobra.Command {
	var input api.ClassroomCreate
	var link string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a classroom",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if c.Flags().Changed("link") {
				input.GithubClassroomLink = &link
			}
			created, err := cfg.NewClient().CreateClassroom(input)
			if err != nil {
				return fmt.Errorf("create classroom: %w", err)
			}
			slog.Info("classroom created", "classroom_id", created.ID)
			fmt.Fprintf(c.OutOrStdout(), "created classroom %d (%s)\n", created.ID, created.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&input.Name, "name", "", "classroom name")
	cmd.Flags().StringVar(&input.BeginDate, "begin", "", "begin date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&input.EndDate, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&link, "link", "", "GitHub Classroom link")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("begin")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func classroomsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a classroom",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.NewClient().DeleteClassroom(id); err != nil {
				return fmt.Errorf("delete classroom %d: %w", id, err)
			}
			slog.Info("classroom deleted", "classroom_id", id)
			fmt.Fprintf(c.OutOrStdout(), "deleted classroom %d\n", id)
			return nil
		},
	}
}
