package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/report"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
		Long:  `Add, list, update, and delete savings goals and track their progress.`,
	}

	cmd.AddCommand(addGoalCmd())
	cmd.AddCommand(listGoalsCmd())
	cmd.AddCommand(updateGoalSavedCmd())
	cmd.AddCommand(deleteGoalCmd())

	return cmd
}

func addGoalCmd() *cobra.Command {
	var (
		nameFlag   string
		targetFlag string
		dueFlag    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new savings goal",
		Long:  `Create a goal with a positive target amount. Saving starts at zero.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			target, err := parseAmount(targetFlag)
			if err != nil {
				fmt.Println(app.userMessage(err))
				return err
			}

			goal, err := app.goals.Add(ctx, model.Goal{
				Name:         nameFlag,
				TargetAmount: target,
				SavedAmount:  decimal.Zero,
				DueDate:      dueFlag,
			})
			if err != nil {
				fmt.Println(app.userMessage(err))
				return err
			}

			fmt.Println(app.styles.Success.Render(fmt.Sprintf("%s (%s)",
				app.t("goals.added"), goal.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&nameFlag, "name", "", "goal name")
	cmd.Flags().StringVar(&targetFlag, "target", "", "target amount (must be positive)")
	cmd.Flags().StringVar(&dueFlag, "due", "", "due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			goals, err := app.goals.Load(ctx)
			if err != nil {
				return err
			}

			if len(goals) == 0 {
				fmt.Println(app.styles.Info.Render(app.t("goals.noGoals")))
				return nil
			}

			now := time.Now()
			for _, goal := range goals {
				progress, err := report.GoalProgress(goal)
				if err != nil {
					// A non-positive target can only come from data edited
					// outside the application; show the goal but flag it.
					fmt.Printf("%s %s\n",
						app.styles.Bold.Render(goal.Name),
						app.styles.Error.Render(err.Error()))
					continue
				}

				complete, _ := report.GoalComplete(goal)

				header := fmt.Sprintf("%s  %s / %s (%s)",
					app.styles.Bold.Render(goal.Name),
					app.prefs.FormatCurrency(goal.SavedAmount),
					app.prefs.FormatCurrency(goal.TargetAmount),
					goal.ID)
				fmt.Println(header)

				bar := app.styles.RenderProgress(progress, 30)
				pct := progress.Round(0).String()
				if complete {
					fmt.Printf("  %s %s%% %s\n", bar, pct,
						app.styles.Success.Render("✓ "+app.t("goals.completed")))
				} else {
					fmt.Printf("  %s %s%% %s\n", bar, pct, app.t("goals.completed"))
				}

				days, err := report.DaysRemaining(goal.DueDate, now)
				switch {
				case err != nil:
					fmt.Printf("  %s\n", app.styles.Subtle.Render(goal.DueDate))
				case days <= 0:
					fmt.Printf("  %s\n", app.styles.Warning.Render(
						fmt.Sprintf("%s (%s)", app.t("goals.overdue"), goal.DueDate)))
				default:
					fmt.Printf("  %s\n", app.styles.Subtle.Render(
						fmt.Sprintf("%d %s (%s)", days, app.t("goals.daysLeft"), goal.DueDate)))
				}
			}

			return nil
		},
	}
}

func updateGoalSavedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "saved <id> <amount>",
		Short: "Update how much has been saved toward a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			saved, err := parseAmount(args[1])
			if err != nil {
				fmt.Println(app.userMessage(err))
				return err
			}

			if err := app.goals.UpdateSaved(ctx, args[0], saved); err != nil {
				fmt.Println(app.userMessage(err))
				return err
			}

			fmt.Println(app.styles.Success.Render(app.t("goals.updated")))
			return nil
		},
	}
}

func deleteGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.goals.Remove(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(app.styles.Success.Render(app.t("goals.deleted")))
			return nil
		},
	}
}
