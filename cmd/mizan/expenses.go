package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/report"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Manage expense records",
		Long:  `Add, list, and delete expense records.`,
	}

	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(deleteExpenseCmd())

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		amountFlag      string
		categoryFlag    string
		dateFlag        string
		descriptionFlag string
		recurringFlag   bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			amount, err := parseAmount(amountFlag)
			if err != nil {
				fmt.Println(app.userMessage(err))
				return err
			}

			category := model.NormalizeCategory(categoryFlag)
			known, err := app.categories.Contains(ctx, category)
			if err != nil {
				return err
			}
			if !known {
				err := common.NewUserError(fmt.Sprintf("unknown category %q", category), nil)
				fmt.Println(app.userMessage(err))
				return err
			}

			if dateFlag == "" {
				dateFlag = time.Now().Format(model.DateLayout)
			}

			expense, err := app.expenses.Add(ctx, model.Expense{
				Amount:      amount,
				Category:    category,
				Date:        dateFlag,
				Description: descriptionFlag,
				Recurring:   recurringFlag,
			})
			if err != nil {
				fmt.Println(app.userMessage(err))
				return err
			}

			fmt.Println(app.styles.Success.Render(fmt.Sprintf("%s (%s)",
				app.t("expenses.added"), expense.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&amountFlag, "amount", "", "expense amount")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "expense category")
	cmd.Flags().StringVar(&dateFlag, "date", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&descriptionFlag, "description", "", "what the money went to")
	cmd.Flags().BoolVar(&recurringFlag, "recurring", false, "mark as a recurring expense")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var (
		monthFlag    string
		categoryFlag string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		Long:  `Display expenses, optionally filtered by month and category, with totals.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			expenses, err := app.expenses.Load(ctx)
			if err != nil {
				return err
			}

			if monthFlag != "" {
				expenses = report.FilterByMonth(expenses, monthFlag)
			}
			if categoryFlag != "" {
				category := model.NormalizeCategory(categoryFlag)
				filtered := make([]model.Expense, 0, len(expenses))
				for _, e := range expenses {
					if e.Category == category {
						filtered = append(filtered, e)
					}
				}
				expenses = filtered
			}

			if len(expenses) == 0 {
				fmt.Println(app.styles.Info.Render(app.t("expenses.noExpenses")))
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{
				app.t("common.id"),
				app.t("expenses.date"),
				app.t("expenses.category"),
				app.t("expenses.description"),
				app.t("expenses.amount"),
				app.t("expenses.recurring"),
			})

			for _, e := range expenses {
				recurring := ""
				if e.Recurring {
					recurring = "✓"
				}
				table.Append([]string{
					e.ID,
					e.Date,
					app.categoryLabel(e.Category),
					e.Description,
					app.prefs.FormatCurrency(e.Amount),
					recurring,
				})
			}
			table.Render()

			total := report.Sum(expenses)
			fmt.Printf("%s %s\n",
				app.styles.Bold.Render(app.t("expenses.total")+":"),
				app.prefs.FormatCurrency(total))

			recurring := make([]model.Expense, 0, len(expenses))
			for _, e := range expenses {
				if e.Recurring {
					recurring = append(recurring, e)
				}
			}
			if len(recurring) > 0 {
				fmt.Printf("%s %s (%d)\n",
					app.styles.Subtle.Render(app.t("expenses.recurringSubscriptions")+":"),
					app.prefs.FormatCurrency(report.Sum(recurring)),
					len(recurring))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "filter by month (YYYY-MM)")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "filter by category")

	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.expenses.Remove(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(app.styles.Success.Render(app.t("expenses.deleted")))
			return nil
		},
	}
}
