package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/report"
)

func dashboardCmd() *cobra.Command {
	var (
		monthFlag  string
		monthsFlag int
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Monthly summary, category breakdown and cash-flow trend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			month := monthFlag
			if month == "" {
				month = report.CurrentMonth(time.Now())
			}

			expenses, err := app.expenses.Load(ctx)
			if err != nil {
				return err
			}
			income, err := app.income.Load(ctx)
			if err != nil {
				return err
			}
			goals, err := app.goals.Load(ctx)
			if err != nil {
				return err
			}

			monthExpenses := report.FilterByMonth(expenses, month)
			monthIncome := report.FilterByMonth(income, month)

			expenseTotal := report.Sum(monthExpenses)
			incomeTotal := report.Sum(monthIncome)
			net := report.NetSavings(incomeTotal, expenseTotal)

			fmt.Println(app.styles.Title.Render(
				fmt.Sprintf("%s — %s", app.t("dashboard.title"), month)))
			fmt.Printf("%s %s\n",
				app.styles.Bold.Render(app.t("dashboard.totalIncome")+":"),
				app.styles.Success.Render(app.prefs.FormatCurrency(incomeTotal)))
			fmt.Printf("%s %s\n",
				app.styles.Bold.Render(app.t("dashboard.totalExpenses")+":"),
				app.styles.Error.Render(app.prefs.FormatCurrency(expenseTotal)))

			netRendered := app.prefs.FormatCurrency(net)
			if net.IsNegative() {
				netRendered = app.styles.Warning.Render(netRendered)
			} else {
				netRendered = app.styles.Success.Render(netRendered)
			}
			fmt.Printf("%s %s\n",
				app.styles.Bold.Render(app.t("dashboard.netSavings")+":"), netRendered)
			fmt.Printf("%s %s\n",
				app.styles.Bold.Render(app.t("dashboard.remainingBudget")+":"), netRendered)

			// Category breakdown, largest first.
			groups := report.GroupByCategory(monthExpenses)
			if len(groups) > 0 {
				fmt.Println()
				fmt.Println(app.styles.Subtitle.Render(app.t("dashboard.expensesByCategory")))

				type categoryTotal struct {
					name  string
					total decimal.Decimal
				}
				totals := make([]categoryTotal, 0, len(groups))
				for name, total := range groups {
					totals = append(totals, categoryTotal{name, total})
				}
				sort.Slice(totals, func(i, j int) bool {
					return totals[i].total.GreaterThan(totals[j].total)
				})

				for _, s := range totals {
					share := decimal.Zero
					if expenseTotal.IsPositive() {
						share = s.total.Div(expenseTotal).Mul(decimal.NewFromInt(100))
					}
					fmt.Printf("  %-16s %s %s\n",
						app.categoryLabel(s.name),
						app.styles.RenderProgress(share, 20),
						app.prefs.FormatCurrency(s.total))
				}
			}

			// Cash-flow trend, oldest month first.
			expenseSeries, err := report.MonthlySeries(expenses, monthsFlag, month)
			if err != nil {
				return err
			}
			incomeSeries, err := report.MonthlySeries(income, monthsFlag, month)
			if err != nil {
				return err
			}

			fmt.Println()
			fmt.Println(app.styles.Subtitle.Render(app.t("dashboard.monthlyCashFlow")))
			for i, entry := range expenseSeries {
				fmt.Printf("  %s  %s %-14s %s %s\n",
					entry.Month,
					app.styles.Success.Render("+"),
					app.prefs.FormatCurrency(incomeSeries[i].Total),
					app.styles.Error.Render("-"),
					app.prefs.FormatCurrency(entry.Total))
			}

			// Top active goals, like the dashboard cards.
			if len(goals) > 0 {
				fmt.Println()
				fmt.Println(app.styles.Subtitle.Render(app.t("dashboard.activeGoals")))
				shown := goals
				if len(shown) > 3 {
					shown = shown[:3]
				}
				for _, goal := range shown {
					progress, err := report.GoalProgress(goal)
					if err != nil {
						continue
					}
					fmt.Printf("  %-20s %s %s%%\n",
						goal.Name,
						app.styles.RenderProgress(progress, 20),
						progress.Round(0).String())
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "summary month (YYYY-MM, default current)")
	cmd.Flags().IntVar(&monthsFlag, "months", 6, "number of months in the trend")

	return cmd
}
