package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/report"
)

func incomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Manage income records",
		Long:  `Add, list, and delete income records.`,
	}

	cmd.AddCommand(addIncomeCmd())
	cmd.AddCommand(listIncomeCmd())
	cmd.AddCommand(deleteIncomeCmd())

	return cmd
}

func addIncomeCmd() *cobra.Command {
	var (
		amountFlag string
		sourceFlag string
		typeFlag   string
		dateFlag   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new income line",
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

			incomeType, err := model.ParseIncomeType(typeFlag)
			if err != nil {
				fmt.Println(app.userMessage(err))
				return err
			}

			if dateFlag == "" {
				dateFlag = time.Now().Format(model.DateLayout)
			}

			line, err := app.income.Add(ctx, model.Income{
				Amount: amount,
				Source: sourceFlag,
				Type:   incomeType,
				Date:   dateFlag,
			})
			if err != nil {
				fmt.Println(app.userMessage(err))
				return err
			}

			fmt.Println(app.styles.Success.Render(fmt.Sprintf("%s (%s)",
				app.t("income.added"), line.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&amountFlag, "amount", "", "income amount")
	cmd.Flags().StringVar(&sourceFlag, "source", "", "where the income came from")
	cmd.Flags().StringVar(&typeFlag, "type", "fixed", "income type (fixed, variable)")
	cmd.Flags().StringVar(&dateFlag, "date", "", "date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func listIncomeCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List income",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			income, err := app.income.Load(ctx)
			if err != nil {
				return err
			}

			if monthFlag != "" {
				income = report.FilterByMonth(income, monthFlag)
			}

			if len(income) == 0 {
				fmt.Println(app.styles.Info.Render(app.t("income.noIncome")))
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{
				app.t("common.id"),
				app.t("expenses.date"),
				app.t("income.source"),
				app.t("income.type"),
				app.t("expenses.amount"),
			})

			for _, line := range income {
				table.Append([]string{
					line.ID,
					line.Date,
					line.Source,
					app.t("income." + string(line.Type)),
					app.prefs.FormatCurrency(line.Amount),
				})
			}
			table.Render()

			fmt.Printf("%s %s\n",
				app.styles.Bold.Render(app.t("income.total")+":"),
				app.prefs.FormatCurrency(report.Sum(income)))

			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "filter by month (YYYY-MM)")

	return cmd
}

func deleteIncomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an income line by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.income.Remove(ctx, args[0]); err != nil {
				return err
			}

			fmt.Println(app.styles.Success.Render(app.t("income.deleted")))
			return nil
		},
	}
}
