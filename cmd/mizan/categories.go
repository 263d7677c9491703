package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizanapp/mizan/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
		Long:  `List, add, and delete the categories expenses are recorded under.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			categories, err := app.categories.Load(ctx)
			if err != nil {
				return err
			}

			fmt.Println(app.styles.Title.Render(app.t("settings.categories")))
			for _, category := range categories {
				tag := app.t("settings.customTag")
				if model.IsDefaultCategory(category) {
					tag = app.t("settings.defaultTag")
				}
				fmt.Printf("  %s %s\n",
					app.categoryLabel(category),
					app.styles.Subtle.Render("("+tag+")"))
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Long:  `Add a custom category. Names are stored lower-cased and must be unique regardless of case.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.categories.Add(ctx, args[0]); err != nil {
				fmt.Println(app.userMessage(err))
				return err
			}

			fmt.Println(app.styles.Success.Render(app.t("settings.categoryAdded")))
			return nil
		},
	}
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a custom category",
		Long:  `Delete a custom category. The eight default categories cannot be deleted.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.categories.Remove(ctx, args[0]); err != nil {
				fmt.Println(app.userMessage(err))
				return err
			}

			fmt.Println(app.styles.Success.Render(app.t("settings.categoryDeleted")))
			return nil
		},
	}
}
