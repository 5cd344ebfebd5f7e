package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"task-tracker/internal/domain"
	"task-tracker/internal/validation"
)

// newDemoCommand creates the demo command, a scripted tour of the
// service operations against the configured store.
func newDemoCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:    "demo",
		Short:  "Run a scripted demonstration of all operations",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(root)
		},
	}
}

func runDemo(root *RootCommand) error {
	service := root.Service()
	handler := NewErrorHandler()

	due := func(days int) string {
		return time.Now().AddDate(0, 0, days).Format(validation.DateLayout)
	}
	str := func(s string) *string { return &s }

	fmt.Println("=== Task Tracker Demonstration ===")
	fmt.Println()

	fmt.Println("1. Creating tasks:")
	t1, err := service.CreateWithDetails("Complete project report",
		str("Finish the quarterly report"), due(30),
		"Development", domain.PriorityHigh, domain.StatusInProgress)
	if err != nil {
		return handler.Handle("create task", err)
	}
	t2, err := service.CreateWithDetails("Buy groceries",
		str("Milk, bread, vegetables"), due(2),
		"Personal", domain.PriorityLow, domain.StatusPending)
	if err != nil {
		return handler.Handle("create task", err)
	}
	_, err = service.CreateWithDetails("Fix production bug",
		nil, due(1),
		"Development", domain.PriorityUrgent, domain.StatusPending)
	if err != nil {
		return handler.Handle("create task", err)
	}
	_, err = service.Create("Plan team offsite", nil, due(14))
	if err != nil {
		return handler.Handle("create task", err)
	}
	printTasks(service.GetAll())
	fmt.Println()

	fmt.Println("2. Filtering by category (case-insensitive, \"development\"):")
	printTasks(service.GetByCategory("development"))
	fmt.Println()

	fmt.Println("3. Filtering by priority URGENT:")
	printTasks(service.GetByPriority(domain.PriorityUrgent))
	fmt.Println()

	fmt.Println("4. Grouping by status:")
	if err := printGrouped(root, "status"); err != nil {
		return err
	}

	fmt.Println("5. Updating tasks:")
	if _, err := service.UpdateStatus(t1.ID(), domain.StatusCompleted); err != nil {
		return handler.Handle("update status", err)
	}
	if _, err := service.UpdatePriority(t2.ID(), domain.PriorityMedium); err != nil {
		return handler.Handle("update priority", err)
	}
	printTasks(service.GetAll())
	fmt.Println()

	fmt.Println("6. Rejected update (past due date):")
	if _, err := service.Update(t2.ID(), t2.Title(), t2.Description(), "2020-01-01"); err != nil {
		fmt.Printf("  %v\n", handler.Handle("update task", err))
	}
	fmt.Println()

	fmt.Println("7. Backup and repository info:")
	if service.CreateBackup(".bak") {
		fmt.Println("  Backup created")
	} else {
		fmt.Println("  Backup failed")
	}
	fmt.Println(service.RepositoryInfo())

	return nil
}
