package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"task-tracker/internal/domain"
)

// newListCommand creates the list command with filter and grouping options.
func newListCommand(root *RootCommand) *cobra.Command {
	var (
		category string
		priority string
		status   string
		groupBy  string
		byRank   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally filtered or grouped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := root.Service()
			handler := NewErrorHandler()

			if groupBy != "" {
				return printGrouped(root, groupBy)
			}

			var tasks []*domain.Task
			switch {
			case category != "":
				tasks = service.GetByCategory(category)
			case priority != "":
				p, err := domain.ParsePriority(priority)
				if err != nil {
					return handler.Handle("list tasks", err)
				}
				tasks = service.GetByPriority(p)
			case status != "":
				s, err := domain.ParseStatus(status)
				if err != nil {
					return handler.Handle("list tasks", err)
				}
				tasks = service.GetByStatus(s)
			default:
				tasks = service.GetAll()
			}

			if byRank {
				sort.SliceStable(tasks, func(i, j int) bool {
					return tasks[i].Priority().Rank() > tasks[j].Priority().Rank()
				})
			}

			printTasks(tasks)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category (case-insensitive)")
	cmd.Flags().StringVar(&priority, "priority", "", "filter by priority")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&groupBy, "group-by", "", "group output by category, priority or status")
	cmd.Flags().BoolVar(&byRank, "by-priority", false, "sort most urgent first")

	return cmd
}

// printGrouped renders the grouped views. Enum groups print in their
// natural order; category keys are sorted for stable output.
func printGrouped(root *RootCommand, groupBy string) error {
	service := root.Service()

	switch groupBy {
	case "category":
		groups := service.GroupedByCategory()
		keys := make([]string, 0, len(groups))
		for key := range groups {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("=== %s (%d) ===\n", key, len(groups[key]))
			printTasks(groups[key])
			fmt.Println()
		}
	case "priority":
		groups := service.GroupedByPriority()
		for _, key := range domain.Priorities() {
			if tasks, ok := groups[key]; ok {
				fmt.Printf("=== %s (%d) ===\n", key, len(tasks))
				printTasks(tasks)
				fmt.Println()
			}
		}
	case "status":
		groups := service.GroupedByStatus()
		for _, key := range domain.Statuses() {
			if tasks, ok := groups[key]; ok {
				fmt.Printf("=== %s (%d) ===\n", key, len(tasks))
				printTasks(tasks)
				fmt.Println()
			}
		}
	default:
		return fmt.Errorf("unknown group-by value %q (use category, priority or status)", groupBy)
	}

	return nil
}
