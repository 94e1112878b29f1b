package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hannesw/tgeld/internal/db"
	"github.com/hannesw/tgeld/internal/models"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage chargeable tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a chargeable task",
	Long: `Add a chargeable task.

Examples:
  tgeld task add "Dishes" --price 5.00            # billed per hour
  tgeld task add "Take out trash" --price 2 --count  # billed per completion`,
	Args: cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			fmt.Println("Error: task name must not be empty")
			return
		}

		price, _ := cmd.Flags().GetFloat64("price")
		if price < 0 {
			fmt.Println("Error: price must not be negative")
			return
		}

		billingType := models.PerHour
		if perCount, _ := cmd.Flags().GetBool("count"); perCount {
			billingType = models.PerCount
		}

		task := &models.Task{
			Name:        name,
			Price:       price,
			BillingType: billingType,
			IsActive:    true,
		}
		id, err := store.SaveTask(task)
		if err != nil {
			fmt.Printf("Error creating task: %v\n", err)
			return
		}

		fmt.Printf("Created task #%d: %s (%.2f %s, %s)\n", id, task.Name, task.Price, currency(), task.BillingType)
	}),
}

var taskListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List active tasks",
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		tasks, err := store.ListActiveTasks()
		if err != nil {
			fmt.Printf("Error fetching tasks: %v\n", err)
			return
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks found. Use 'tgeld task add \"name\" --price ...' to create one.")
			return
		}

		tw := table.NewWriter()
		tw.AppendHeader(table.Row{"ID", "Name", "Price", "Billing", "Created"})
		for _, t := range tasks {
			tw.AppendRow(table.Row{
				t.ID,
				t.Name,
				fmt.Sprintf("%.2f %s", t.Price, currency()),
				t.BillingType.String(),
				t.CreatedAt.Format("02 Jan 2006"),
			})
		}
		fmt.Println(tw.Render())
	}),
}

var taskEditCmd = &cobra.Command{
	Use:   "edit <task-id>",
	Short: "Edit an existing task",
	Long: `Edit a task's name, price or billing type.

Examples:
  tgeld task edit 3 --price 6.50
  tgeld task edit 3 --name "Dishes (deep clean)" --billing count`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		task, err := store.GetTask(uint(taskID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if task == nil {
			fmt.Printf("Task #%d not found.\n", taskID)
			return
		}

		if name, _ := cmd.Flags().GetString("name"); name != "" {
			task.Name = name
		}
		if cmd.Flags().Changed("price") {
			price, _ := cmd.Flags().GetFloat64("price")
			if price < 0 {
				fmt.Println("Error: price must not be negative")
				return
			}
			task.Price = price
		}
		if billing, _ := cmd.Flags().GetString("billing"); billing != "" {
			bt, err := models.ParseBillingType(billing)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			task.BillingType = bt
		}

		if _, err := store.SaveTask(task); err != nil {
			if errors.Is(err, db.ErrStaleUpdate) {
				fmt.Printf("Warning: task #%d vanished while editing, nothing changed.\n", task.ID)
				return
			}
			fmt.Printf("Error updating task: %v\n", err)
			return
		}

		fmt.Printf("Updated task #%d: %s (%.2f %s, %s)\n", task.ID, task.Name, task.Price, currency(), task.BillingType)
	}),
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <task-id>",
	Short: "Retire a task",
	Long: `Retire a task so it no longer shows up when logging new entries.
Entries already logged against it keep their task name and prices.`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store) {
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		rows, err := store.SoftDeleteTask(uint(taskID))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if rows == 0 {
			fmt.Printf("Task #%d not found, nothing to do.\n", taskID)
			return
		}
		fmt.Printf("Retired task #%d. Existing entries are kept.\n", taskID)
	}),
}

func init() {
	taskAddCmd.Flags().Float64P("price", "p", 0, "Price per hour (or per completion with --count)")
	taskAddCmd.Flags().BoolP("count", "c", false, "Bill per completion instead of per hour")

	taskEditCmd.Flags().String("name", "", "New task name")
	taskEditCmd.Flags().Float64("price", 0, "New price")
	taskEditCmd.Flags().String("billing", "", "New billing type: hour or count")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskEditCmd)
	taskCmd.AddCommand(taskRmCmd)
}
