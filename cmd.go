package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func SetupCommands(a *App) *cobra.Command {
	// root command runs the whole start page
	rootCmd := &cobra.Command{
		Use:   "homeboard",
		Short: "A personal start page in the terminal",
		Run: func(cmd *cobra.Command, args []string) {
			a.Board("")
		},
	}

	// command for showing a quote, optionally filtered by category
	quoteCmd := &cobra.Command{
		Use:   "quote [category]",
		Short: "Show a quote",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var category string
			if len(args) > 0 {
				category = args[0]
			}

			a.ShowQuote(category)
		},
	}

	// command for listing the checklist
	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show the checklist",
		Run: func(cmd *cobra.Command, args []string) {
			a.LoadTasks()
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a task to the checklist",
		Run: func(cmd *cobra.Command, args []string) {
			a.AddTask(strings.Join(args, " "))
		},
	}

	// command for flipping a task's finished state; without an id it shows
	// an interactive picker
	toggleCmd := &cobra.Command{
		Use:   "toggle [id]",
		Short: "Toggle a task's finished state",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				a.PickAndToggleTask()
				return
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fmt.Printf("Invalid task id: %s\n", args[0])
				return
			}

			a.ToggleTaskByID(id)
		},
	}

	// command for showing the notes pad
	notesCmd := &cobra.Command{
		Use:   "notes",
		Short: "Show the notes pad",
		Run: func(cmd *cobra.Command, args []string) {
			a.NotesStatus()
		},
	}

	pullCmd := &cobra.Command{
		Use:   "pull",
		Short: "Replace local notes with the server copy",
		Run: func(cmd *cobra.Command, args []string) {
			a.LoadNotes()
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit [text]",
		Short: "Edit the notes draft",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				a.EditNotes(strings.Join(args, " "))
				return
			}

			fmt.Println("Enter notes, end with Ctrl-D:")
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				log.Printf("error reading notes input: %v", err)
				return
			}

			a.EditNotes(strings.TrimRight(string(data), "\n"))
		},
	}

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Push the notes draft to the server",
		Run: func(cmd *cobra.Command, args []string) {
			a.SaveNotes()
		},
	}

	// add commands
	tasksCmd.AddCommand(addCmd)
	tasksCmd.AddCommand(toggleCmd)
	notesCmd.AddCommand(pullCmd)
	notesCmd.AddCommand(editCmd)
	notesCmd.AddCommand(saveCmd)

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(notesCmd)

	return rootCmd
}
