package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/nexidian/gocliselect"
)

const (
	defaultQuoteCategory = "general"
	quoteFallbackText    = "Could not load a quote. Please try again later."
)

// App bridges the commands to the remote board service and the local
// state store. Handlers that touch the network log failures and carry on;
// none of them propagate errors up to the command layer.
type App struct {
	client *APIClient
	store  *Store
	out    io.Writer
	adding bool
}

func NewApp(client *APIClient, store *Store) *App {
	return &App{
		client: client,
		store:  store,
		out:    os.Stdout,
	}
}

// +------------------------+
// |                        |
// |    Quote Widget        |
// |                        |
// +------------------------+

// ShowQuote prints a quote for the category, falling back to a fixed line
// when the service cannot be reached. Never returns an error.
func (a *App) ShowQuote(category string) {
	if category == "" {
		category = defaultQuoteCategory
	}

	quote, err := a.client.FetchQuote(category)
	if err != nil {
		log.Printf("error loading quote: %v", err)
		fmt.Fprintln(a.out, quoteFallbackText)
		return
	}

	fmt.Fprintf(a.out, "\"%s\"\n", quote.Text)
	if quote.Author != "" {
		fmt.Fprintf(a.out, "- %s\n", quote.Author)
	}
}

// +------------------------+
// |                        |
// |    Checklist           |
// |                        |
// +------------------------+

// LoadTasks fetches the checklist and renders it. On failure the last
// successful snapshot is rendered instead, so the previous view stays in
// place rather than being replaced by an error.
func (a *App) LoadTasks() {
	tasks, err := a.client.FetchTasks()
	if err != nil {
		log.Printf("error loading tasks: %v", err)

		cached, cacheErr := a.store.LoadTaskSnapshot()
		if cacheErr != nil {
			log.Printf("error reading task snapshot: %v", cacheErr)
			return
		}
		if cached == nil {
			return
		}

		fmt.Fprintln(a.out, "(showing last known tasks)")
		a.renderTaskList(cached)
		return
	}

	if err := a.store.SaveTaskSnapshot(tasks); err != nil {
		log.Printf("error caching tasks: %v", err)
	}
	a.renderTaskList(tasks)
}

func (a *App) renderTaskList(tasks []Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks yet.")
		return
	}

	headers := []string{"Done", "ID", "Task"}
	var rows [][]string
	for _, t := range tasks {
		rows = append(rows, []string{checkbox(t), strconv.FormatInt(t.ID, 10), t.Task})
	}

	PrintTable(a.out, headers, rows, nil)
}

// ToggleTask sets a task's finished flag and reloads the list no matter
// what, so the rendered state is whatever the server says it is.
func (a *App) ToggleTask(id int64, finished int) {
	if err := a.client.PatchTaskFinished(id, finished); err != nil {
		log.Printf("error updating task %d: %v", id, err)
	}

	a.LoadTasks()
}

// ToggleTaskByID looks the task up to learn its current state, then flips it.
func (a *App) ToggleTaskByID(id int64) {
	tasks, err := a.client.FetchTasks()
	if err != nil {
		log.Printf("error loading tasks: %v", err)
		return
	}

	for _, t := range tasks {
		if t.ID == id {
			a.ToggleTask(id, 1-t.Finished)
			return
		}
	}

	fmt.Fprintf(a.out, "No task with id %d.\n", id)
}

// PickAndToggleTask shows an arrow-key menu over the current list and
// flips whichever task gets picked.
func (a *App) PickAndToggleTask() {
	tasks, err := a.client.FetchTasks()
	if err != nil {
		log.Printf("error loading tasks: %v", err)
		return
	}
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks yet.")
		return
	}

	menu := gocliselect.NewMenu("Toggle which task?")
	for _, t := range tasks {
		menu.AddItem(fmt.Sprintf("%s %s", checkbox(t), t.Task), strconv.FormatInt(t.ID, 10))
	}

	choice := menu.Display()
	if choice == "" {
		return
	}

	for _, t := range tasks {
		if strconv.FormatInt(t.ID, 10) == choice {
			a.ToggleTask(t.ID, 1-t.Finished)
			return
		}
	}
}

// AddTask creates a new task from the given text. Whitespace-only input is
// rejected before any request is made; the list is reloaded afterwards
// whether or not the create went through.
func (a *App) AddTask(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		fmt.Fprintln(a.out, "Nothing to add.")
		return
	}

	// guards against a double submit while a create is in flight
	if a.adding {
		return
	}
	a.adding = true
	defer func() { a.adding = false }()

	if err := a.client.PostNewTask(text); err != nil {
		log.Printf("error adding task: %v", err)
	} else {
		fmt.Fprintf(a.out, "Added: %s\n", text)
	}

	a.LoadTasks()
}

// +------------------------+
// |                        |
// |    Notes Pad           |
// |                        |
// +------------------------+

func (a *App) loadEditor() *NotesEditor {
	draft, lastSaved, err := a.store.LoadNotesState()
	if err != nil {
		log.Printf("error reading notes state: %v", err)
	}
	return &NotesEditor{Draft: draft, LastSaved: lastSaved}
}

func (a *App) persistEditor(ed *NotesEditor) {
	if err := a.store.SaveNotesState(ed.Draft, ed.LastSaved); err != nil {
		log.Printf("error writing notes state: %v", err)
	}
}

// LoadNotes replaces the local draft and baseline with the server's copy.
// On failure local state is left untouched.
func (a *App) LoadNotes() {
	value, err := a.client.FetchNotes()
	if err != nil {
		log.Printf("error loading notes: %v", err)
		return
	}

	ed := a.loadEditor()
	ed.ApplyServer(value)
	a.persistEditor(ed)

	a.printNotes(ed)
}

// EditNotes replaces the draft and reports whether it now differs from the
// last saved value.
func (a *App) EditNotes(text string) {
	ed := a.loadEditor()
	ed.Draft = text
	a.persistEditor(ed)

	if ed.Dirty() {
		fmt.Fprintln(a.out, "Notes have unsaved changes. Run 'homeboard notes save' to push them.")
	} else {
		fmt.Fprintln(a.out, "Notes match the saved copy.")
	}
}

// SaveNotes pushes the draft to the server. A clean pad sends nothing; a
// failed save leaves the pad dirty so the save can simply be retried.
func (a *App) SaveNotes() {
	ed := a.loadEditor()
	if !ed.Dirty() {
		fmt.Fprintln(a.out, "Nothing to save.")
		return
	}

	echo, err := a.client.PutNotes(ed.Draft)
	if err != nil {
		log.Printf("error saving notes: %v", err)
		return
	}

	// the echo wins over the draft, in case the server normalized it
	ed.ApplyServer(echo)
	a.persistEditor(ed)

	fmt.Fprintln(a.out, "Notes saved.")
}

// NotesStatus shows the current draft and whether it is saved.
func (a *App) NotesStatus() {
	a.printNotes(a.loadEditor())
}

func (a *App) printNotes(ed *NotesEditor) {
	marker := "saved"
	if ed.Dirty() {
		marker = "unsaved changes"
	}

	fmt.Fprintf(a.out, "Notes (%s):\n", marker)
	if ed.Draft != "" {
		fmt.Fprintln(a.out, ed.Draft)
	}
}

// +------------------------+
// |                        |
// |    Start Page          |
// |                        |
// +------------------------+

// Board runs the full start page sequence: quote, checklist, notes. The
// notes pad is only refreshed from the server when there is no unsaved
// draft to lose.
func (a *App) Board(category string) {
	a.ShowQuote(category)
	fmt.Fprintln(a.out)

	a.LoadTasks()
	fmt.Fprintln(a.out)

	if a.loadEditor().Dirty() {
		a.NotesStatus()
		return
	}
	a.LoadNotes()
}
