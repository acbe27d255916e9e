package generator

import "todo-api/internal/models"

// Template is a static title/description pair used as source content for
// generated todos. Status is the template's natural bucket, used only for
// catalog statistics; generated todos get their status from the request.
type Template struct {
	Title       string
	Description string
	Status      models.Status
}

// catalog is the fixed template set, initialized once and never mutated.
var catalog = []Template{
	{"Buy groceries", "Milk, eggs, bread and fresh vegetables for the week", models.StatusPending},
	{"Write project report", "Summarize this quarter's progress for the team meeting", models.StatusInProgress},
	{"Review pull requests", "Work through the open reviews before standup", models.StatusPending},
	{"Plan vacation", "Compare flights and book accommodation for the summer trip", models.StatusPending},
	{"Update resume", "Add the latest role and refresh the skills section", models.StatusPending},
	{"Clean the garage", "Sort tools, donate old equipment, sweep the floor", models.StatusPending},
	{"Schedule dentist appointment", "Six-month checkup is overdue, call the clinic", models.StatusPending},
	{"Read language documentation", "Go through the effective usage guide and take notes", models.StatusInProgress},
	{"Fix leaking faucet", "Replace the washer in the kitchen sink", models.StatusPending},
	{"Prepare presentation slides", "Draft the deck for the client demo on Friday", models.StatusInProgress},
	{"Renew car insurance", "Current policy expires at the end of the month", models.StatusPending},
	{"Back up laptop files", "Full backup of documents and photos to the external drive", models.StatusCompleted},
	{"Water the plants", "Balcony herbs and the office fern", models.StatusCompleted},
	{"Refactor legacy module", "Split the billing package and add missing tests", models.StatusInProgress},
	{"Call the bank", "Ask about the pending card replacement", models.StatusPending},
}
