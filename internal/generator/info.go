package generator

import "todo-api/internal/models"

// Info describes the generator's static capabilities. It depends only on
// the template catalog and never changes while the process lives.
type Info struct {
	MaxCount           int             `json:"maxCount"`
	AvailableTemplates int             `json:"availableTemplates"`
	TemplateStats      map[string]int  `json:"templateStats"`
	Statuses           []models.Status `json:"statuses"`
	Features           []string        `json:"features"`
	Defaults           Defaults        `json:"defaults"`
}

// Defaults reports the randomization option defaults applied when a
// generation request omits them.
type Defaults struct {
	RandomizeCreationDate bool `json:"randomizeCreationDate"`
	MaxCreationDaysAgo    int  `json:"maxCreationDaysAgo"`
}

// Info returns the generator's capability metadata.
func (g *Generator) Info() Info {
	stats := make(map[string]int, 3)
	for _, s := range models.Statuses() {
		stats[string(s)] = 0
	}
	for _, tpl := range g.templates {
		stats[string(tpl.Status)]++
	}
	return Info{
		MaxCount:           MaxCount,
		AvailableTemplates: len(g.templates),
		TemplateStats:      stats,
		Statuses:           models.Statuses(),
		Features: []string{
			"keyword filtering over template titles and descriptions",
			"status selection with pending default",
			"randomized creation dates within a configurable window",
			"optional deadlines up to maxDeadlineDays in the future",
		},
		Defaults: Defaults{
			RandomizeCreationDate: true,
			MaxCreationDaysAgo:    DefaultMaxCreationDaysAgo,
		},
	}
}
