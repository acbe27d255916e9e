package generator

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"todo-api/internal/models"
)

// IDSource hands out monotonically increasing todo identifiers. The store
// owns the counter; the generator only draws from it.
type IDSource interface {
	NextID() int64
}

// Generator synthesizes sample todos from the fixed template catalog.
type Generator struct {
	templates []Template

	mu  sync.Mutex // guards rng, which is not safe for concurrent use
	rng *rand.Rand
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the randomness source. Tests pass a seeded source to get
// reproducible output.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithTemplates replaces the template catalog.
func WithTemplates(ts []Template) Option {
	return func(g *Generator) { g.templates = ts }
}

// New returns a Generator over the built-in catalog with a non-seeded
// randomness source.
func New(opts ...Option) *Generator {
	g := &Generator{
		templates: catalog,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate validates the request and produces the requested number of todos,
// drawing one id per record from ids. A request that fails validation
// consumes no ids. Once validation passes, generation cannot fail.
func (g *Generator) Generate(req Request, ids IDSource) ([]models.Todo, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	count := 1
	if req.Count != nil {
		count = *req.Count
	}
	status := models.StatusPending
	if req.Status != nil {
		status = models.Status(*req.Status)
	}
	randomize := true
	if req.RandomizeCreationDate != nil {
		randomize = *req.RandomizeCreationDate
	}
	daysAgo := float64(DefaultMaxCreationDaysAgo)
	if req.MaxCreationDaysAgo != nil {
		daysAgo = *req.MaxCreationDaysAgo
	}

	pool := g.filter(req.TitleKeywords)
	now := g.now()

	g.mu.Lock()
	defer g.mu.Unlock()

	todos := make([]models.Todo, 0, count)
	for i := 0; i < count; i++ {
		tpl := pool[g.rng.Intn(len(pool))]
		created := now
		if randomize {
			created = now.Add(-g.randSpan(daysAgo))
		}
		t := models.Todo{
			ID:          ids.NextID(),
			Title:       tpl.Title,
			Description: tpl.Description,
			Status:      status,
			CreatedAt:   created,
			UpdatedAt:   created,
		}
		if req.MaxDeadlineDays != nil {
			deadline := now.Add(g.randSpan(*req.MaxDeadlineDays))
			t.Deadline = &deadline
		}
		todos = append(todos, t)
	}
	return todos, nil
}

// randSpan returns a uniform duration in [0, days*24h].
func (g *Generator) randSpan(days float64) time.Duration {
	span := time.Duration(days * float64(24*time.Hour))
	if span <= 0 {
		return 0
	}
	return time.Duration(g.rng.Int63n(int64(span) + 1))
}

// filter returns the templates whose title or description contains at least
// one keyword (case-insensitive substring). When nothing matches, the full
// catalog is returned so the requested count can always be produced.
func (g *Generator) filter(keywords []string) []Template {
	if len(keywords) == 0 {
		return g.templates
	}
	var pool []Template
	for _, tpl := range g.templates {
		title := strings.ToLower(tpl.Title)
		desc := strings.ToLower(tpl.Description)
		for _, kw := range keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if strings.Contains(title, kw) || strings.Contains(desc, kw) {
				pool = append(pool, tpl)
				break
			}
		}
	}
	if len(pool) == 0 {
		return g.templates
	}
	return pool
}
