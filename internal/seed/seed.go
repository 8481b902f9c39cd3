// Package seed loads the site's curated content and writes it to the content store.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"gnapi/internal/model"
	"gnapi/internal/repository"
)

//go:embed content.yaml
var defaultContent []byte

// Content is one full snapshot of team, portfolio and news.
type Content struct {
	Team     []model.TeamMember
	Projects []model.Project
	News     []model.NewsArticle
}

type document struct {
	Team     []teamDoc    `yaml:"team"`
	Projects []projectDoc `yaml:"projects"`
	News     []newsDoc    `yaml:"news"`
}

type teamDoc struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Bio      string `yaml:"bio"`
	ImageURL string `yaml:"image_url"`
}

type projectDoc struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Address     string `yaml:"address"`
	Category    string `yaml:"category"`
	Units       *int   `yaml:"units"`
	SquareFeet  string `yaml:"square_feet"`
	Year        string `yaml:"year"`
	Status      string `yaml:"status"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image_url"`
}

type newsDoc struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	Date         string `yaml:"date"`
	ShortContent string `yaml:"short_content"`
	Content      string `yaml:"content"`
	ImageURL     string `yaml:"image_url"`
}

// Default returns the content shipped with the binary.
func Default() (*Content, error) {
	return Parse(defaultContent)
}

// LoadFile reads content from a YAML file with the same layout as the embedded one.
func LoadFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML content. Unknown keys are rejected.
func Parse(data []byte) (*Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode seed content: %w", err)
	}

	c := &Content{
		Team:     make([]model.TeamMember, 0, len(doc.Team)),
		Projects: make([]model.Project, 0, len(doc.Projects)),
		News:     make([]model.NewsArticle, 0, len(doc.News)),
	}
	for _, d := range doc.Team {
		c.Team = append(c.Team, model.TeamMember{
			ID: d.ID, Name: d.Name, Role: d.Role, Bio: d.Bio, ImageURL: d.ImageURL,
		})
	}
	for _, d := range doc.Projects {
		c.Projects = append(c.Projects, model.Project{
			ID:          d.ID,
			Name:        d.Name,
			Address:     d.Address,
			Category:    model.ProjectCategory(d.Category),
			Units:       d.Units,
			SquareFeet:  d.SquareFeet,
			Year:        d.Year,
			Status:      d.Status,
			Description: d.Description,
			ImageURL:    d.ImageURL,
		})
	}
	for _, d := range doc.News {
		c.News = append(c.News, model.NewsArticle{
			ID: d.ID, Title: d.Title, Date: d.Date, ShortContent: d.ShortContent, Content: d.Content, ImageURL: d.ImageURL,
		})
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks ids, required fields, categories and per-collection id uniqueness.
// All problems are reported together.
func (c *Content) Validate() error {
	var errs []error

	seen := map[string]bool{}
	for i, m := range c.Team {
		errs = append(errs, checkID("team", i, m.ID, seen))
		if m.Name == "" || m.Role == "" {
			errs = append(errs, fmt.Errorf("team[%d] %q: name and role are required", i, m.ID))
		}
	}

	seen = map[string]bool{}
	for i, p := range c.Projects {
		errs = append(errs, checkID("projects", i, p.ID, seen))
		if p.Name == "" || p.Address == "" {
			errs = append(errs, fmt.Errorf("projects[%d] %q: name and address are required", i, p.ID))
		}
		if !p.Category.Valid() {
			errs = append(errs, fmt.Errorf("projects[%d] %q: unknown category %q", i, p.ID, p.Category))
		}
		if p.Units != nil && *p.Units < 0 {
			errs = append(errs, fmt.Errorf("projects[%d] %q: units must not be negative", i, p.ID))
		}
	}

	seen = map[string]bool{}
	for i, a := range c.News {
		errs = append(errs, checkID("news", i, a.ID, seen))
		if a.Title == "" || a.Date == "" || a.Content == "" {
			errs = append(errs, fmt.Errorf("news[%d] %q: title, date and content are required", i, a.ID))
		}
	}

	return errors.Join(errs...)
}

func checkID(section string, i int, id string, seen map[string]bool) error {
	if !model.ValidContentID(id) {
		return fmt.Errorf("%s[%d]: invalid id %q", section, i, id)
	}
	if seen[id] {
		return fmt.Errorf("%s[%d]: duplicate id %q", section, i, id)
	}
	seen[id] = true
	return nil
}

// Stats reports how many records a run wrote per collection.
type Stats struct {
	Team     int
	Projects int
	News     int
}

// Seeder replaces the content collections with a Content snapshot.
type Seeder struct {
	team     repository.TeamRepository
	projects repository.ProjectRepository
	news     repository.NewsRepository
	log      *zap.Logger
	now      func() time.Time
}

// NewSeeder constructs a Seeder over the given repositories.
func NewSeeder(team repository.TeamRepository, projects repository.ProjectRepository, news repository.NewsRepository, log *zap.Logger) *Seeder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Seeder{team: team, projects: projects, news: news, log: log, now: time.Now}
}

// Run replaces all three collections concurrently. created_at is stamped one
// millisecond apart in file order so listings keep the curated order.
// The first failure cancels the remaining writes.
func (s *Seeder) Run(ctx context.Context, c *Content) (Stats, error) {
	base := s.now().UTC().Truncate(time.Millisecond)
	stamp := func(i int) time.Time { return base.Add(time.Duration(i) * time.Millisecond) }

	team := make([]model.TeamMember, len(c.Team))
	for i, m := range c.Team {
		m.CreatedAt = stamp(i)
		team[i] = m
	}
	projects := make([]model.Project, len(c.Projects))
	for i, p := range c.Projects {
		p.CreatedAt = stamp(i)
		projects[i] = p
	}
	news := make([]model.NewsArticle, len(c.News))
	for i, a := range c.News {
		a.CreatedAt = stamp(i)
		news[i] = a
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.team.Replace(gctx, team); err != nil {
			return fmt.Errorf("seed team: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.projects.Replace(gctx, projects); err != nil {
			return fmt.Errorf("seed projects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.news.Replace(gctx, news); err != nil {
			return fmt.Errorf("seed news: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Error("seed_failed", zap.Error(err))
		return Stats{}, err
	}

	stats := Stats{Team: len(team), Projects: len(projects), News: len(news)}
	s.log.Info("seed_success",
		zap.Int("team", stats.Team),
		zap.Int("projects", stats.Projects),
		zap.Int("news", stats.News),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return stats, nil
}
