package setup

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/itchan-dev/minichan/internal/config"
	internal_errors "github.com/itchan-dev/minichan/internal/errors"
	"github.com/itchan-dev/minichan/internal/handler"
	"github.com/itchan-dev/minichan/internal/logger"
	"github.com/itchan-dev/minichan/internal/markdown"
	"github.com/itchan-dev/minichan/internal/service"
	"github.com/itchan-dev/minichan/internal/storage/fs"
	"github.com/itchan-dev/minichan/internal/storage/pg"

	"github.com/itchan-dev/minichan/internal/domain"
)

const baseTemplate = "base.html"

// Dependencies holds all initialized application dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Media   *fs.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies initializes everything the server needs: storage,
// services, templates, handlers, and the default boards.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg.DatabaseURL(), cfg.Public)
	if err != nil {
		return nil, err
	}

	media, err := fs.New(cfg.Public.UploadDir)
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	board := service.NewBoard(storage)
	thread := service.NewThread(storage)
	post := service.NewPost(storage)
	mediaSvc := service.NewMedia(media)

	templates, err := loadTemplates(cfg.Public.TemplatesDir)
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	h := handler.New(board, thread, post, mediaSvc, markdown.New(), templates, cfg.Public)

	if err := SeedBoards(board); err != nil {
		storage.Cleanup()
		return nil, err
	}

	return &Dependencies{
		Storage: storage,
		Media:   media,
		Handler: h,
		Config:  cfg,
	}, nil
}

var defaultBoards = []domain.BoardCreationData{
	{Name: "b", Title: "Random", Description: "Random discussions"},
	{Name: "g", Title: "Technology", Description: "Technology discussions"},
	{Name: "v", Title: "Video Games", Description: "Video game discussions"},
}

// SeedBoards creates the default boards on a fresh database. Idempotent:
// if any board exists nothing happens, and a Conflict from a concurrent
// seeder is ignored.
func SeedBoards(board service.BoardService) error {
	boards, err := board.GetAll()
	if err != nil {
		return fmt.Errorf("failed to check existing boards: %w", err)
	}
	if len(boards) > 0 {
		return nil
	}

	for _, seed := range defaultBoards {
		if _, err := board.Create(seed); err != nil {
			if e, ok := err.(*internal_errors.ErrorWithStatusCode); ok && e.StatusCode == http.StatusConflict {
				continue
			}
			return fmt.Errorf("failed to seed board %s: %w", seed.Name, err)
		}
		logger.Log.Info("seeded board", "name", seed.Name, "title", seed.Title)
	}
	return nil
}

func sub(a, b int) int { return a - b }
func add(a, b int) int { return a + b }

func dict(values ...any) (map[string]any, error) {
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("invalid dict call: number of arguments must be even")
	}
	m := make(map[string]any, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings")
		}
		m[key] = values[i+1]
	}
	return m, nil
}

func loadTemplates(tmplPath string) (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template)
	files, err := os.ReadDir(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates dir: %w", err)
	}

	for _, f := range files {
		if filepath.Ext(f.Name()) != ".html" || f.Name() == baseTemplate || f.Name() == "partials.html" {
			continue
		}
		tmpl, err := template.New(baseTemplate).Funcs(
			template.FuncMap{
				"sub":  sub,
				"add":  add,
				"dict": dict,
			},
		).ParseFiles(
			path.Join(tmplPath, baseTemplate),
			path.Join(tmplPath, f.Name()),
			path.Join(tmplPath, "partials.html"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", f.Name(), err)
		}
		templates[f.Name()] = tmpl
	}
	return templates, nil
}
