package wire

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/AlexJMohr/svelte-vs-vue/internal/compose"
	"github.com/AlexJMohr/svelte-vs-vue/internal/content"
	"github.com/AlexJMohr/svelte-vs-vue/internal/render"
	"github.com/AlexJMohr/svelte-vs-vue/pkg/api"
)

// App aggregates the wired services for easy injection.
type App struct {
	Cfg  *viper.Viper
	Log  *zap.Logger
	Set  *content.Set
	Page *api.Page
}

// BuildApp loads the content model and composes the page once. The
// resulting Page is immutable shared state for every surface.
func BuildApp(ctx context.Context, v *viper.Viper, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		set *content.Set
		err error
	)
	if path := v.GetString("content_path"); path != "" {
		set, err = content.Load(path)
	} else {
		set, err = content.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	md := render.NewMarkdown()
	hl := render.NewHighlighter(v.GetString("page.style"))
	page := compose.New(md, hl, log).Compose(set)

	log.Debug("composed page",
		zap.String("title", page.Title),
		zap.Int("entries", len(page.Entries)))

	return &App{Cfg: v, Log: log, Set: set, Page: page}, nil
}
