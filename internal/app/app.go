package app

import (
	"github.com/devbydaniel/meetnotes/config"
	"github.com/devbydaniel/meetnotes/internal/domain/meeting"
	"github.com/devbydaniel/meetnotes/internal/domain/meeting/usecases"
	"github.com/devbydaniel/meetnotes/internal/llm"
	"github.com/devbydaniel/meetnotes/internal/stt"
)

// App wires the use cases with their collaborators. Everything is
// constructed here from explicit configuration; there is no ambient
// global state, so tests and future multi-instance setups can build
// isolated Apps.
type App struct {
	Store     *meeting.Store
	Record    *usecases.Record
	Catalog   *usecases.Catalog
	Summarize *usecases.Summarize
	View      *usecases.View
}

func New(cfg *config.Config) (*App, error) {
	store := meeting.NewStore(cfg.NotesDir)

	record := &usecases.Record{
		Store:         store,
		STT:           stt.NewClient(cfg.MistralAPIKey),
		Language:      cfg.Language,
		FlushInterval: cfg.FlushInterval,
	}

	catalog := &usecases.Catalog{Store: store}

	summarize := &usecases.Summarize{
		Store:          store,
		Chat:           llm.NewClient(cfg.AnthropicKey),
		PromptTemplate: cfg.SummaryPrompt,
	}

	view := &usecases.View{
		Store:     store,
		Summarize: summarize,
	}

	return &App{
		Store:     store,
		Record:    record,
		Catalog:   catalog,
		Summarize: summarize,
		View:      view,
	}, nil
}
