package assistant

import (
	"soroia/internal/catalog"
	"soroia/internal/intent"
	"soroia/internal/narrator"
	"soroia/internal/query"
	"soroia/internal/retrieval"
	"soroia/pkg/log"
)

type implUseCase struct {
	classifier  intent.Classifier
	synthesizer query.Synthesizer
	executor    catalog.Executor
	retriever   retrieval.Retriever
	narrator    narrator.Narrator
	l           log.Logger
	opt         Options
}

var _ UseCase = (*implUseCase)(nil)

// New creates the routing UseCase.
func New(
	classifier intent.Classifier,
	synthesizer query.Synthesizer,
	executor catalog.Executor,
	retriever retrieval.Retriever,
	narrator narrator.Narrator,
	l log.Logger,
	opt Options,
) *implUseCase {
	if opt.HistoryPairs <= 0 {
		opt.HistoryPairs = DefaultHistoryPairs
	}
	return &implUseCase{
		classifier:  classifier,
		synthesizer: synthesizer,
		executor:    executor,
		retriever:   retriever,
		narrator:    narrator,
		l:           l,
		opt:         opt,
	}
}
