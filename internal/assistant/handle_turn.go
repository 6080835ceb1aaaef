package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"soroia/internal/artifact"
	"soroia/internal/catalog"
	"soroia/internal/model"
	"soroia/internal/narrator"
	"soroia/internal/session"
	"soroia/pkg/log"
)

// HandleTurn runs one routing turn. Classification, synthesis, execution and
// retrieval failures become assistant replies. A narration failure appends
// ReplyGenericError and is returned wrapped in narrator.ErrNarrationFailed.
func (uc *implUseCase) HandleTurn(ctx context.Context, s *session.Session, utterance string) (model.Turn, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return model.Turn{}, ErrEmptyUtterance
	}
	if err := s.Begin(); err != nil {
		return model.Turn{}, err
	}
	defer s.End()

	correlationID := uuid.NewString()
	ctx = log.WithCorrelationID(ctx, correlationID)
	ctx, span := otel.Tracer(tracerName).Start(ctx, spanTurn, trace.WithAttributes(
		attribute.String("soroia.session_id", s.ID()),
		attribute.String("soroia.correlation_id", correlationID),
	))
	defer span.End()

	s.ClearDetail()
	s.AppendTurn(model.Turn{Role: model.RoleUser, Content: utterance, CorrelationID: correlationID})

	conversationContext := ""
	if uc.opt.HistoryEnabled {
		conversationContext = s.Context(uc.opt.HistoryPairs)
	}

	in, err := uc.classifier.Classify(ctx, utterance, conversationContext)
	if err != nil {
		uc.l.Warnf(ctx, "%s: classify: %v", LogPrefixHandleTurn, err)
		in = model.IntentRejected
	}
	span.SetAttributes(attribute.String("soroia.intent", string(in)))
	uc.debug(s, debugClassification, in)

	t := &turn{uc: uc, s: s, utterance: utterance, conversationContext: conversationContext}
	var reply model.Turn
	switch in {
	case model.IntentDataLookup:
		reply, err = t.dataLookup(ctx)
	case model.IntentDocumentRetrieval:
		reply, err = t.documentRetrieval(ctx)
	case model.IntentSocial:
		reply, err = t.social(ctx)
	default:
		reply = model.Turn{Role: model.RoleAssistant, Content: ReplyRejected}
	}

	if err != nil {
		uc.l.Errorf(ctx, "%s: %s: %v", LogPrefixHandleTurn, in, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		reply = model.Turn{Role: model.RoleAssistant, Content: ReplyGenericError}
	}

	reply.CorrelationID = correlationID
	s.AppendTurn(reply)
	return reply, err
}

// turn holds the working variables of one HandleTurn call.
type turn struct {
	uc                  *implUseCase
	s                   *session.Session
	utterance           string
	conversationContext string
}

func (t *turn) dataLookup(ctx context.Context) (model.Turn, error) {
	q, err := t.uc.synthesizer.Synthesize(ctx, t.utterance, t.conversationContext)
	if err != nil {
		t.uc.l.Warnf(ctx, "%s: synthesize: %v", LogPrefixHandleTurn, err)
		return model.Turn{Role: model.RoleAssistant, Content: ReplyInvalidQuery}, nil
	}
	t.uc.debug(t.s, debugQuery, q)

	rs, err := t.uc.executor.Execute(ctx, q)
	if err != nil {
		reason := err.Error()
		var execErr *catalog.ExecutionError
		if errors.As(err, &execErr) {
			reason = execErr.Reason
		}
		return model.Turn{Role: model.RoleAssistant, Content: fmt.Sprintf(ReplyExecutionFailed, reason)}, nil
	}

	answer, err := t.uc.narrator.NarrateRows(ctx, t.utterance, q, rs, t.conversationContext)
	if err != nil {
		return model.Turn{}, err
	}
	return model.Turn{Role: model.RoleAssistant, Content: answer, Artifacts: artifact.Extract(rs)}, nil
}

func (t *turn) documentRetrieval(ctx context.Context) (model.Turn, error) {
	passages, err := t.uc.retriever.Retrieve(ctx, t.utterance)
	if err != nil {
		t.uc.l.Warnf(ctx, "%s: retrieve: %v", LogPrefixHandleTurn, err)
		return model.Turn{Role: model.RoleAssistant, Content: ReplyRetrievalFailed}, nil
	}
	t.uc.debug(t.s, debugDocuments, narrator.JoinPassages(passages))

	answer, err := t.uc.narrator.NarrateDocuments(ctx, t.utterance, passages, t.conversationContext)
	if err != nil {
		return model.Turn{}, err
	}
	return model.Turn{Role: model.RoleAssistant, Content: answer}, nil
}

func (t *turn) social(ctx context.Context) (model.Turn, error) {
	answer, err := t.uc.narrator.Reply(ctx, t.utterance)
	if err != nil {
		return model.Turn{}, err
	}
	return model.Turn{Role: model.RoleAssistant, Content: answer}, nil
}

func (uc *implUseCase) debug(s *session.Session, format string, arg any) {
	if !uc.opt.DebugMode {
		return
	}
	s.AppendTurn(model.Turn{Role: model.RoleSystem, Content: fmt.Sprintf(format, arg)})
}
