package narrator

import (
	"context"
	"fmt"
	"strings"

	"soroia/internal/catalog"
	"soroia/internal/model"
	"soroia/pkg/llmprovider"
)

// NarrateRows explains a query result to the visitor.
func (n *LLMNarrator) NarrateRows(ctx context.Context, question, query string, rs model.ResultSet, conversationContext string) (string, error) {
	prompt := fmt.Sprintf(PromptRows, question, query, conversationContext, RenderRows(rs))
	return n.generate(ctx, LogPrefixNarrateRows, prompt, RowsTemperature)
}

// NarrateDocuments answers from retrieved passages only.
func (n *LLMNarrator) NarrateDocuments(ctx context.Context, question string, passages []model.Passage, conversationContext string) (string, error) {
	prompt := fmt.Sprintf(PromptDocuments, question, conversationContext, JoinPassages(passages))
	return n.generate(ctx, LogPrefixNarrateDocuments, prompt, DocumentsTemperature)
}

// Reply answers a social message without external context.
func (n *LLMNarrator) Reply(ctx context.Context, utterance string) (string, error) {
	prompt := fmt.Sprintf(PromptReply, utterance)
	return n.generate(ctx, LogPrefixReply, prompt, ReplyTemperature)
}

func (n *LLMNarrator) generate(ctx context.Context, prefix, prompt string, temperature float64) (string, error) {
	resp, err := n.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{llmprovider.UserMessage(prompt)},
		Temperature: temperature,
		MaxTokens:   MaxTokens,
		TopP:        TopP,
		Stream:      true,
	})
	if err != nil {
		n.l.Errorf(ctx, "%s: %v", prefix, err)
		return "", fmt.Errorf("%w: %v", ErrNarrationFailed, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty answer", ErrNarrationFailed)
	}
	return text, nil
}

// JoinPassages renders passages for the prompt, separated by a blank line.
func JoinPassages(passages []model.Passage) string {
	texts := make([]string, len(passages))
	for i, p := range passages {
		texts[i] = p.Text
	}
	return strings.Join(texts, passageSeparator)
}

// RenderRows renders a result set for the prompt: a header line then one
// line per row, fields separated by " | ". The image column is dropped and
// every field is cut to a bounded number of runes.
func RenderRows(rs model.ResultSet) string {
	if len(rs.Rows) == 0 {
		return emptyResults
	}

	keep := make([]int, 0, len(rs.Columns))
	header := make([]string, 0, len(rs.Columns))
	for i, c := range rs.Columns {
		if c == catalog.ColumnImages {
			continue
		}
		keep = append(keep, i)
		header = append(header, c)
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(header, " | "))
	for _, row := range rs.Rows {
		sb.WriteByte('\n')
		for j, i := range keep {
			if j > 0 {
				sb.WriteString(" | ")
			}
			if i < len(row) {
				sb.WriteString(truncate(cell(row[i]), maxFieldRunes))
			}
		}
	}
	return sb.String()
}

func cell(v any) string {
	if v == nil {
		return "NULL"
	}
	return strings.Join(strings.Fields(fmt.Sprint(v)), " ")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + ellipsis
}
