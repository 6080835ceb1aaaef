package llmprovider

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "soroia/pkg/llmprovider"

func startSpan(ctx context.Context, provider Provider, req *Request) (context.Context, trace.Span) {
	// https://opentelemetry.io/docs/specs/semconv/gen-ai/
	ctx, span := otel.Tracer(tracerName).Start(ctx, "llmprovider.generate_content",
		trace.WithAttributes(
			attribute.String("gen_ai.operation.name", "generate_content"),
			attribute.String("gen_ai.provider.name", provider.Name()),
			attribute.String("gen_ai.request.model", provider.Model()),
			attribute.Float64("gen_ai.request.temperature", req.Temperature),
			attribute.Bool("gen_ai.request.stream", req.Stream),
		))
	if req.MaxTokens > 0 {
		span.SetAttributes(attribute.Int("gen_ai.request.max_tokens", req.MaxTokens))
	}
	if req.TopP > 0 {
		span.SetAttributes(attribute.Float64("gen_ai.request.top_p", req.TopP))
	}
	return ctx, span
}

func endSpan(span trace.Span, resp *Response, err error) {
	defer span.End()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	if resp != nil && resp.Usage != nil {
		span.SetAttributes(
			attribute.Int("gen_ai.usage.input_tokens", resp.Usage.InputTokens),
			attribute.Int("gen_ai.usage.output_tokens", resp.Usage.OutputTokens),
		)
	}
}
