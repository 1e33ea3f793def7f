package runtime

import (
	"context"
	"fmt"

	constant "github.com/LerianStudio/lib-chek/chek/constants"
	"github.com/LerianStudio/lib-chek/chek/report"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RecordAssertionToSpan adds an assertion.failed event to the span in ctx,
// records the failure as a span error and marks the span status as Error.
// It does nothing when the span is not recording. In production mode the
// diagnostic text is replaced by a redacted message.
func RecordAssertionToSpan(
	ctx context.Context,
	failure *report.AssertionError,
	stack []byte,
	component, name string,
) {
	recordToSpan(ctx, "", failure, stack, component, name)
}

func recordIncidentToSpan(ctx context.Context, inc incident) {
	recordToSpan(ctx, inc.id, inc.failure, inc.stack, inc.component, inc.name)
}

func recordToSpan(
	ctx context.Context,
	id string,
	failure *report.AssertionError,
	stack []byte,
	component, name string,
) {
	if ctx == nil || failure == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	// Production spans are redacted like the reported error.
	redact := inProduction()

	text := failure.Error()
	if redact {
		text = redactedAssertionMsg
	}

	attrs := []attribute.KeyValue{
		attribute.String(constant.AttrAssertionConstruct, failure.Construct),
		attribute.String(constant.AttrAssertionText, text),
		attribute.String(constant.AttrAssertionGoroutine, name),
	}

	if id != "" {
		attrs = append(attrs, attribute.String(constant.AttrAssertionID, id))
	}

	if failure.HasMessage && !redact {
		attrs = append(attrs, attribute.String(constant.AttrAssertionMessage, failure.Message))
	}

	if component != "" {
		attrs = append(attrs, attribute.String(constant.AttrAssertionComponent, component))
	}

	if len(stack) > 0 && !redact {
		attrs = append(attrs, attribute.String(constant.AttrAssertionStack, string(stack)))
	}

	span.AddEvent(constant.EventAssertionFailed, trace.WithAttributes(attrs...))
	span.RecordError(toReportedError(failure))
	span.SetStatus(codes.Error, statusMessage(component, name))
}

func statusMessage(component, name string) string {
	switch {
	case component != "" && name != "":
		return fmt.Sprintf("assertion failed in %s/%s", component, name)
	case component != "":
		return "assertion failed in " + component
	case name != "":
		return "assertion failed in " + name
	default:
		return "assertion failed"
	}
}
