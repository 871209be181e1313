// Package tracing provides OpenTelemetry tracing integration.
//
// The catalog service opens one span per operation through StartSpan and
// records failures with EndSpan. Spans go to whatever TracerProvider is
// installed globally; without one they are no-ops.
//
// Example usage:
//
//	func (s *Service) AddArticle(ctx context.Context, ...) (_ *entity.Article, err error) {
//	    ctx, span := tracing.StartSpan(ctx, "AddArticle")
//	    defer func() { tracing.EndSpan(span, err) }()
//	    ...
//	}
package tracing
