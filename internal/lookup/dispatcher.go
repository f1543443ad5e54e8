package lookup

import (
	"context"
	"log/slog"
	"strings"

	"mediashelf/internal/catalog"
	"mediashelf/internal/logging"
)

// Dispatcher routes lookup requests to the first registered strategy that
// serves the requested media kind and identifier kind.
type Dispatcher struct {
	strategies []Strategy
	logger     *slog.Logger
}

// NewDispatcher assembles a dispatcher over the given strategies. The list
// is fixed for the dispatcher's lifetime; order decides precedence when
// multiple strategies serve the same kind.
func NewDispatcher(logger *slog.Logger, strategies ...Strategy) *Dispatcher {
	return &Dispatcher{
		strategies: strategies,
		logger:     logging.NewComponentLogger(logger, "lookup"),
	}
}

// Resolve finds a matching strategy and runs it. A nil response with a nil
// error means either no strategy serves the request or the strategy's
// external sources know nothing about the identifier; both are legitimate
// not-found outcomes, not errors.
func (d *Dispatcher) Resolve(ctx context.Context, kind catalog.Kind, identifierKind, value string) (*Response, error) {
	identifierKind = strings.TrimSpace(identifierKind)
	value = strings.TrimSpace(value)

	for _, strategy := range d.strategies {
		if strategy.Kind() != kind || !strategy.SupportsIdentifier(identifierKind) {
			continue
		}

		d.logger.Debug("dispatching lookup",
			logging.String(logging.FieldMediaKind, string(kind)),
			logging.String("identifier_kind", identifierKind))

		response, err := strategy.Lookup(ctx, identifierKind, value)
		if err != nil {
			return nil, err
		}
		if response == nil {
			d.logger.Debug("lookup yielded no result",
				logging.String(logging.FieldMediaKind, string(kind)),
				logging.String("identifier_kind", identifierKind))
			return nil, nil
		}
		return response, nil
	}

	d.logger.Debug("no strategy for lookup",
		logging.String(logging.FieldMediaKind, string(kind)),
		logging.String("identifier_kind", identifierKind))
	return nil, nil
}

func identifierOneOf(identifierKind string, accepted ...string) bool {
	for _, candidate := range accepted {
		if strings.EqualFold(identifierKind, candidate) {
			return true
		}
	}
	return false
}
