package catalog

import (
	"strings"

	"mediashelf/internal/services"
)

// Kind identifies a media category. Kind names appear in cache keys and API
// paths, so the canonical lowercase spelling must stay stable.
type Kind string

const (
	KindBook  Kind = "book"
	KindMovie Kind = "movie"
	KindGame  Kind = "game"
	KindMusic Kind = "music"
)

// Kinds returns every supported media kind in stable order.
func Kinds() []Kind {
	return []Kind{KindBook, KindMovie, KindGame, KindMusic}
}

func (k Kind) String() string { return string(k) }

// ParseKind resolves a user-supplied kind name case-insensitively. Unknown
// names are a caller mistake and surface as a usage error.
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "book", "books":
		return KindBook, nil
	case "movie", "movies":
		return KindMovie, nil
	case "game", "games":
		return KindGame, nil
	case "music":
		return KindMusic, nil
	default:
		return "", services.Wrap(services.ErrUsage, "catalog", "parse-kind", "unknown media kind "+strings.TrimSpace(value), nil)
	}
}
