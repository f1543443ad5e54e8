package catalog

import "fmt"

// Entity is implemented by every canonical catalog record. The ID is opaque,
// assigned by the store on insert, and empty until then.
type Entity interface {
	EntityID() string
	SetEntityID(id string)
	EntityTitle() string
	EntityKind() Kind
}

// Book is a canonical book record.
type Book struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	PublishDate string   `json:"publish_date,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Format      string   `json:"format,omitempty"`
	Pages       *int     `json:"pages,omitempty"`
	ISBN        string   `json:"isbn,omitempty"`
}

func (b *Book) EntityID() string      { return b.ID }
func (b *Book) SetEntityID(id string) { b.ID = id }
func (b *Book) EntityTitle() string   { return b.Title }
func (b *Book) EntityKind() Kind      { return KindBook }

// Movie is a canonical movie record.
type Movie struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Studios     []string `json:"studios,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Format      string   `json:"format,omitempty"`
	Runtime     *int     `json:"runtime,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Rating      string   `json:"rating,omitempty"`
	Overview    string   `json:"overview,omitempty"`
	IsTVSeries  bool     `json:"is_tv_series,omitempty"`
	Barcode     string   `json:"barcode,omitempty"`
}

func (m *Movie) EntityID() string      { return m.ID }
func (m *Movie) SetEntityID(id string) { m.ID = id }
func (m *Movie) EntityTitle() string   { return m.Title }
func (m *Movie) EntityKind() Kind      { return KindMovie }

// Game is a canonical video-game record.
type Game struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Studios     []string `json:"studios,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Format      string   `json:"format,omitempty"`
	Platform    string   `json:"platform,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Barcode     string   `json:"barcode,omitempty"`
}

func (g *Game) EntityID() string      { return g.ID }
func (g *Game) SetEntityID(id string) { g.ID = id }
func (g *Game) EntityTitle() string   { return g.Title }
func (g *Game) EntityKind() Kind      { return KindGame }

// Music is a canonical music-album record.
type Music struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Artist      string   `json:"artist,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Format      string   `json:"format,omitempty"`
	Tracks      *int     `json:"tracks,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Barcode     string   `json:"barcode,omitempty"`
}

func (m *Music) EntityID() string      { return m.ID }
func (m *Music) SetEntityID(id string) { m.ID = id }
func (m *Music) EntityTitle() string   { return m.Title }
func (m *Music) EntityKind() Kind      { return KindMusic }

// New returns an empty entity of the given kind for the store to decode into.
func New(kind Kind) (Entity, error) {
	switch kind {
	case KindBook:
		return &Book{}, nil
	case KindMovie:
		return &Movie{}, nil
	case KindGame:
		return &Game{}, nil
	case KindMusic:
		return &Music{}, nil
	default:
		return nil, fmt.Errorf("no entity shape for kind %q", kind)
	}
}

// IntPtr is a convenience for populating optional numeric fields.
func IntPtr(v int) *int { return &v }
