package scryfall

import (
	"encoding/json"
	"fmt"
)

// ImageURLs holds the image variants Scryfall serves for a card. A nil
// variant means the payload did not include it (e.g. double-faced cards
// carry images per face, not at the top level).
type ImageURLs struct {
	Small      *string `json:"small"`
	Normal     *string `json:"normal"`
	BorderCrop *string `json:"border_crop"`
}

// Card is the metadata record for a single card, keyed by the name as
// queried. Rulings is only populated by FetchFullCard; the cached record
// never carries rulings.
type Card struct {
	Name       string    `json:"name"`
	ID         string    `json:"id"`
	ImageURLs  ImageURLs `json:"image_url"`
	ManaCost   string    `json:"mana_cost"`
	CMC        float64   `json:"cmc"`
	TypeLine   string    `json:"type"`
	Colors     []string  `json:"colors"`
	OracleText string    `json:"oracle_text"`
	Keywords   []string  `json:"keywords"`
	Legality   string    `json:"legality"`
	Rulings    []Ruling  `json:"rulings,omitempty"`
}

// Ruling is an immutable (publication date, comment) pair. Rulings are kept
// in the order Scryfall returns them, which is chronological.
type Ruling struct {
	PublishedAt string
	Comment     string
}

// String formats the ruling as "[date] comment".
func (r Ruling) String() string {
	return fmt.Sprintf("[%s] %s", r.PublishedAt, r.Comment)
}

// MarshalJSON renders the ruling in its formatted form, matching the wire
// shape the API surface exposes.
func (r Ruling) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// cardPayload mirrors the subset of the Scryfall named-card response we
// extract. Absent fields decode to zero values or nil pointers.
type cardPayload struct {
	Name       string            `json:"name"`
	ID         string            `json:"id"`
	ImageURIs  *ImageURLs        `json:"image_uris"`
	ManaCost   string            `json:"mana_cost"`
	CMC        float64           `json:"cmc"`
	TypeLine   string            `json:"type_line"`
	Colors     []string          `json:"colors"`
	OracleText string            `json:"oracle_text"`
	Keywords   []string          `json:"keywords"`
	Legalities map[string]string `json:"legalities"`
}

// toCard maps the raw payload onto a Card, reducing legalities to the
// commander format.
func (p *cardPayload) toCard() Card {
	card := Card{
		Name:       p.Name,
		ID:         p.ID,
		ManaCost:   p.ManaCost,
		CMC:        p.CMC,
		TypeLine:   p.TypeLine,
		Colors:     p.Colors,
		OracleText: p.OracleText,
		Keywords:   p.Keywords,
		Legality:   p.Legalities["commander"],
	}
	if p.ImageURIs != nil {
		card.ImageURLs = *p.ImageURIs
	}
	return card
}

// rulingsPayload mirrors the Scryfall rulings list response.
type rulingsPayload struct {
	Data []struct {
		PublishedAt string `json:"published_at"`
		Comment     string `json:"comment"`
	} `json:"data"`
}

// toRulings converts the payload entries, preserving upstream order.
// A card with zero rulings yields an empty, non-nil slice.
func (p *rulingsPayload) toRulings() []Ruling {
	rulings := make([]Ruling, 0, len(p.Data))
	for _, entry := range p.Data {
		rulings = append(rulings, Ruling{
			PublishedAt: entry.PublishedAt,
			Comment:     entry.Comment,
		})
	}
	return rulings
}
