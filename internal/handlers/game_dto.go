package handlers

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/beesweeper-server/internal/beesweeper"
	"github.com/vancomm/beesweeper-server/internal/field"
)

type NewGameParams struct {
	Columns int     `schema:"columns,required"`
	Rows    int     `schema:"rows,required"`
	Bees    int     `schema:"bees,required"`
	Markers *int    `schema:"markers"`
	Seed    *uint64 `schema:"seed"`
}

func (p NewGameParams) options() []beesweeper.Option {
	var opts []beesweeper.Option
	if p.Markers != nil {
		opts = append(opts, beesweeper.WithMarkers(*p.Markers))
	}
	if p.Seed != nil {
		opts = append(opts, beesweeper.WithSeed(*p.Seed))
	}
	return opts
}

type PosParams struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func (p PosParams) Coordinate() field.Coordinate {
	return field.Of(p.Row, p.Col)
}

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

type GameDTO struct {
	GameID           string                `json:"game_id"`
	Columns          int                   `json:"columns"`
	Rows             int                   `json:"rows"`
	Status           beesweeper.GameStatus `json:"status"`
	MarkersAvailable int                   `json:"markers_available"`
	Cells            []beesweeper.CellView `json:"cells"`
}

// NewGameDTO must be called while holding the session lock.
func NewGameDTO(id string, g *beesweeper.Game) *GameDTO {
	columns, rows := g.Bounds()
	return &GameDTO{
		GameID:           id,
		Columns:          columns,
		Rows:             rows,
		Status:           g.Status(),
		MarkersAvailable: g.MarkersAvailable(),
		Cells:            g.Cells(),
	}
}

type CreatedDTO struct {
	Token string   `json:"token"`
	Game  *GameDTO `json:"game"`
}

type MoveDTO struct {
	Result beesweeper.OperationStatus `json:"result"`
	Game   *GameDTO                   `json:"game"`
}

// BatchDTO reports the commands applied before an error, if any, so the
// client never misses a move.
type BatchDTO struct {
	Results []beesweeper.OperationStatus `json:"results"`
	Game    *GameDTO                     `json:"game"`
	Error   string                       `json:"error,omitempty"`
}
