package match

import (
	"github.com/samber/lo"

	"github.com/yola1107/ludo/internal/model"
)

// PieceState is the read-only view of one piece.
type PieceState struct {
	ID    int32      `json:"id"`
	Owner int32      `json:"owner"`
	Slot  int32      `json:"slot"`
	Zone  model.Zone `json:"zone"`
	Index int32      `json:"index"`
	Cell  int32      `json:"cell"` // absolute ring cell, -1 off the shared path
}

func (s PieceState) Position() model.Position {
	return model.Position{Zone: s.Zone, Index: s.Index}
}

// PlayerState is the read-only view of one player.
type PlayerState struct {
	ID       int32  `json:"id"`
	Color    string `json:"color"`
	Arrived  int    `json:"arrived"`
	Progress int32  `json:"progress"`
	Finished bool   `json:"finished"`
}

// Snapshot is a full copy of the match state for rendering.
type Snapshot struct {
	ID         string        `json:"id"`
	Stage      StageID       `json:"stage"`
	Active     int32         `json:"active"`
	Roll       int32         `json:"roll"`
	Winner     int32         `json:"winner"`
	Turns      int32         `json:"turns"`
	Captures   int32         `json:"captures"`
	LegalMoves []int32       `json:"legal_moves"`
	Players    []PlayerState `json:"players"`
	Pieces     []PieceState  `json:"pieces"`
	LastStep   *model.Step   `json:"last_step,omitempty"`
}

// Snapshot copies the current state. Later moves do not change it.
func (m *Match) Snapshot() *Snapshot {
	return &Snapshot{
		ID:         m.id,
		Stage:      m.stage.GetState(),
		Active:     m.active,
		Roll:       m.roll,
		Winner:     m.winner,
		Turns:      m.turns,
		Captures:   m.kills,
		LegalMoves: m.LegalMoves(),
		Players: lo.Map(m.board.Players(), func(p *model.Player, _ int) PlayerState {
			return PlayerState{
				ID:       p.ID(),
				Color:    p.Color(),
				Arrived:  p.ArrivedCount(),
				Progress: p.Progress(),
				Finished: p.IsFinished(),
			}
		}),
		Pieces: lo.Map(m.board.Pieces(), func(pc *model.Piece, _ int) PieceState {
			return PieceState{
				ID:    pc.ID(),
				Owner: pc.Owner(),
				Slot:  pc.Slot(),
				Zone:  pc.Zone(),
				Index: pc.Index(),
				Cell:  pc.Cell(),
			}
		}),
		LastStep: m.board.LastStep().Clone(),
	}
}

// PiecesOf returns the pieces of one player.
func (s *Snapshot) PiecesOf(owner int32) []PieceState {
	return lo.Filter(s.Pieces, func(p PieceState, _ int) bool { return p.Owner == owner })
}
