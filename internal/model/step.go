package model

// Step is the record of one move.
type Step struct {
	ID     int32         `json:"id"`     // 棋子ID
	Owner  int32         `json:"owner"`  // 持方
	Roll   int32         `json:"roll"`   // 点数
	From   Position      `json:"from"`   // 起始位置
	To     Position      `json:"to"`     // 目标位置
	Killed []*KilledInfo `json:"killed"` // 击杀信息
}

type KilledInfo struct {
	ID    int32    `json:"id"`
	Owner int32    `json:"owner"`
	From  Position `json:"from"`
	Cell  int32    `json:"cell"`
}

// Moved reports whether the step changed the board.
func (s *Step) Moved() bool {
	return s != nil && s.From != s.To
}

// KilledIDs returns the ids of the captured pieces.
func (s *Step) KilledIDs() []int32 {
	if s == nil {
		return nil
	}
	ids := make([]int32, 0, len(s.Killed))
	for _, k := range s.Killed {
		ids = append(ids, k.ID)
	}
	return ids
}

func (s *Step) Clone() *Step {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Killed = make([]*KilledInfo, len(s.Killed))
	for i, k := range s.Killed {
		kk := *k
		cp.Killed[i] = &kk
	}
	return &cp
}
