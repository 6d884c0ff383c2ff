package match

import (
	"math/rand"

	"github.com/yola1107/ludo/internal/model"
	"github.com/yola1107/ludo/library/ext"
)

// Dice produces roll values in 1..6.
type Dice interface {
	Roll() int32
}

// RandomDice is a fair six-sided die.
type RandomDice struct {
	r *rand.Rand
}

// NewRandomDice returns a fair die; seed 0 is time based.
func NewRandomDice(seed int64) *RandomDice {
	return &RandomDice{r: ext.NewRand(seed)}
}

func (d *RandomDice) Roll() int32 {
	return ext.RandInt[int32](d.r, model.MinRoll, model.MaxRoll+1)
}

// ScriptedDice replays a fixed sequence, then cycles it.
type ScriptedDice struct {
	values []int32
	next   int
}

func NewScriptedDice(values ...int32) *ScriptedDice {
	return &ScriptedDice{values: values}
}

func (d *ScriptedDice) Roll() int32 {
	if len(d.values) == 0 {
		return model.MinRoll
	}
	v := d.values[d.next%len(d.values)]
	d.next++
	return v
}

// Push appends values to the script.
func (d *ScriptedDice) Push(values ...int32) {
	d.values = append(d.values, values...)
}
