package rapidmath

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/musclebrain/internal/core"
)

// Op is an arithmetic operator.
type Op rune

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '×'
)

// Level is the difficulty derived from the number of correct answers.
type Level struct {
	Level      int
	MaxNumber  int
	Ops        []Op
	QuestionMs int
}

// LevelFor derives the difficulty after correct answers.
func LevelFor(correct int) Level {
	level := correct/5 + 1
	ops := []Op{OpAdd, OpSub}
	if level >= 3 {
		ops = append(ops, OpMul)
	}
	return Level{
		Level:      level,
		MaxNumber:  core.Min(10+level*3, 50),
		Ops:        ops,
		QuestionMs: core.Max(5000-level*300, 2000),
	}
}

// Question is one arithmetic problem.
type Question struct {
	A, B   int
	Op     Op
	Answer int
}

func (q Question) String() string {
	return fmt.Sprintf("%d %c %d", q.A, q.Op, q.B)
}

// Generate draws a question for lvl. Multiplication keeps to single-digit
// operands from 2 to 9 and subtraction never goes negative.
func Generate(rng *rand.Rand, lvl Level) Question {
	op := lvl.Ops[rng.Intn(len(lvl.Ops))]
	a := rng.Intn(lvl.MaxNumber) + 1
	b := rng.Intn(lvl.MaxNumber) + 1
	if op == OpMul {
		a = core.IntRange(rng, 2, 10)
		b = core.IntRange(rng, 2, 10)
	}
	if op == OpSub && a < b {
		a, b = b, a
	}

	q := Question{A: a, B: b, Op: op}
	switch op {
	case OpAdd:
		q.Answer = a + b
	case OpSub:
		q.Answer = a - b
	case OpMul:
		q.Answer = a * b
	}
	return q
}
