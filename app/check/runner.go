package check

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/volgavod/slist/internal/mlog"
	"github.com/volgavod/slist/slist"
)

// runner drives a List and a plain-slice reference model through the
// same operation sequence and dies on the first divergence.
type runner struct {
	logger *zerolog.Logger
	rng    *rand.Rand
	cfg    *Config

	list  *slist.List[int64]
	model []int64
}

func newRunner(cfg *Config, logger *zerolog.Logger) *runner {
	if logger == nil {
		logger = mlog.Nop()
	}
	cfg.setDefault()
	return &runner{
		logger: logger,
		rng:    rand.New(rand.NewPCG(cfg.Seed, 0)),
		cfg:    cfg,
		list:   slist.From(cfg.Initial...),
		model:  slices.Clone(cfg.Initial),
	}
}

func run(cfg *Config) {
	logger := mlog.L()
	rn := newRunner(cfg, logger)
	logger.Info().Uint64("seed", cfg.Seed).Int("ops", cfg.Ops).Msg("check started")
	start := time.Now()
	for op := 1; op <= cfg.Ops; op++ {
		rn.step(op)
		rn.verify(op)
		if op%cfg.ReportEvery == 0 {
			logger.Info().Int("op", op).Int("len", rn.list.Len()).Msg("checking")
		}
	}
	logger.Info().Int("ops", cfg.Ops).Dur("elapsed", time.Since(start)).Msg("check passed, no divergence")
}

func (rn *runner) val() int64 {
	return rn.rng.Int64N(rn.cfg.MaxValue)
}

func (rn *runner) step(op int) {
	if rn.list.Len() >= rn.cfg.MaxLen {
		rn.list.Clear()
		rn.model = rn.model[:0]
	}

	switch p := rn.rng.IntN(100); {
	case p < 12:
		v := rn.val()
		rn.list.PushFront(v)
		rn.model = slices.Insert(rn.model, 0, v)
	case p < 24:
		v := rn.val()
		rn.list.PushBack(v)
		rn.model = append(rn.model, v)
	case p < 40:
		v := rn.val()
		i := rn.rng.IntN(len(rn.model) + 1)
		if err := rn.list.Insert(i, v); err != nil {
			rn.fail(op, "insert", err)
		}
		rn.model = slices.Insert(rn.model, i, v)
	case p < 52:
		vs := make([]int64, 1+rn.rng.IntN(4))
		for j := range vs {
			vs[j] = rn.val()
		}
		i := rn.rng.IntN(len(rn.model) + 1)
		if err := rn.list.InsertSlice(i, vs); err != nil {
			rn.fail(op, "insert slice", err)
		}
		rn.model = slices.Insert(rn.model, i, vs...)
	case p < 68:
		v := rn.val()
		got := rn.list.Remove(v)
		i := slices.Index(rn.model, v)
		if got != (i >= 0) {
			rn.diverge(op, fmt.Sprintf("remove %d returned %v, model idx %d", v, got, i))
		}
		if i >= 0 {
			rn.model = slices.Delete(rn.model, i, i+1)
		}
	case p < 80:
		// i may be == len, the out of range path is part of the scenario
		i := rn.rng.IntN(len(rn.model) + 1)
		err := rn.list.RemoveAt(i)
		if i < len(rn.model) {
			if err != nil {
				rn.fail(op, "remove at", err)
			}
			rn.model = slices.Delete(rn.model, i, i+1)
		} else if !errors.Is(err, slist.ErrOutOfRange) {
			rn.diverge(op, fmt.Sprintf("remove at %d, want out of range, got %v", i, err))
		}
	case p < 88:
		if len(rn.model) == 0 {
			return
		}
		i := rn.rng.IntN(len(rn.model))
		v := rn.val()
		if err := rn.list.Set(i, v); err != nil {
			rn.fail(op, "set", err)
		}
		rn.model[i] = v
	case p < 92:
		v := rn.val()
		if rn.list.Contains(v) != slices.Contains(rn.model, v) {
			rn.diverge(op, fmt.Sprintf("contains %d diverged", v))
		}
	case p < 96:
		c := rn.list.Clone()
		if !slices.Equal(collect(c), rn.model) {
			rn.diverge(op, "clone diverged from model")
		}
		c.Close()
	default:
		neg := slist.Transform(rn.list, func(v int64) int64 { return -v })
		got := collect(neg)
		for j, v := range rn.model {
			if got[j] != -v {
				rn.diverge(op, fmt.Sprintf("transform diverged at idx %d", j))
			}
		}
	}
}

// verify rebuilds both renderings after every op. CopyTo and the
// cursor alternate so both read paths stay covered.
func (rn *runner) verify(op int) {
	if rn.list.Len() != len(rn.model) {
		rn.diverge(op, fmt.Sprintf("len %d, model %d", rn.list.Len(), len(rn.model)))
	}

	var got []int64
	if op%2 == 0 {
		got = make([]int64, rn.list.Len())
		if err := rn.list.CopyTo(got, 0); err != nil {
			rn.fail(op, "copy to", err)
		}
	} else {
		got = collect(rn.list)
	}
	if !slices.Equal(got, rn.model) {
		rn.diverge(op, fmt.Sprintf("list %v, model %v", got, rn.model))
	}
}

func collect(l *slist.List[int64]) []int64 {
	out := make([]int64, 0, l.Len())
	c := l.Cursor()
	for c.Next() {
		out = append(out, c.Value())
	}
	return out
}

func (rn *runner) fail(op int, what string, err error) {
	rn.logger.Fatal().Err(err).Int("op", op).Uint64("seed", rn.cfg.Seed).Msgf("unexpected error, %s", what)
}

func (rn *runner) diverge(op int, msg string) {
	rn.logger.Fatal().Int("op", op).Uint64("seed", rn.cfg.Seed).Str("detail", msg).Msg("divergence")
}
