package compare

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	core "ddrconf/core/compare"
	"ddrconf/core/regtab"
	"ddrconf/core/timing"
)

// Service runs full-configuration comparisons.
type Service struct {
	opts   core.Options
	logger *zap.Logger
}

// NewService creates a comparison service with the given engine options.
func NewService(opts core.Options, logger *zap.Logger) *Service {
	return &Service{opts: opts, logger: logger}
}

// Compare builds the full report for the two timing documents. The six
// top-level sections run concurrently; a panic inside one section is
// contained and reported on that section alone.
func (s *Service) Compare(left, right *timing.Timing) *Report {
	rep := &Report{
		RunID:       uuid.NewString(),
		Sections:    make([]Section, len(SectionNames)),
		LeftTotal:   left.TotalSize(),
		RightTotal:  right.TotalSize(),
		GeneratedAt: time.Now().UTC(),
	}

	builders := []func() Section{
		func() Section { return s.tableSection(SectionDdrcCfg, left.DdrcCfg, right.DdrcCfg) },
		func() Section { return s.fspCfgSection(left, right) },
		func() Section { return s.tableSection(SectionDdrphyCfg, left.DdrphyCfg, right.DdrphyCfg) },
		func() Section { return s.fspMsgSection(left, right) },
		func() Section { return s.tableSection(SectionTrainedCsr, left.TrainedCsr, right.TrainedCsr) },
		func() Section { return s.tableSection(SectionPie, left.Pie, right.Pie) },
	}

	var wg sync.WaitGroup
	for i, build := range builders {
		wg.Add(1)
		go func(i int, build func() Section) {
			defer wg.Done()
			rep.Sections[i] = s.guarded(SectionNames[i], build)
		}(i, build)
	}
	wg.Wait()

	s.logger.Info("comparison complete",
		zap.String("run_id", rep.RunID),
		zap.Int("diff_count", rep.DiffCount()))
	return rep
}

// guarded runs one section builder with panic containment.
func (s *Service) guarded(name string, build func() Section) (sec Section) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("section panicked",
				zap.String("section", name),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
			sec = Section{Name: name, Err: fmt.Sprintf("internal failure: %v", r)}
		}
	}()
	return build()
}

func (s *Service) tableSection(name string, left, right regtab.Table) Section {
	out := core.Compare(left.Entries, right.Entries, s.opts)
	return Section{
		Name: name,
		Tables: []TableResult{
			{Name: name, Left: left, Right: right, Outcome: &out},
		},
	}
}

func (s *Service) fspCfgSection(left, right *timing.Timing) Section {
	sec := Section{
		Name:        SectionFspCfg,
		Cardinality: &Cardinality{Left: len(left.FspCfg), Right: len(right.FspCfg)},
	}
	if sec.Cardinality.Mismatch() {
		return sec
	}
	for i := range left.FspCfg {
		l, r := left.FspCfg[i], right.FspCfg[i]
		out := core.Compare(l.DdrcCfg.Entries, r.DdrcCfg.Entries, s.opts)
		sec.Tables = append(sec.Tables, TableResult{
			Name:    fmt.Sprintf("fsp_cfg[%d].ddrc_cfg", i),
			Left:    l.DdrcCfg,
			Right:   r.DdrcCfg,
			Outcome: &out,
		})
		if l.Bypass != r.Bypass {
			sec.Scalars = append(sec.Scalars, ScalarDiff{
				Field: fmt.Sprintf("fsp_cfg[%d].bypass", i),
				Left:  int64(l.Bypass),
				Right: int64(r.Bypass),
			})
		}
	}
	return sec
}

func (s *Service) fspMsgSection(left, right *timing.Timing) Section {
	sec := Section{
		Name:        SectionFspMsg,
		Cardinality: &Cardinality{Left: len(left.FspMsg), Right: len(right.FspMsg)},
	}
	if sec.Cardinality.Mismatch() {
		return sec
	}
	for i := range left.FspMsg {
		l, r := left.FspMsg[i], right.FspMsg[i]
		if l.Drate != r.Drate {
			sec.Scalars = append(sec.Scalars, ScalarDiff{
				Field: fmt.Sprintf("fsp_msg[%d].drate", i),
				Left:  int64(l.Drate),
				Right: int64(r.Drate),
			})
		}
		if l.FwType != r.FwType {
			sec.Scalars = append(sec.Scalars, ScalarDiff{
				Field: fmt.Sprintf("fsp_msg[%d].fw_type", i),
				Left:  int64(l.FwType),
				Right: int64(r.FwType),
			})
		}
		pairs := []struct {
			suffix      string
			left, right regtab.Table
		}{
			{"fsp_phy_cfg", l.PhyCfg, r.PhyCfg},
			{"fsp_phy_msgh_cfg", l.MsghCfg, r.MsghCfg},
			{"fsp_phy_pie_cfg", l.PieCfg, r.PieCfg},
		}
		for _, p := range pairs {
			out := core.Compare(p.left.Entries, p.right.Entries, s.opts)
			sec.Tables = append(sec.Tables, TableResult{
				Name:    fmt.Sprintf("fsp_msg[%d].%s", i, p.suffix),
				Left:    p.left,
				Right:   p.right,
				Outcome: &out,
			})
		}
	}
	return sec
}
