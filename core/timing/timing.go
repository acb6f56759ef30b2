package timing

import "ddrconf/core/regtab"

// FspPoint is one frequency set point: a controller register table plus
// the PLL bypass flag for that operating point.
type FspPoint struct {
	DdrcCfg regtab.Table `json:"ddrc_cfg"`
	Bypass  uint32       `json:"bypass"`
}

// FspMsg is one PHY training message block for a frequency set point.
type FspMsg struct {
	// Drate is the data rate in MT/s.
	Drate uint32 `json:"drate"`
	// FwType selects the training firmware (1D/2D).
	FwType int `json:"fw_type"`

	PhyCfg  regtab.Table `json:"fsp_phy_cfg"`
	MsghCfg regtab.Table `json:"fsp_phy_msgh_cfg"`
	PieCfg  regtab.Table `json:"fsp_phy_pie_cfg"`
}

// Timing is one complete DRAM timing configuration as serialized by the
// firmware dump tool.
type Timing struct {
	DdrcCfg    regtab.Table `json:"ddrc_cfg"`
	FspCfg     []FspPoint   `json:"fsp_cfg"`
	DdrphyCfg  regtab.Table `json:"ddrphy_cfg"`
	FspMsg     []FspMsg     `json:"fsp_msg"`
	TrainedCsr regtab.Table `json:"ddrphy_trained_csr"`
	Pie        regtab.Table `json:"ddrphy_pie"`
}

// Tables returns every register table of the configuration in dump
// order. The returned pointers alias the Timing's own tables.
func (t *Timing) Tables() []*regtab.Table {
	out := []*regtab.Table{&t.DdrcCfg}
	for i := range t.FspCfg {
		out = append(out, &t.FspCfg[i].DdrcCfg)
	}
	out = append(out, &t.DdrphyCfg)
	for i := range t.FspMsg {
		out = append(out, &t.FspMsg[i].PhyCfg, &t.FspMsg[i].MsghCfg, &t.FspMsg[i].PieCfg)
	}
	return append(out, &t.TrainedCsr, &t.Pie)
}

// TotalSize returns the serialized size of all tables in bytes.
func (t *Timing) TotalSize() int {
	total := 0
	for _, tab := range t.Tables() {
		total += tab.Size()
	}
	return total
}
