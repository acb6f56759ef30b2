package timing

import (
	"fmt"
	"io"
	"strings"

	"ddrconf/core/regtab"
)

const bannerRule = "═══════════════════════════════════════════════════════════════════════════"

// WriteDump re-emits a timing configuration in the dump tool's text
// format with freshly computed entry counts, sizes, and checksums. The
// output round-trips through Parse without warnings.
func WriteDump(w io.Writer, t *Timing) error {
	d := &dumper{w: w}

	d.banner("DDR Configuration Dump Tool")

	d.table(t.DdrcCfg)
	for i, fsp := range t.FspCfg {
		d.table(fsp.DdrcCfg)
		d.printf("\nfsp_cfg[%d].bypass=%d\n", i, fsp.Bypass)
	}
	d.table(t.DdrphyCfg)
	for i, msg := range t.FspMsg {
		d.printf("\nfsp_msg[%d].drate=%d\n", i, msg.Drate)
		d.printf("fsp_msg[%d].fw_type=%d\n", i, msg.FwType)
		d.table(msg.PhyCfg)
		d.table(msg.MsghCfg)
		d.table(msg.PieCfg)
	}
	d.table(t.TrainedCsr)
	d.table(t.Pie)

	d.printf("\n")
	d.banner("DUMP COMPLETE")
	return d.err
}

type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *dumper) banner(title string) {
	pad := (len(bannerRule)/len("═") - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	d.printf("%s\n%s%s\n%s\n", bannerRule, strings.Repeat(" ", pad), title, bannerRule)
}

func (d *dumper) table(tab regtab.Table) {
	if tab.Len() == 0 {
		return
	}
	d.printf("\n%s\n", tab.Name)
	d.printf("entries=%d, size=%d bytes\n", tab.Len(), tab.Size())
	d.printf("crc32=0x%08x\n", tab.Checksum())
	for i, e := range tab.Entries {
		d.printf("[%4d]={%s, %s}\n", i, tab.Kind.FormatAddr(e.Addr), tab.Kind.FormatVal(e.Val))
	}
}
