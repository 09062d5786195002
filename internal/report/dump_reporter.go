package report

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/carson-networks/ledger-sim/internal/ledger"
)

// DumpReporter renders deep value dumps to a writer. Meant for
// debugging runs, not machine consumption.
type DumpReporter struct {
	Out io.Writer

	config *spew.ConfigState
}

// NewDumpReporter creates a DumpReporter writing to out.
func NewDumpReporter(out io.Writer) *DumpReporter {
	return &DumpReporter{
		Out: out,
		config: &spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		},
	}
}

// AccountDetails dumps the account summary.
func (r *DumpReporter) AccountDetails(account *ledger.Account) {
	fmt.Fprintf(r.Out, "account %d (%s) balance=%s\n",
		account.Number(), account.HolderName(), account.Balance().String())
}

// TransactionHistory dumps every recorded transaction.
func (r *DumpReporter) TransactionHistory(account *ledger.Account) {
	r.config.Fdump(r.Out, account.Transactions())
}
