package usecase

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
	"unicode"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ErrPayerAccountNotConfigured = errors.New("payout payer account not configured")

const (
	dloTransactionCode = "50"
	dloNameWidth       = 20
	dloRefWidth        = 12
	hashTotalModulo    = 100000000000
)

type PayoutSettings struct {
	PayerAccount string
	PayerName    string
}

// IPayoutUseCase builds bank batch files paying invoiced suppliers.
type IPayoutUseCase interface {
	ExportDLO(ctx context.Context, date time.Time, markPaid bool) (entities.PayoutBatch, error)
}

type PayoutUseCase struct {
	supplierJobs interfaces.ISupplierJobRepository
	settings     PayoutSettings
	now          func() time.Time
}

var _ IPayoutUseCase = (*PayoutUseCase)(nil)

func NewPayoutUseCase(supplierJobs interfaces.ISupplierJobRepository, settings PayoutSettings) *PayoutUseCase {
	return &PayoutUseCase{supplierJobs: supplierJobs, settings: settings, now: utcNow}
}

// ExportDLO writes one line per invoiced supplier job:
//
//	1,<payer account>,<yymmdd>,<payer name>
//	2,<payee account>,50,<cents>,<payee name>,<ref>,<booking id>,<invoice number>
//	3,<total cents>,<count>,<hash total>
//
// The hash total is the sum of every payee's branch+account number, keeping
// the last 11 digits. Jobs with an unusable bank account are skipped and
// listed in the batch.
func (u *PayoutUseCase) ExportDLO(ctx context.Context, date time.Time, markPaid bool) (entities.PayoutBatch, error) {
	payer, err := entities.ParseBankAccount(u.settings.PayerAccount)
	if err != nil {
		return entities.PayoutBatch{}, ErrPayerAccountNotConfigured
	}
	if date.IsZero() {
		date = u.now()
	}

	refs, err := u.supplierJobs.ListRefs(ctx, 0, -1)
	if err != nil {
		return entities.PayoutBatch{}, err
	}

	batch := entities.PayoutBatch{
		Date:     date,
		FileName: "payout-" + date.Format("20060102") + ".dlo",
		Included: []string{},
	}
	var (
		lines   []string
		hashSum int64
		payable []entities.SupplierJobRecord
		seen    = make(map[string]bool, len(refs))
	)
	lines = append(lines, strings.Join([]string{"1", payer.Digits(), date.Format("060102"), dloField(u.settings.PayerName, dloNameWidth)}, ","))

	for _, ref := range refs {
		if seen[ref] {
			continue
		}
		seen[ref] = true

		rec, err := u.supplierJobs.Get(ctx, ref)
		if err != nil {
			return entities.PayoutBatch{}, err
		}
		if rec.Status != entities.SupplierJobStatusInvoiced || rec.Invoice == nil {
			continue
		}
		if rec.Invoice.Amount <= 0 {
			batch.Skipped = append(batch.Skipped, entities.PayoutSkip{Ref: rec.Ref, Reason: "invoice amount is not positive"})
			continue
		}
		account, err := entities.ParseBankAccount(rec.Invoice.BankAccount)
		if err != nil {
			batch.Skipped = append(batch.Skipped, entities.PayoutSkip{Ref: rec.Ref, Reason: "invalid bank account " + strconv.Quote(rec.Invoice.BankAccount)})
			continue
		}

		lines = append(lines, strings.Join([]string{
			"2",
			account.Digits(),
			dloTransactionCode,
			strconv.FormatInt(rec.Invoice.Amount, 10),
			dloField(rec.SupplierName, dloNameWidth),
			dloField(rec.Ref, dloRefWidth),
			dloField(rec.BookingID, dloRefWidth),
			dloField(rec.Invoice.Number, dloRefWidth),
		}, ","))
		batch.Count++
		batch.TotalCents += rec.Invoice.Amount
		hashSum = (hashSum + account.HashComponent()) % hashTotalModulo
		batch.Included = append(batch.Included, rec.Ref)
		payable = append(payable, rec)
	}

	batch.HashTotal = fmt.Sprintf("%011d", hashSum)
	lines = append(lines, strings.Join([]string{"3", strconv.FormatInt(batch.TotalCents, 10), strconv.Itoa(batch.Count), batch.HashTotal}, ","))
	batch.Content = strings.Join(lines, "\r\n") + "\r\n"

	if markPaid {
		now := u.now()
		for _, rec := range payable {
			rec.Status = entities.SupplierJobStatusPaid
			rec.PaidAt = &now
			rec.UpdatedAt = now
			if _, err := u.supplierJobs.Save(ctx, rec); err != nil {
				return entities.PayoutBatch{}, errors.Wrapf(err, "mark supplier job %s paid", rec.Ref)
			}
		}
		batch.MarkedPaid = true
	}

	log.Printf("[payout][usecase] dlo exported date=%s count=%d total_cents=%d skipped=%d mark_paid=%t",
		date.Format("2006-01-02"), batch.Count, batch.TotalCents, len(batch.Skipped), markPaid)
	return batch, nil
}

// dloField folds s to printable ASCII, strips the delimiter and truncates
// to width. Macrons and other accents lose their marks: "Whangārei" becomes
// "Whangarei".
func dloField(s string, width int) string {
	fold := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}
	s = strings.Map(func(r rune) rune {
		switch {
		case r == ',' || r == '\r' || r == '\n' || r == '\t':
			return ' '
		case r < 0x20 || r > 0x7e:
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if len(s) > width {
		s = s[:width]
	}
	return s
}
