package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/posting"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// ImportRecord is one transaction of a batch import file.
type ImportRecord struct {
	UserID             int64    `yaml:"user_id"`
	Type               string   `yaml:"type"`
	Date               string   `yaml:"date"`
	Description        string   `yaml:"description"`
	ExternalID         string   `yaml:"external_id"`
	AccountIDPrimary   int64    `yaml:"account_id_primary"`
	AccountIDSecondary int64    `yaml:"account_id_secondary"`
	AmountOCPrimary    float64  `yaml:"amount_oc_primary"`
	CurrencyPrimary    string   `yaml:"currency_primary"`
	AmountOCSecondary  *float64 `yaml:"amount_oc_secondary"`
	CurrencySecondary  string   `yaml:"currency_secondary"`
}

type importFile struct {
	Transactions []ImportRecord `yaml:"transactions"`
}

// ParseImport decodes a YAML document with a top-level "transactions" list.
func ParseImport(r io.Reader) ([]ImportRecord, error) {
	var file importFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse import file: %w", err)
	}
	return file.Transactions, nil
}

// Request converts the record; a record with any secondary field is a forex request.
func (r ImportRecord) Request(defaultUserID int64) (posting.Request, error) {
	h := posting.Header{
		UserID:             r.UserID,
		Type:               model.TxType(strings.ToLower(strings.TrimSpace(r.Type))),
		Description:        r.Description,
		ExternalID:         r.ExternalID,
		AccountIDPrimary:   r.AccountIDPrimary,
		AccountIDSecondary: r.AccountIDSecondary,
		AmountOCPrimary:    r.AmountOCPrimary,
		CurrencyPrimary:    r.CurrencyPrimary,
	}
	if h.UserID == 0 {
		h.UserID = defaultUserID
	}
	if r.Date != "" {
		date, err := time.Parse(constants.DateFormat, r.Date)
		if err != nil {
			return nil, posting.Wrap(posting.KindInvalidHeader, err, "Invalid date '%s' (want YYYY-MM-DD)", r.Date)
		}
		h.Date = date
	}

	if r.AmountOCSecondary == nil && r.CurrencySecondary == "" {
		return &posting.SimpleRequest{Header: h}, nil
	}

	req := &posting.ForexRequest{Header: h, CurrencySecondary: r.CurrencySecondary}
	if r.AmountOCSecondary != nil {
		req.AmountOCSecondary = *r.AmountOCSecondary
	}
	return req, nil
}

// ImportResult lists what a batch import created.
type ImportResult struct {
	Created []*model.Transaction
	Failed  int
}

// Import creates each record in its own unit of work. A failing record does not
// stop the batch; all failures are returned together.
func (ts *TransactionService) Import(ctx context.Context, records []ImportRecord, defaultUserID int64) (ImportResult, error) {
	var result ImportResult
	var errs *multierror.Error

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			errs = multierror.Append(errs, err)
			break
		}

		req, err := rec.Request(defaultUserID)
		if err == nil {
			var tx *model.Transaction
			tx, err = ts.CreateTransaction(ctx, req)
			if err == nil {
				result.Created = append(result.Created, tx)
				continue
			}
		}

		result.Failed++
		errs = multierror.Append(errs, fmt.Errorf("record %d: %w", i+1, err))
	}

	ts.log.Info().Int("created", len(result.Created)).Int("failed", result.Failed).Msg("import finished")
	return result, errs.ErrorOrNil()
}
