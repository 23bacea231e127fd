package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/finpulse/insights/pkg/db"
)

// StateReport is the five-section deep dive on one state. Every section is
// always present; a state with no rows in a fact table gets an empty slice,
// not a missing key.
type StateReport struct {
	State        string                    `json:"state"`
	Transactions []db.ReportTransactionRow `json:"transactions"`
	Users        []db.ReportBrandRow       `json:"users"`
	Districts    []db.ReportDistrictRow    `json:"districts"`
	Insurance    []db.ReportInsuranceRow   `json:"insurance"`
	TopPincodes  []db.ReportPincodeRow     `json:"top_pincodes"`
}

// StateReport runs the five independent section queries in parallel and
// assembles the result. The first section error fails the whole report.
func (e *Engine) StateReport(ctx context.Context, state string) (*StateReport, error) {
	report := &StateReport{State: state}

	var (
		transactionsErr error
		usersErr        error
		districtsErr    error
		insuranceErr    error
		pincodesErr     error
	)

	group := e.pool.NewGroupContext(ctx)
	groupCtx := group.Context()

	group.Submit(func() {
		if groupCtx.Err() != nil {
			return
		}
		report.Transactions, transactionsErr = e.store.ReportTransactions(groupCtx, state)
	})
	group.Submit(func() {
		if groupCtx.Err() != nil {
			return
		}
		report.Users, usersErr = e.store.ReportBrands(groupCtx, state)
	})
	group.Submit(func() {
		if groupCtx.Err() != nil {
			return
		}
		report.Districts, districtsErr = e.store.ReportDistricts(groupCtx, state)
	})
	group.Submit(func() {
		if groupCtx.Err() != nil {
			return
		}
		report.Insurance, insuranceErr = e.store.ReportInsurance(groupCtx, state)
	})
	group.Submit(func() {
		if groupCtx.Err() != nil {
			return
		}
		report.TopPincodes, pincodesErr = e.store.ReportTopPincodes(groupCtx, state)
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, pond.ErrGroupStopped) {
		e.logger.Warn("state report fan-out error", zap.String("state", state), zap.Error(err))
	}

	for _, err := range []error{transactionsErr, usersErr, districtsErr, insuranceErr, pincodesErr} {
		if err != nil {
			return nil, fmt.Errorf("state report %s: %w", state, err)
		}
	}

	if report.Transactions == nil {
		report.Transactions = []db.ReportTransactionRow{}
	}
	if report.Users == nil {
		report.Users = []db.ReportBrandRow{}
	}
	if report.Districts == nil {
		report.Districts = []db.ReportDistrictRow{}
	}
	if report.Insurance == nil {
		report.Insurance = []db.ReportInsuranceRow{}
	}
	if report.TopPincodes == nil {
		report.TopPincodes = []db.ReportPincodeRow{}
	}

	return report, nil
}
