package verify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Status of one check result.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusError   Status = "error"
	StatusSkipped Status = "skipped"
)

// CheckResult is the outcome of one battery check.
type CheckResult struct {
	Name   string `json:"name"`
	Group  string `json:"group"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Report is the outcome of a full verification run.
type Report struct {
	ID        string        `json:"id"`
	Input     string        `json:"input"`
	Records   int           `json:"records"`
	Checks    []CheckResult `json:"checks"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Errored   int           `json:"errored"`
	Skipped   int           `json:"skipped"`
	Halted    bool          `json:"halted"`
	ElapsedMS int64         `json:"elapsed_ms"`
}

// OK reports whether the battery completed without the gate tripping.
// Individual non-gate failures are reported in the result list but do not
// make the run itself fail.
func (r Report) OK() bool {
	return !r.Halted
}

// Verifier runs the check battery against a loaded store.
type Verifier struct {
	store  *Store
	checks []Check
	logger *slog.Logger
}

// NewVerifier wires the standard battery to a store.
func NewVerifier(store *Store, logger *slog.Logger) *Verifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Verifier{store: store, checks: Battery(), logger: logger}
}

// Run executes the battery in order. When a gate check errors or fails, the
// remaining checks are marked skipped and the report is flagged halted.
func (v *Verifier) Run(ctx context.Context, input string, records int) Report {
	start := time.Now()
	report := Report{
		ID:      uuid.New().String(),
		Input:   input,
		Records: records,
		Checks:  make([]CheckResult, 0, len(v.checks)),
	}

	halted := false
	for _, check := range v.checks {
		if halted {
			report.Checks = append(report.Checks, CheckResult{
				Name:   check.Name,
				Group:  check.Group,
				Status: StatusSkipped,
			})
			report.Skipped++
			continue
		}

		result := v.runCheck(ctx, check)
		report.Checks = append(report.Checks, result)

		switch result.Status {
		case StatusPass:
			report.Passed++
		case StatusFail:
			report.Failed++
		case StatusError:
			report.Errored++
		}

		if check.Gate && result.Status != StatusPass {
			halted = true
			v.logger.Warn("gate check did not pass, halting battery",
				"check", check.Name, "status", result.Status)
		}
	}

	report.Halted = halted
	report.ElapsedMS = time.Since(start).Milliseconds()
	return report
}

func (v *Verifier) runCheck(ctx context.Context, check Check) CheckResult {
	result := CheckResult{Name: check.Name, Group: check.Group}

	detail, ok, err := check.Run(ctx, v.store.DB())
	switch {
	case err != nil:
		result.Status = StatusError
		result.Error = err.Error()
		v.logger.Error("check errored", "check", check.Name, "error", err)
	case !ok:
		result.Status = StatusFail
		result.Detail = detail
		v.logger.Warn("check failed", "check", check.Name, "detail", detail)
	default:
		result.Status = StatusPass
		result.Detail = detail
		v.logger.Debug("check passed", "check", check.Name, "detail", detail)
	}
	return result
}
