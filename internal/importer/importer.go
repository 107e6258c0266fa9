// Package importer implements the lead bulk-import pipeline: per row,
// validation gate, duplicate filter, normalization, assignee resolution
// and record building. Duplicates are skipped and counted, unparseable
// date fields are dropped from the row, and an unresolvable assignee
// aborts the run unless ContinueOnError downgrades it to a row failure.
package importer

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"leadcrm/internal/domain/lead"
	"leadcrm/internal/domain/user"
)

// LeadStore is the existing-records store the duplicate filter reads and
// the record builder writes into.
type LeadStore interface {
	ExistsByPhoneOrEmail(ctx context.Context, phone, email string) (bool, error)
	Create(ctx context.Context, l *lead.Lead) error
}

// UserDirectory resolves an assignee name to an active account.
type UserDirectory interface {
	FindActiveByName(ctx context.Context, name string) (*user.User, error)
}

// Options tune one importer instance.
type Options struct {
	// Now supplies the run's import timestamp. Defaults to time.Now.
	Now func() time.Time

	// PlaceholderEmailDomain is appended to the phone when a row has no
	// email. Defaults to "placeholder.com".
	PlaceholderEmailDomain string

	// ContinueOnError records an unresolvable assignee as a row failure
	// instead of aborting the run.
	ContinueOnError bool

	// MaxRows caps the rows accepted by RunReader. Defaults to 10000.
	MaxRows int
}

// Importer runs import batches against a lead store and user directory.
type Importer struct {
	leads LeadStore
	users UserDirectory
	log   *zap.Logger
	opts  Options
}

// New creates an importer
func New(leads LeadStore, users UserDirectory, log *zap.Logger, opts Options) *Importer {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.PlaceholderEmailDomain == "" {
		opts.PlaceholderEmailDomain = "placeholder.com"
	}
	if opts.MaxRows == 0 {
		opts.MaxRows = 10000
	}
	return &Importer{leads: leads, users: users, log: log, opts: opts}
}

// RunReader parses a CSV stream and imports its rows.
func (imp *Importer) RunReader(ctx context.Context, r io.Reader) (*Report, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) > imp.opts.MaxRows {
		return nil, ErrTooManyRows
	}
	return imp.Run(ctx, rows)
}

// Run processes rows in sheet order. Row numbers in logs and the report
// count the header as row 1, so the first data row is row 2.
func (imp *Importer) Run(ctx context.Context, rows []Row) (*Report, error) {
	report := &Report{RunID: uuid.NewString(), Total: len(rows)}
	log := imp.log.With(zap.String("run_id", report.RunID))

	log.Info("import run started", zap.Int("rows", len(rows)))
	log.Info("validation rules",
		zap.String("lead_source", lead.SourceOneOf),
		zap.String("lead_status", lead.StatusOneOf),
		zap.String("city", lead.CityOneOf),
		zap.String("lead_active_status", "open closed"),
		zap.String("followup_period", lead.PeriodOneOf),
	)

	now := imp.opts.Now()

	for i, row := range rows {
		rowNum := i + 2

		// All violations for a row collapse into one failure entry, so
		// every row lands in exactly one report bucket.
		if msgs := validateRow(rowNum, row); len(msgs) > 0 {
			for _, msg := range msgs {
				log.Info("row rejected by validation", zap.Int("row", rowNum), zap.String("message", msg))
			}
			report.fail(rowNum, "", strings.Join(msgs, "; "))
			continue
		}

		phone := coerceNumeric(row["phone"])
		email := strings.TrimSpace(row["email"])
		if email == "" {
			email = lead.PlaceholderEmail(phone, imp.opts.PlaceholderEmailDomain)
		}

		dup, err := imp.leads.ExistsByPhoneOrEmail(ctx, phone, email)
		if err != nil {
			return report, err
		}
		if dup {
			report.Skipped++
			log.Info("duplicate row skipped",
				zap.Int("row", rowNum),
				zap.String("phone", phone),
				zap.String("email", email),
			)
			continue
		}

		norm := imp.normalizeRow(log, rowNum, row)

		assigneeName := strings.TrimSpace(row["assigned_user"])
		assignee, err := imp.users.FindActiveByName(ctx, assigneeName)
		if err != nil {
			return report, err
		}
		if assignee == nil {
			aerr := &AssigneeNotFoundError{Row: rowNum, Name: assigneeName}
			log.Error("assignee not found",
				zap.Int("row", rowNum),
				zap.String("assigned_user", assigneeName),
			)
			if imp.opts.ContinueOnError {
				report.fail(rowNum, "assigned_user", aerr.Error())
				continue
			}
			return report, aerr
		}

		l := buildLead(row, norm, phone, email, assignee.ID, now)
		if err := imp.leads.Create(ctx, l); err != nil {
			return report, err
		}
		report.Accepted++

		log.Info("row imported",
			zap.Int("row", rowNum),
			zap.String("phone", phone),
			zap.Int64("assigned_user_id", assignee.ID),
		)
	}

	log.Info("import run finished",
		zap.Int("accepted", report.Accepted),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", len(report.Failed)),
	)

	return report, nil
}

// normalized holds the typed field values produced by the row normalizer.
type normalized struct {
	followupDate *time.Time
	wonAt        *time.Time
	closedAt     *time.Time
	hour         string
	minute       string
}

// normalizeRow coerces the row's scalar and date cells. A date that
// fails to parse is logged and cleared; the row keeps going without it.
func (imp *Importer) normalizeRow(log *zap.Logger, rowNum int, row Row) normalized {
	n := normalized{
		hour:   coerceNumeric(row["followup_hour"]),
		minute: coerceNumeric(row["followup_minute"]),
	}

	n.followupDate = imp.parseDateField(log, rowNum, "followup_date", row["followup_date"], true)
	n.wonAt = imp.parseDateField(log, rowNum, "won_at", row["won_at"], false)
	n.closedAt = imp.parseDateField(log, rowNum, "closed_at", row["closed_at"], false)

	return n
}

func (imp *Importer) parseDateField(log *zap.Logger, rowNum int, field, value string, dateOnlyField bool) *time.Time {
	t, err := parseCellTime(value)
	if err != nil {
		log.Error("date parse failed",
			zap.Int("row", rowNum),
			zap.String("field", field),
			zap.String("value", value),
		)
		return nil
	}
	if t.IsZero() {
		return nil
	}
	if dateOnlyField {
		t = dateOnly(t)
	}
	return &t
}

// buildLead assembles the canonical record. Pure function of its inputs:
// city defaults to Others, the notification flag is always on, and
// closed_at falls back to the run time for Lost and Non-Potential rows.
// won_at comes only from its explicit column, never from the status.
func buildLead(row Row, norm normalized, phone, email string, assigneeID int64, now time.Time) *lead.Lead {
	status := lead.Status(strings.TrimSpace(row["lead_status"]))
	active, _ := lead.ParseActiveStatus(row["lead_active_status"])

	city := lead.City(strings.TrimSpace(row["city"]))
	if city == "" {
		city = lead.CityOthers
	}

	closedAt := norm.closedAt
	if closedAt == nil && status.IsClosed() {
		closedAt = &now
	}

	return &lead.Lead{
		Name:               strings.TrimSpace(row["name"]),
		Phone:              phone,
		Email:              email,
		LeadSource:         lead.Source(strings.TrimSpace(row["lead_source"])),
		LeadStatus:         status,
		City:               city,
		AssignedUserID:     assigneeID,
		FollowupDate:       norm.followupDate,
		FollowupHour:       norm.hour,
		FollowupMinute:     norm.minute,
		FollowupPeriod:     lead.Period(strings.ToUpper(strings.TrimSpace(row["followup_period"]))),
		LeadActiveStatus:   active,
		NotificationStatus: true,
		AssignedAt:         now,
		ClosedAt:           closedAt,
		WonAt:              norm.wonAt,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
