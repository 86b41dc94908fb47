package finance

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
)

type fakeBillRepo struct {
	byID map[uuid.UUID]*entity.RecurringBill
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{byID: map[uuid.UUID]*entity.RecurringBill{}}
}

func (r *fakeBillRepo) Create(_ context.Context, b *entity.RecurringBill) error {
	cp := *b
	r.byID[b.ID] = &cp
	return nil
}

func (r *fakeBillRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RecurringBill, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrBillNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBillRepo) FindByFinancesID(_ context.Context, financesID uuid.UUID) ([]*entity.RecurringBill, error) {
	var out []*entity.RecurringBill
	for _, b := range r.byID {
		if b.FinancesID == financesID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeBillRepo) FindAll(_ context.Context) ([]*entity.RecurringBill, error) {
	var out []*entity.RecurringBill
	for _, b := range r.byID {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeBillRepo) Update(_ context.Context, b *entity.RecurringBill) error {
	cp := *b
	r.byID[b.ID] = &cp
	return nil
}

func (r *fakeBillRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

type fakeEmailQueue struct {
	jobs []*entity.EmailJob
}

func (q *fakeEmailQueue) Create(_ context.Context, job *entity.EmailJob) error {
	cp := *job
	q.jobs = append(q.jobs, &cp)
	return nil
}

func (q *fakeEmailQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	if limit > len(q.jobs) {
		limit = len(q.jobs)
	}
	return q.jobs[:limit], nil
}

func (q *fakeEmailQueue) Update(_ context.Context, _ *entity.EmailJob) error { return nil }

func (q *fakeEmailQueue) GetByID(_ context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	for _, j := range q.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, domainerror.ErrEmailJobNotFound
}

func (q *fakeEmailQueue) ExistsByDedupKey(_ context.Context, dedupKey string) (bool, error) {
	for _, j := range q.jobs {
		if j.DedupKey == dedupKey {
			return true, nil
		}
	}
	return false, nil
}

func (q *fakeEmailQueue) DeleteOldSentJobs(_ context.Context, _ int) (int64, error) {
	return 0, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScanBillReminders(t *testing.T) {
	ctx := context.Background()
	financesR := newFakeFinancesRepo()
	billR := newFakeBillRepo()
	queue := &fakeEmailQueue{}

	finances := entity.NewFinances(uuid.New())
	finances.ReminderEmail = "me@example.com"
	if err := financesR.Create(ctx, finances); err != nil {
		t.Fatal(err)
	}

	today := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	// Due in 2 days with a 3-day window: inside.
	inside := entity.NewRecurringBill(finances.ID, "Electricity", dec("80"), entity.BillFrequencyMonthly, 0,
		time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), 3)
	// Due in 10 days with a 3-day window: outside.
	outside := entity.NewRecurringBill(finances.ID, "Insurance", dec("120"), entity.BillFrequencyMonthly, 0,
		time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), 3)
	for _, b := range []*entity.RecurringBill{inside, outside} {
		if err := billR.Create(ctx, b); err != nil {
			t.Fatal(err)
		}
	}

	uc := NewScanBillRemindersUseCase(financesR, billR, queue, fixedClock{today}, discardLogger())

	enqueued, err := uc.Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if enqueued != 1 {
		t.Fatalf("enqueued = %d, want 1", enqueued)
	}
	if len(queue.jobs) != 1 {
		t.Fatalf("jobs = %d, want 1", len(queue.jobs))
	}

	job := queue.jobs[0]
	if job.RecipientEmail != "me@example.com" {
		t.Errorf("recipient = %s", job.RecipientEmail)
	}
	if job.TemplateType != entity.TemplateBillReminder {
		t.Errorf("template = %s", job.TemplateType)
	}
	if job.TemplateData["BillName"] != "Electricity" {
		t.Errorf("bill name = %v", job.TemplateData["BillName"])
	}

	// A second scan on the same day must not enqueue a duplicate.
	enqueued, err = uc.Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if enqueued != 0 {
		t.Errorf("second scan enqueued = %d, want 0", enqueued)
	}
	if len(queue.jobs) != 1 {
		t.Errorf("jobs after second scan = %d, want 1", len(queue.jobs))
	}
}

func TestScanBillReminders_NoRecipientConfigured(t *testing.T) {
	ctx := context.Background()
	financesR := newFakeFinancesRepo()
	billR := newFakeBillRepo()
	queue := &fakeEmailQueue{}

	finances := entity.NewFinances(uuid.New())
	if err := financesR.Create(ctx, finances); err != nil {
		t.Fatal(err)
	}

	today := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	bill := entity.NewRecurringBill(finances.ID, "Water", dec("40"), entity.BillFrequencyMonthly, 0, today, 3)
	if err := billR.Create(ctx, bill); err != nil {
		t.Fatal(err)
	}

	uc := NewScanBillRemindersUseCase(financesR, billR, queue, fixedClock{today}, discardLogger())

	if _, err := uc.Execute(ctx); err != nil {
		t.Fatal(err)
	}
	if len(queue.jobs) != 0 {
		t.Errorf("jobs = %d, want 0 without a reminder email", len(queue.jobs))
	}
}

func TestPayBillAdvancesDueDate(t *testing.T) {
	ctx := context.Background()
	financesR := newFakeFinancesRepo()
	billR := newFakeBillRepo()

	finances := entity.NewFinances(uuid.New())
	if err := financesR.Create(ctx, finances); err != nil {
		t.Fatal(err)
	}

	due := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	bill := entity.NewRecurringBill(finances.ID, "Rent", dec("1200"), entity.BillFrequencyMonthly, 0, due, 5)
	if err := billR.Create(ctx, bill); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)
	uc := NewPayBillUseCase(financesR, billR, fixedClock{now})

	out, err := uc.Execute(ctx, PayBillInput{UserID: finances.UserID, BillID: bill.ID})
	if err != nil {
		t.Fatal(err)
	}

	want := time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC)
	if !out.Bill.NextDueDate.Equal(want) {
		t.Errorf("next due = %s, want %s", out.Bill.NextDueDate, want)
	}
	if out.Bill.LastPaidDate == nil || !out.Bill.LastPaidDate.Equal(now) {
		t.Errorf("last paid = %v, want %s", out.Bill.LastPaidDate, now)
	}
}

func TestSnoozeBillPushesDueDate(t *testing.T) {
	ctx := context.Background()
	financesR := newFakeFinancesRepo()
	billR := newFakeBillRepo()

	finances := entity.NewFinances(uuid.New())
	if err := financesR.Create(ctx, finances); err != nil {
		t.Fatal(err)
	}

	due := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	bill := entity.NewRecurringBill(finances.ID, "Rent", dec("1200"), entity.BillFrequencyMonthly, 0, due, 5)
	if err := billR.Create(ctx, bill); err != nil {
		t.Fatal(err)
	}

	uc := NewSnoozeBillUseCase(financesR, billR)
	out, err := uc.Execute(ctx, SnoozeBillInput{UserID: finances.UserID, BillID: bill.ID})
	if err != nil {
		t.Fatal(err)
	}

	want := due.AddDate(0, 0, 7)
	if !out.Bill.NextDueDate.Equal(want) {
		t.Errorf("next due = %s, want %s", out.Bill.NextDueDate, want)
	}
}
