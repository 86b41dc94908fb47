package finance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lifetrack/backend/internal/application/adapter"
	"github.com/lifetrack/backend/internal/domain/entity"
)

// ScanBillRemindersUseCase walks every recurring bill and enqueues one
// reminder email per bill per due date for bills inside their reminder
// window. The dedup key guarantees that repeated scans never enqueue the
// same reminder twice.
type ScanBillRemindersUseCase struct {
	financesRepo adapter.FinancesRepository
	billRepo     adapter.RecurringBillRepository
	emailQueue   adapter.EmailQueueRepository
	clock        adapter.Clock
	logger       *slog.Logger
}

// NewScanBillRemindersUseCase creates a new ScanBillRemindersUseCase instance.
func NewScanBillRemindersUseCase(
	financesRepo adapter.FinancesRepository,
	billRepo adapter.RecurringBillRepository,
	emailQueue adapter.EmailQueueRepository,
	clock adapter.Clock,
	logger *slog.Logger,
) *ScanBillRemindersUseCase {
	return &ScanBillRemindersUseCase{
		financesRepo: financesRepo,
		billRepo:     billRepo,
		emailQueue:   emailQueue,
		clock:        clock,
		logger:       logger,
	}
}

// Execute performs one reminder scan. It returns the number of reminders
// enqueued. Individual bill failures are logged and skipped so one bad
// record cannot stall the whole scan.
func (uc *ScanBillRemindersUseCase) Execute(ctx context.Context) (int, error) {
	bills, err := uc.billRepo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load recurring bills: %w", err)
	}

	today := uc.clock.Now()
	enqueued := 0

	for _, bill := range bills {
		if !bill.DueWithinReminder(today) {
			continue
		}

		if err := uc.remind(ctx, bill); err != nil {
			uc.logger.Warn("bill reminder skipped",
				"bill_id", bill.ID.String(),
				"error", err.Error(),
			)
			continue
		}
		enqueued++
	}

	return enqueued, nil
}

func (uc *ScanBillRemindersUseCase) remind(ctx context.Context, bill *entity.RecurringBill) error {
	finances, err := uc.financesRepo.FindByID(ctx, bill.FinancesID)
	if err != nil {
		return fmt.Errorf("failed to load finances: %w", err)
	}
	if finances.ReminderEmail == "" {
		// Nothing to send without a configured recipient.
		return nil
	}

	dedupKey := fmt.Sprintf("bill-reminder:%s:%s", bill.ID, bill.NextDueDate.Format(dateLayout))

	exists, err := uc.emailQueue.ExistsByDedupKey(ctx, dedupKey)
	if err != nil {
		return fmt.Errorf("failed to check reminder dedup: %w", err)
	}
	if exists {
		return nil
	}

	job := entity.NewEmailJob(
		entity.TemplateBillReminder,
		finances.ReminderEmail,
		"",
		fmt.Sprintf("Upcoming bill: %s", bill.Name),
		dedupKey,
		map[string]interface{}{
			"BillName": bill.Name,
			"Amount":   bill.Amount.StringFixed(2),
			"DueDate":  bill.NextDueDate.Format(dateLayout),
		},
	)

	if err := uc.emailQueue.Create(ctx, job); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}

	uc.logger.Info("bill reminder enqueued",
		"bill_id", bill.ID.String(),
		"due_date", bill.NextDueDate.Format(dateLayout),
	)
	return nil
}
