package messages

import (
	"context"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"max.ks1230/home-ledger/internal/entity/ledger"
	"max.ks1230/home-ledger/internal/model/allocator"
	"max.ks1230/home-ledger/internal/model/messages/mock"
	"max.ks1230/home-ledger/internal/model/reports"
	"max.ks1230/home-ledger/internal/model/summary"
)

const chatID = int64(123)

type mocks struct {
	sender    *mock.MessageSenderMock
	reporter  *mock.ReporterMock
	allocator *mock.HomeAllocatorMock
	config    *mock.ConfigMock
}

func newMocks(m *minimock.Controller) mocks {
	return mocks{
		sender:    mock.NewMessageSenderMock(m),
		reporter:  mock.NewReporterMock(m),
		allocator: mock.NewHomeAllocatorMock(m),
		config:    mock.NewConfigMock(m),
	}
}

func (ms mocks) service() *Service {
	return NewService(ms.sender, ms.reporter, ms.allocator, ms.config, chatID)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ms := newMocks(m)

	ms.sender.SendMessageMock.
		Expect(helloMessage, chatID).
		Return(nil)

	err := ms.service().HandleIncomingMessage(context.Background(), Message{
		Text:   "/start",
		ChatID: chatID,
	})

	assert.NoError(t, err)
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ms := newMocks(m)

	ms.sender.SendMessageMock.
		Expect("I don't understand you :(", chatID).
		Return(nil)

	err := ms.service().HandleIncomingMessage(context.Background(), Message{
		Text:   "/none",
		ChatID: chatID,
	})

	assert.NoError(t, err)
}

func Test_OnForeignChat_ShouldStaySilent(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ms := newMocks(m)

	err := ms.service().HandleIncomingMessage(context.Background(), Message{
		Text:   "/undo",
		ChatID: 999,
	})

	assert.NoError(t, err)
}

func Test_OnTodayCommand_ShouldSendSummary(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ms := newMocks(m)

	ms.config.TodayMock.Return("2024-03-05")
	ms.reporter.DailyMock.
		Inspect(func(_ context.Context, date ledger.Date) {
			assert.Equal(m, ledger.Date("2024-03-05"), date)
		}).
		Return(&reports.DailyReport{
			Date: "2024-03-05",
			Summary: summary.Summary{
				Date:         "2024-03-05",
				WeekStart:    "2024-02-28",
				DailyIncome:  dec("300"),
				DailyExpense: dec("120"),
				DailyBalance: dec("180"),
			},
		}, nil)
	ms.sender.SendMessageMock.
		Inspect(func(text string, _ int64) {
			assert.Contains(m, text, "Income: 300.00")
			assert.Contains(m, text, "Balance: 180.00")
			assert.Contains(m, text, "Week 2024-02-28 .. 2024-03-05")
		}).
		Return(nil)

	err := ms.service().HandleIncomingMessage(context.Background(), Message{Text: "/today", ChatID: chatID})

	assert.NoError(t, err)
}

func Test_OnTodayCommand_BadDateShouldAnswerWithFormat(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ms := newMocks(m)

	ms.config.TodayMock.Return("2024-03-05")
	ms.sender.SendMessageMock.
		Expect(incorrectDateMessage, chatID).
		Return(nil)

	err := ms.service().HandleIncomingMessage(context.Background(), Message{Text: "/today 05.03.2024", ChatID: chatID})

	assert.NoError(t, err)
}

func Test_OnGiveCommand_ShouldPassRecipientAndAmount(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ms := newMocks(m)

	ms.allocator.GiveToHomeMock.
		Inspect(func(_ context.Context, to ledger.Recipient, amount decimal.NullDecimal) {
			assert.Equal(m, ledger.Dad, to)
			assert.True(m, amount.Valid)
			assert.True(m, dec("150").Equal(amount.Decimal))
		}).
		Return(allocator.Disbursement{Recipient: ledger.Dad, Given: dec("150"), Remaining: dec("0")}, nil)
	ms.sender.SendMessageMock.
		Expect("Given 150.00 to Dad, 0.00 left", chatID).
		Return(nil)

	err := ms.service().HandleIncomingMessage(context.Background(), Message{Text: "/give dad 150", ChatID: chatID})

	assert.NoError(t, err)
}

func Test_OnGiveCommand_NoBalanceShouldBeExplained(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ms := newMocks(m)

	ms.allocator.GiveToHomeMock.Return(allocator.Disbursement{}, allocator.ErrNoBalance)
	ms.sender.SendMessageMock.
		Expect(noBalanceMessage, chatID).
		Return(nil)

	err := ms.service().HandleIncomingMessage(context.Background(), Message{Text: "/give Mom", ChatID: chatID})

	assert.NoError(t, err)
}

func Test_OnGiveCommand_UnknownRecipientShouldNotAllocate(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ms := newMocks(m)

	ms.sender.SendMessageMock.
		Expect(incorrectRecipientMessage, chatID).
		Return(nil)

	err := ms.service().HandleIncomingMessage(context.Background(), Message{Text: "/give uncle 10", ChatID: chatID})

	assert.NoError(t, err)
}

func Test_OnUndoCommand_StoreFailureShouldApologize(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ms := newMocks(m)

	ms.allocator.UndoLastMock.Return(allocator.Disbursement{}, errors.New("connection refused"))
	ms.sender.SendMessageMock.
		Expect("Sorry, something wrong happened...\n"+cannotSaveLedgerMessage, chatID).
		Return(nil)

	err := ms.service().HandleIncomingMessage(context.Background(), Message{Text: "/undo", ChatID: chatID})

	assert.Error(t, err)
}

func Test_OnMonthCommand_ShouldUseGivenMonth(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	ms := newMocks(m)

	ms.config.TodayMock.Return("2024-03-05")
	ms.reporter.MonthlyMock.
		Inspect(func(_ context.Context, month ledger.Month) {
			assert.Equal(m, ledger.Month("2024-02"), month)
		}).
		Return(&reports.MonthlyReport{
			Month: "2024-02",
			Totals: reports.Totals{
				Income:  dec("1000"),
				Expense: dec("400"),
				Balance: dec("600"),
			},
			Changes: reports.Changes{Income: dec("100"), Expense: dec("-20"), Balance: dec("12.5")},
		}, nil)
	ms.sender.SendMessageMock.
		Inspect(func(text string, _ int64) {
			assert.Contains(m, text, "Income: 1000.00 (100%)")
			assert.Contains(m, text, "Expense: 400.00 (-20%)")
		}).
		Return(nil)

	err := ms.service().HandleIncomingMessage(context.Background(), Message{Text: "/month 2024-02", ChatID: chatID})

	assert.NoError(t, err)
}
