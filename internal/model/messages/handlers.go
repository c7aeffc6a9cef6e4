package messages

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"max.ks1230/home-ledger/internal/entity/ledger"
	"max.ks1230/home-ledger/internal/model/allocator"
	"max.ks1230/home-ledger/internal/model/reports"
)

const (
	dontUnderstandMessage = "I don't understand you :("
	helloMessage          = "Hello! I keep the home ledger 📒\n" + usageMessage
	usageMessage          = "/today [YYYY-MM-DD]\n/give mom|dad [amount]\n/undo\n/month [YYYY-MM]"

	incorrectUsageMessage     = "That is an incorrect command usage"
	incorrectDateMessage      = "The date is incorrect. Should be YYYY-MM-DD"
	incorrectMonthMessage     = "The month is incorrect. Should be YYYY-MM"
	incorrectAmountMessage    = "The amount is incorrect"
	incorrectRecipientMessage = "Give to whom? Mom or Dad"
	noBalanceMessage          = "No balance available"
	nothingToUndoMessage      = "Nothing was given to home yet"
	cannotGetLedgerMessage    = "Can't read the ledger atm. Try later"
	cannotSaveLedgerMessage   = "Can't update the ledger atm. Try later"
)

const (
	startCommand = "/start"
	todayCommand = "/today"
	giveCommand  = "/give"
	undoCommand  = "/undo"
	monthCommand = "/month"
)

var knownCommands = map[string]struct{}{
	startCommand: {},
	todayCommand: {},
	giveCommand:  {},
	undoCommand:  {},
	monthCommand: {},
}

type reporter interface {
	Daily(ctx context.Context, date ledger.Date) (*reports.DailyReport, error)
	Monthly(ctx context.Context, month ledger.Month) (*reports.MonthlyReport, error)
}

type homeAllocator interface {
	GiveToHome(ctx context.Context, to ledger.Recipient, amount decimal.NullDecimal) (allocator.Disbursement, error)
	UndoLast(ctx context.Context) (allocator.Disbursement, error)
}

type config interface {
	Today() ledger.Date
}

type handler func(ctx context.Context, arg string) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	reporter    reporter
	allocator   homeAllocator
	config      config
}

func newHandler(reporter reporter, allocator homeAllocator, config config) *HandlerService {
	res := &HandlerService{
		reporter:  reporter,
		allocator: allocator,
		config:    config,
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string) (string, error) {
	cmd, arg := parseCommand(text)

	// commands addressed to the bot in a group come as /cmd@botname
	if at := strings.IndexByte(cmd, '@'); at > 0 {
		cmd = cmd[:at]
	}

	handler, ok := s.handlersMap[strings.ToLower(cmd)]
	if ok {
		return handler(ctx, arg)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[todayCommand] = s.handleToday
	m[giveCommand] = s.handleGive
	m[undoCommand] = s.handleUndo
	m[monthCommand] = s.handleMonth

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(context.Context, string) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleToday(ctx context.Context, arg string) (string, error) {
	date := s.config.Today()
	if arg = strings.TrimSpace(arg); arg != "" {
		var err error
		if date, err = ledger.ParseDate(arg); err != nil {
			return incorrectDateMessage, nil
		}
	}

	report, err := s.reporter.Daily(ctx, date)
	if err != nil {
		return cannotGetLedgerMessage, errors.Wrap(err, "handle today")
	}
	return formatDaily(report), nil
}

func (s *HandlerService) handleGive(ctx context.Context, arg string) (string, error) {
	args := strings.Fields(arg)
	if len(args) == 0 || len(args) > 2 {
		return incorrectUsageMessage, nil
	}
	to, err := ledger.ParseRecipient(args[0])
	if err != nil {
		return incorrectRecipientMessage, nil
	}

	var amount decimal.NullDecimal
	if len(args) == 2 {
		value, err := decimal.NewFromString(args[1])
		if err != nil || !value.IsPositive() {
			return incorrectAmountMessage, nil
		}
		amount = decimal.NewNullDecimal(value)
	}

	res, err := s.allocator.GiveToHome(ctx, to, amount)
	if errors.Is(err, allocator.ErrNoBalance) {
		return noBalanceMessage, nil
	}
	if err != nil {
		return cannotSaveLedgerMessage, errors.Wrap(err, "handle give")
	}
	return formatDisbursement(res), nil
}

func (s *HandlerService) handleUndo(ctx context.Context, _ string) (string, error) {
	res, err := s.allocator.UndoLast(ctx)
	if errors.Is(err, allocator.ErrNothingToUndo) {
		return nothingToUndoMessage, nil
	}
	if err != nil {
		return cannotSaveLedgerMessage, errors.Wrap(err, "handle undo")
	}
	return formatDisbursement(res), nil
}

func (s *HandlerService) handleMonth(ctx context.Context, arg string) (string, error) {
	month := s.config.Today().Month()
	if arg = strings.TrimSpace(arg); arg != "" {
		var err error
		if month, err = ledger.ParseMonth(arg); err != nil {
			return incorrectMonthMessage, nil
		}
	}

	report, err := s.reporter.Monthly(ctx, month)
	if err != nil {
		return cannotGetLedgerMessage, errors.Wrap(err, "handle month")
	}
	return formatMonthly(report), nil
}

func (s *HandlerService) handleNoCommand(context.Context, string) (string, error) {
	return usageMessage, nil
}
