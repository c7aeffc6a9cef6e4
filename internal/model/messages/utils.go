package messages

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"max.ks1230/home-ledger/internal/model/allocator"
	"max.ks1230/home-ledger/internal/model/reports"
)

const commandParts = 2

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts && strings.HasPrefix(text, "/") {
		return split[0], split[1]
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatDaily(r *reports.DailyReport) string {
	s := r.Summary
	lines := []string{
		fmt.Sprintf("📅 %s", r.Date),
		fmt.Sprintf("Income: %s", money(s.DailyIncome)),
		fmt.Sprintf("Expense: %s", money(s.DailyExpense)),
		fmt.Sprintf("Balance: %s", money(s.DailyBalance)),
		fmt.Sprintf("Given to home: %s", money(s.DailyGivenToHome)),
		"",
		fmt.Sprintf("Week %s .. %s", s.WeekStart, s.Date),
		fmt.Sprintf("Income: %s", money(s.WeeklyIncome)),
		fmt.Sprintf("Expense: %s", money(s.WeeklyExpense)),
		fmt.Sprintf("Balance: %s", money(s.WeeklyBalance)),
	}
	return strings.Join(lines, "\n")
}

func formatDisbursement(d allocator.Disbursement) string {
	if d.Undo {
		return fmt.Sprintf("Undone: %s taken back (%s)", money(d.Given.Neg()), d.Date)
	}
	return fmt.Sprintf("Given %s to %s, %s left", money(d.Given), d.Recipient, money(d.Remaining))
}

func formatMonthly(r *reports.MonthlyReport) string {
	lines := []string{
		fmt.Sprintf("🗓 %s", r.Month),
		fmt.Sprintf("Income: %s (%s%%)", money(r.Totals.Income), r.Changes.Income.String()),
		fmt.Sprintf("Expense: %s (%s%%)", money(r.Totals.Expense), r.Changes.Expense.String()),
		fmt.Sprintf("Balance: %s (%s%%)", money(r.Totals.Balance), r.Changes.Balance.String()),
		fmt.Sprintf("Given to home: %s", money(r.Totals.GivenToHome)),
	}
	return strings.Join(lines, "\n")
}
