package ledger

import "strings"

// PayeeOthers switches the expense form to a free-text payee.
const PayeeOthers = "Others"

var PaidToOptions = []string{
	"PACHAIYAPPAN FIN",
	"SAI FIN",
	"SOTTA FIN",
	"SPF FIN",
	"BHAVANI FIN",
	"JANA SETTIYAR",
	PayeeOthers,
}

// ResolvePaidTo returns the payee to store for a form choice. Choosing Others
// stores the custom name instead.
func ResolvePaidTo(choice, custom string) string {
	choice = strings.TrimSpace(choice)
	if strings.EqualFold(choice, PayeeOthers) {
		return strings.TrimSpace(custom)
	}
	return choice
}
