package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Format Сумма в реалах с разделителем разрядов: R$ 50.000
func Format(amount int) string {
	return "R$ " + printer.Sprintf("%d", amount)
}
