// Package translate provides the locale-aware message printer used for all
// user visible text of the LS-8 emulator.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ls8: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// To writes an en-US Printf() format, translated, to the writer.
func To(w io.Writer, key message.Reference, args ...any) (err error) {
	_, err = printer.Fprintf(w, key, args...)
	return
}
