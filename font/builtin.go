package font

import (
	"fmt"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	builtinOnce sync.Once
	builtin     *Registry
)

// Builtin returns a shared registry with two embedded families, each in
// all four style variants:
//
//   - "sans" (the default family): the Go fonts
//   - "serif": Latin Modern Roman 10
//
// The registry is built on first use and then reused; registering
// additional fonts on it affects every caller.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		builtin = NewRegistry()
		mustRegister := func(family string, style Style, data []byte) {
			if _, err := builtin.RegisterAs(family, style, data); err != nil {
				// Embedded font data is compiled in; failure to parse it
				// is a build defect, not a runtime condition.
				panic(fmt.Sprintf("font: builtin %s %v: %v", family, style, err))
			}
		}

		mustRegister(DefaultFamily, StyleNormal, goregular.TTF)
		mustRegister(DefaultFamily, StyleItalic, goitalic.TTF)
		mustRegister(DefaultFamily, StyleBold, gobold.TTF)
		mustRegister(DefaultFamily, StyleBoldItalic, gobolditalic.TTF)

		mustRegister("serif", StyleNormal, lmroman10regular.TTF)
		mustRegister("serif", StyleItalic, lmroman10italic.TTF)
		mustRegister("serif", StyleBold, lmroman10bold.TTF)
		mustRegister("serif", StyleBoldItalic, lmroman10bolditalic.TTF)
	})
	return builtin
}
