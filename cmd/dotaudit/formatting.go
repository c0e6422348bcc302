package dotaudit

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/dotaudit/pkg/style"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// heading renders a usage section title. Help goes to stdout, so bold is
// applied only when stdout is a color terminal.
func heading(title string) string {
	title = strings.ToUpper(title)
	if !style.ColorEnabled(os.Stdout) {
		return title
	}
	return pterm.Bold.Sprint(title)
}

func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"heading": heading,
	})
}
