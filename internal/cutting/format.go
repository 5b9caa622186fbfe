package cutting

import (
	"fmt"
	"strings"

	"github.com/fetamlet/go-telegram-cutbot/internal/catalog"
)

// ResultFormatter renders a Recommendation into the message the bot
// sends. An optional footer (support/feedback text) is appended to
// every result; an empty footer disables it.
type ResultFormatter struct {
	footer string
}

// NewResultFormatter creates a formatter with the given footer.
func NewResultFormatter(footer string) *ResultFormatter {
	return &ResultFormatter{footer: footer}
}

// Format renders the recommendation in Russian, the language of the
// catalog labels.
func (f *ResultFormatter) Format(rec Recommendation) string {
	var b strings.Builder

	b.WriteString(f.header(rec.Selection))
	b.WriteString(":\n")

	fmt.Fprintf(&b, "Скорость резания: %.1f м/мин\n", rec.Speed)
	fmt.Fprintf(&b, "Подача: %.2f мм/об\n", rec.Feed)

	if rec.FeedPerMinute != nil {
		fmt.Fprintf(&b, "Минутная подача: %.1f мм/мин\n", *rec.FeedPerMinute)
	}

	// Milling results omit the catalog depth: the user supplied their
	// own depth of cut, so recommending one back would be noise.
	if rec.Selection.Operation != catalog.OperationMilling && rec.Depth != nil {
		fmt.Fprintf(&b, "Глубина резания: %.1f мм\n", *rec.Depth)
	}

	if rec.Width != nil {
		fmt.Fprintf(&b, "Ширина резания: %.1f мм\n", *rec.Width)
	}

	if rec.SpindleSpeed != nil {
		fmt.Fprintf(&b, "Частота вращения шпинделя: %.0f об/мин\n", *rec.SpindleSpeed)
	}

	if f.footer != "" {
		b.WriteString("\n")
		b.WriteString(f.footer)
	}

	return strings.TrimRight(b.String(), "\n")
}

func (f *ResultFormatter) header(sel catalog.Selection) string {
	base := fmt.Sprintf("Рекомендованные параметры для %s (%s)", sel.Material, sel.Operation)

	switch {
	case sel.Operation == catalog.OperationTurning && sel.ToolType == catalog.ToolThroughTurning:
		return fmt.Sprintf("%s с пластиной радиусом %g мм", base, sel.InsertRadius)
	case sel.Operation == catalog.OperationTurning && sel.ToolType == catalog.ToolGrooving:
		return fmt.Sprintf("%s с шириной канавки %g мм", base, sel.InsertWidth)
	case sel.Subtype != "":
		return fmt.Sprintf("%s с инструментом %s (%s)", base, sel.ToolType, sel.Subtype)
	}
	return fmt.Sprintf("%s с инструментом %s", base, sel.ToolType)
}
