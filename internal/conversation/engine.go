package conversation

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/fetamlet/go-telegram-cutbot/internal/catalog"
	"github.com/fetamlet/go-telegram-cutbot/internal/cutting"
)

const restartButton = "/start"

// Reply is what the engine wants sent back to the chat.
type Reply struct {
	Text string
	// Keyboard is a one-time reply keyboard, one row per entry. Nil
	// means no keyboard for this prompt.
	Keyboard [][]string
	// End reports that the dialog is over, whether with a result or a
	// dead end.
	End bool
	// Result is set when the dialog completed with a computed
	// recommendation, together with the numeric Inputs that produced
	// it. Callers use it for persistence.
	Result *cutting.Recommendation
	Inputs cutting.Inputs
}

// Engine drives the dialog. All methods are keyed by chat ID; the
// engine itself holds no per-chat state outside the store.
type Engine struct {
	logger    *zap.Logger
	catalog   *catalog.Catalog
	store     SessionStore
	formatter *cutting.ResultFormatter
}

// NewEngine creates a dialog engine.
func NewEngine(logger *zap.Logger, cat *catalog.Catalog, store SessionStore, formatter *cutting.ResultFormatter) *Engine {
	return &Engine{
		logger:    logger.Named("conversation"),
		catalog:   cat,
		store:     store,
		formatter: formatter,
	}
}

// Start resets any dialog in the chat and asks for the material.
func (e *Engine) Start(chatID int64) Reply {
	e.store.Put(chatID, &Session{State: StateMaterial})

	return Reply{
		Text: "Привет! Я помогу вам выбрать оптимальные режимы резания. " +
			"Для начала выберите материал заготовки:",
		Keyboard: optionsKeyboard(e.catalog.Materials()),
	}
}

// Cancel ends the dialog in the chat, if any.
func (e *Engine) Cancel(chatID int64) Reply {
	e.store.Delete(chatID)

	return Reply{
		Text:     "Операция отменена.",
		Keyboard: [][]string{{restartButton}},
		End:      true,
	}
}

// Advance feeds one user message into the dialog.
func (e *Engine) Advance(chatID int64, text string) Reply {
	sess, ok := e.store.Get(chatID)
	if !ok {
		return Reply{Text: "Напишите /start, чтобы начать подбор режимов резания."}
	}

	input := strings.ToLower(strings.TrimSpace(text))

	e.logger.Debug("Advancing dialog",
		zap.Int64("chatID", chatID),
		zap.Stringer("state", sess.State),
		zap.String("input", input),
	)

	switch sess.State {
	case StateMaterial:
		return e.material(chatID, sess, input)
	case StateOperation:
		return e.operation(chatID, sess, input)
	case StateToolType:
		return e.toolType(chatID, sess, input)
	case StateToolSubtype:
		return e.toolSubtype(chatID, sess, input)
	case StateDiameter:
		return e.diameter(chatID, sess, input)
	case StateTeeth:
		return e.teeth(chatID, sess, input)
	case StateDepthOfCut:
		return e.depthOfCut(chatID, sess, input)
	case StateInsertRadius:
		return e.insertRadius(chatID, sess, input)
	case StateGrooveWidth:
		return e.grooveWidth(chatID, sess, input)
	}

	e.logger.Warn("Session in unknown state, resetting", zap.Int64("chatID", chatID), zap.Int("state", int(sess.State)))
	return e.Start(chatID)
}

func (e *Engine) material(chatID int64, sess *Session, input string) Reply {
	if !e.catalog.HasMaterial(input) {
		return e.abort(chatID, "Извините, я не могу найти параметры для этого материала. Попробуйте снова.")
	}

	sess.Selection.Material = input
	sess.State = StateOperation
	e.store.Put(chatID, sess)

	return Reply{
		Text:     fmt.Sprintf("Отлично! Теперь выберите тип операции для материала %s:", input),
		Keyboard: optionsKeyboard(e.catalog.Operations(input)),
	}
}

func (e *Engine) operation(chatID int64, sess *Session, input string) Reply {
	toolTypes := e.catalog.ToolTypes(sess.Selection.Material, input)
	if toolTypes == nil {
		return e.abort(chatID, "Извините, я не могу найти параметры для этой операции. Попробуйте снова.")
	}

	sess.Selection.Operation = input
	sess.State = StateToolType
	e.store.Put(chatID, sess)

	return Reply{
		Text:     fmt.Sprintf("Выберите тип инструмента для операции %s:", input),
		Keyboard: optionsKeyboard(toolTypes),
	}
}

func (e *Engine) toolType(chatID int64, sess *Session, input string) Reply {
	if !contains(e.catalog.ToolTypes(sess.Selection.Material, sess.Selection.Operation), input) {
		return e.abort(chatID, "Извините, я не могу найти параметры для этого типа инструмента. Попробуйте снова.")
	}

	sess.Selection.ToolType = input

	switch sess.Selection.Operation {
	case catalog.OperationMilling:
		sess.State = StateToolSubtype
		e.store.Put(chatID, sess)
		return Reply{
			Text:     "Выберите тип фрезы:",
			Keyboard: optionsKeyboard(e.catalog.Subtypes(sess.Selection.Material, sess.Selection.Operation, input)),
		}

	case catalog.OperationTurning:
		if input == catalog.ToolGrooving {
			sess.State = StateGrooveWidth
			e.store.Put(chatID, sess)
			return Reply{Text: "Введите ширину пластины (в мм):"}
		}
		sess.State = StateInsertRadius
		e.store.Put(chatID, sess)
		return Reply{
			Text:     "Выберите радиус пластины (в мм):",
			Keyboard: optionsKeyboard(formatFloats(e.catalog.InsertRadii(sess.Selection.Material))),
		}

	case catalog.OperationDrilling:
		if input == catalog.ToolSolidDrill {
			sess.State = StateToolSubtype
			e.store.Put(chatID, sess)
			return Reply{
				Text:     "Выберите тип сверла:",
				Keyboard: optionsKeyboard(e.catalog.Subtypes(sess.Selection.Material, sess.Selection.Operation, input)),
			}
		}
		// Indexable drills have a single carbide row, skip the grade.
		sess.State = StateDiameter
		e.store.Put(chatID, sess)
		return Reply{Text: "Введите диаметр сверла (в мм):"}
	}

	return e.abort(chatID, "Извините, произошла ошибка. Попробуйте снова.")
}

func (e *Engine) toolSubtype(chatID int64, sess *Session, input string) Reply {
	if !contains(e.catalog.Subtypes(sess.Selection.Material, sess.Selection.Operation, sess.Selection.ToolType), input) {
		return e.abort(chatID, "Ошибка: не удалось получить параметры резания.")
	}

	sess.Selection.Subtype = input
	sess.State = StateDiameter
	e.store.Put(chatID, sess)

	if sess.Selection.Operation == catalog.OperationDrilling {
		return Reply{Text: "Введите диаметр сверла (в мм):"}
	}
	return Reply{Text: "Введите диаметр фрезы (в мм):"}
}

func (e *Engine) diameter(chatID int64, sess *Session, input string) Reply {
	d, err := parseNumber(input)
	if err != nil || d <= 0 {
		return Reply{Text: "Пожалуйста, введите числовое значение для диаметра (используйте точку для десятичных значений)."}
	}

	sess.Diameter = d

	if sess.Selection.Operation == catalog.OperationDrilling {
		return e.finish(chatID, sess, cutting.Inputs{Diameter: &sess.Diameter})
	}

	sess.State = StateTeeth
	e.store.Put(chatID, sess)
	return Reply{Text: "Введите количество зубьев фрезы:"}
}

func (e *Engine) teeth(chatID int64, sess *Session, input string) Reply {
	z, err := strconv.Atoi(input)
	if err != nil || z <= 0 {
		return Reply{Text: "Пожалуйста, введите целое число для количества зубьев."}
	}

	sess.Teeth = z
	sess.State = StateDepthOfCut
	e.store.Put(chatID, sess)
	return Reply{Text: "Введите глубину резания в мм (используйте точку для десятичных значений):"}
}

func (e *Engine) depthOfCut(chatID int64, sess *Session, input string) Reply {
	ap, err := parseNumber(input)
	if err != nil || ap <= 0 {
		return Reply{Text: "Пожалуйста, введите числовое значение для глубины резания (используйте точку для десятичных значений)."}
	}

	sess.DepthOfCut = ap

	return e.finish(chatID, sess, cutting.Inputs{
		Diameter:   &sess.Diameter,
		DepthOfCut: &sess.DepthOfCut,
		Teeth:      &sess.Teeth,
	})
}

func (e *Engine) insertRadius(chatID int64, sess *Session, input string) Reply {
	r, err := parseNumber(input)
	if err != nil {
		return Reply{Text: "Пожалуйста, введите числовое значение для радиуса (используйте точку для десятичных значений)."}
	}

	sess.Selection.InsertRadius = r
	return e.finish(chatID, sess, cutting.Inputs{})
}

func (e *Engine) grooveWidth(chatID int64, sess *Session, input string) Reply {
	w, err := parseNumber(input)
	if err != nil {
		return Reply{Text: "Пожалуйста, введите числовое значение для ширины канавки (используйте точку для десятичных значений)."}
	}

	sess.Selection.InsertWidth = w
	return e.finish(chatID, sess, cutting.Inputs{})
}

// finish looks the selection up, computes the recommendation and ends
// the dialog.
func (e *Engine) finish(chatID int64, sess *Session, in cutting.Inputs) Reply {
	regime, ok := e.catalog.Lookup(sess.Selection)
	if !ok {
		e.logger.Warn("No regime for completed selection",
			zap.Int64("chatID", chatID),
			zap.String("material", sess.Selection.Material),
			zap.String("operation", sess.Selection.Operation),
			zap.String("toolType", sess.Selection.ToolType),
		)
		return e.abort(chatID, "Ошибка: не удалось получить параметры резания.")
	}

	rec := cutting.Recommend(sess.Selection, regime, in)
	e.store.Delete(chatID)

	return Reply{
		Text:     e.formatter.Format(rec),
		Keyboard: [][]string{{restartButton}},
		End:      true,
		Result:   &rec,
		Inputs:   in,
	}
}

// abort ends the dialog with an apology.
func (e *Engine) abort(chatID int64, text string) Reply {
	e.store.Delete(chatID)
	return Reply{
		Text:     text,
		Keyboard: [][]string{{restartButton}},
		End:      true,
	}
}

// parseNumber parses a positive decimal, accepting the comma separator
// Russian keyboards produce.
func parseNumber(input string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(input, ",", "."), 64)
}

// optionsKeyboard lays options out one per row with a restart row last.
func optionsKeyboard(options []string) [][]string {
	rows := make([][]string, 0, len(options)+1)
	for _, opt := range options {
		rows = append(rows, []string{opt})
	}
	return append(rows, []string{restartButton})
}

func formatFloats(values []float64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
