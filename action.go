package yaedit

import "fmt"

// Action selects the editor operation applied to the text.
type Action string

// Supported actions.
const (
	// ActionCorrect fixes spelling and punctuation mistakes.
	ActionCorrect Action = "correct"
	// ActionImprove improves readability, style and structure.
	ActionImprove Action = "improve"
	// ActionRephrase restates the same ideas in different words.
	ActionRephrase Action = "rephrase"
	// ActionSimple lowers lexical and syntactic complexity.
	ActionSimple Action = "simple"
	// ActionComplex raises lexical and syntactic complexity.
	ActionComplex Action = "complex"
	// ActionFormal shifts the text to a formal, business register.
	ActionFormal Action = "formal"
	// ActionCasual shifts the text to a conversational register.
	ActionCasual Action = "casual"
	// ActionTranslate translates between Russian and English. It is served
	// by the correction endpoint with the target language flipped.
	ActionTranslate Action = "translate"
)

// actionNames maps actions to the editor API's action_type values.
// ActionTranslate is absent: it is rewritten to ActionCorrect before lookup.
var actionNames = map[Action]string{
	ActionComplex:  "make_text_more_complex",
	ActionSimple:   "make_text_more_simple",
	ActionFormal:   "make_text_more_formal",
	ActionCasual:   "make_more_casual",
	ActionRephrase: "rephrase",
	ActionImprove:  "improve_text",
	ActionCorrect:  "correct_mistakes",
}

// Actions lists every supported action in a stable order.
func Actions() []Action {
	return []Action{
		ActionCorrect, ActionImprove, ActionRephrase, ActionSimple,
		ActionComplex, ActionFormal, ActionCasual, ActionTranslate,
	}
}

// Validate checks that a is a supported action.
func (a Action) Validate() error {
	if a == ActionTranslate {
		return nil
	}
	if _, ok := actionNames[a]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, string(a))
	}
	return nil
}
