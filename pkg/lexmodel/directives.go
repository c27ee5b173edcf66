package lexmodel

import "fmt"

// Carryover context identity and lifetime attached to every directive that
// carries context attributes.
const (
	IntentContextName       = "intentContext"
	contextTTLSeconds       = 600
	contextDefaultTurnsLive = 1
)

func intentContext(attrs map[string]string) []ActiveContext {
	return []ActiveContext{{
		Name:              IntentContextName,
		ContextAttributes: attrs,
		TimeToLive: TimeToLive{
			TimeToLiveInSeconds: contextTTLSeconds,
			TurnsToLive:         contextDefaultTurnsLive,
		},
	}}
}

// ElicitSlot asks the platform to re-prompt for one slot. Guidance text for
// the user comes from the bot's own prompt configuration, so the response
// carries no messages.
func ElicitSlot(sessionAttrs, contextAttrs map[string]string, intent *Intent, slotToElicit string) *Response {
	return &Response{
		SessionState: SessionState{
			ActiveContexts:    intentContext(contextAttrs),
			SessionAttributes: sessionAttrs,
			DialogAction: &DialogAction{
				Type:         ActionElicitSlot,
				SlotToElicit: slotToElicit,
			},
			Intent: intent,
		},
	}
}

// ConfirmIntent asks the user to approve the intent's current slot values,
// passing the given carryover context through unchanged.
func ConfirmIntent(carryover ActiveContext, sessionAttrs map[string]string, intent *Intent) *Response {
	return &Response{
		SessionState: SessionState{
			ActiveContexts:    []ActiveContext{carryover},
			SessionAttributes: sessionAttrs,
			DialogAction:      &DialogAction{Type: ActionConfirmIntent},
			Intent:            intent,
		},
	}
}

// Delegate hands the next prompt decision back to the platform's dialog
// manager.
func Delegate(sessionAttrs, contextAttrs map[string]string, intent *Intent, message string) *Response {
	return &Response{
		SessionState: SessionState{
			ActiveContexts:    intentContext(contextAttrs),
			SessionAttributes: sessionAttrs,
			DialogAction:      &DialogAction{Type: ActionDelegate},
			Intent:            intent,
		},
		Messages: []Message{{ContentType: PlainText, Content: message}},
	}
}

// Close ends the conversation with the given fulfillment state.
func Close(sessionAttrs, contextAttrs map[string]string, fulfillmentState string, intent *Intent, message string) *Response {
	if intent != nil {
		intent.State = fulfillmentState
	}
	return &Response{
		SessionState: SessionState{
			ActiveContexts:    intentContext(contextAttrs),
			SessionAttributes: sessionAttrs,
			DialogAction:      &DialogAction{Type: ActionClose},
			Intent:            intent,
		},
		Messages: []Message{{ContentType: PlainText, Content: message}},
	}
}

// InitialElicit builds the very first directive of a conversation: elicit
// the intent's opening slot with confirmation and progress reset.
func InitialElicit(intentName string) (*Response, error) {
	var slot string
	switch intentName {
	case IntentBookHotel:
		slot = SlotLocation
	case IntentBookCar:
		slot = SlotPickUpCity
	default:
		return nil, fmt.Errorf("initial elicit for intent %q: %w", intentName, ErrUnsupportedIntent)
	}

	return &Response{
		SessionState: SessionState{
			DialogAction: &DialogAction{
				Type:         ActionElicitSlot,
				SlotToElicit: slot,
			},
			Intent: &Intent{
				Name:              intentName,
				State:             StateInProgress,
				ConfirmationState: ConfirmationNone,
			},
		},
	}, nil
}
