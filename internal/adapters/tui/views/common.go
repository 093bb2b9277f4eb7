package views

import "rotawear/internal/application"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// View switching messages

// SwitchToOutfitsMsg opens the outfit list of a category.
type SwitchToOutfitsMsg struct {
	Category string
}

// SwitchToCategoriesMsg returns to the category browser.
type SwitchToCategoriesMsg struct{}

// SwitchToHelpMsg opens the help screen.
type SwitchToHelpMsg struct{}

// ShowSelectionMsg displays a pick result.
type ShowSelectionMsg struct {
	Selection *application.Selection
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}
