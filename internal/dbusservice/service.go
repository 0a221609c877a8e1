package dbusservice

import "github.com/username/goviet-ime/internal/engine"

// Service adapts an engine.Engine to the ProcessKey/Reset/SetEnabled/
// GetPreedit surface a Fcitx5-style frontend drives over D-Bus.
type Service struct {
	eng     *engine.Engine
	enabled bool
}

// NewService creates a Service wrapping a fresh engine.
func NewService() *Service {
	return &Service{
		eng:     engine.New(),
		enabled: true,
	}
}

// ProcessKey handles a key event and returns the result.
func (s *Service) ProcessKey(event KeyEvent) ProcessResult {
	result := ProcessResult{}
	if !s.enabled {
		return result
	}

	if specialResult, handled := s.handleSpecialKey(event); handled {
		return specialResult
	}

	if event.Modifiers&(ModControl|ModMod1) != 0 {
		if preedit := s.eng.Preedit(); preedit != "" {
			s.eng.Clear()
			result.CommitText = preedit
		}
		return result
	}

	char := keysymToRune(event.KeySym)
	if char == 0 {
		return result
	}

	rendered := s.eng.Feed(char)
	return ProcessResult{Handled: true, Preedit: string(rendered)}
}

func (s *Service) handleSpecialKey(event KeyEvent) (ProcessResult, bool) {
	switch event.KeySym {
	case KeySpace:
		preedit := s.eng.Feed(' ')
		s.eng.Clear()
		return ProcessResult{Handled: true, CommitText: string(preedit)}, true

	case KeyReturn:
		preedit := s.eng.Preedit()
		if preedit == "" {
			return ProcessResult{}, false
		}
		s.eng.Clear()
		return ProcessResult{Handled: true, CommitText: preedit}, true

	case KeyEscape:
		s.eng.Clear()
		return ProcessResult{Handled: true}, true

	case KeyTab:
		preedit := s.eng.Preedit()
		if preedit == "" {
			return ProcessResult{}, false
		}
		s.eng.Clear()
		return ProcessResult{Handled: true, CommitText: preedit}, true

	case KeyDelete:
		preedit := s.eng.Preedit()
		if preedit == "" {
			return ProcessResult{}, false
		}
		s.eng.Clear()
		return ProcessResult{Handled: false, CommitText: preedit}, true
	}
	return ProcessResult{}, false
}

// Reset clears the current composition state.
func (s *Service) Reset() {
	s.eng.Clear()
}

// GetPreedit returns the current preedit string.
func (s *Service) GetPreedit() string {
	return s.eng.Preedit()
}

// SetEnabled enables or disables the service.
func (s *Service) SetEnabled(enabled bool) {
	s.enabled = enabled
	if !enabled {
		s.eng.Clear()
	}
}

// IsEnabled returns whether the service is enabled.
func (s *Service) IsEnabled() bool {
	return s.enabled
}

// SetInputMethod switches the active keyboard convention.
func (s *Service) SetInputMethod(method engine.InputMethod) {
	s.eng.SetInputMethod(method)
}

// keysymToRune converts an X11 keysym to a rune.
func keysymToRune(keysym uint32) rune {
	if keysym >= 0x0020 && keysym <= 0x007e {
		return rune(keysym)
	}
	if keysym >= 0x00a0 && keysym <= 0x00ff {
		return rune(keysym)
	}
	if keysym >= 0x01000000 {
		return rune(keysym - 0x01000000)
	}
	return 0
}
