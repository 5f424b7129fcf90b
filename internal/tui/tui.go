package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-money-keeper/internal/logger"
	"github.com/MKhiriev/go-money-keeper/internal/service"
	"github.com/MKhiriev/go-money-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// SignInFlow collects the user's identity (email, name) interactively.
// The caller exchanges it for a session token.
func (t *TUI) SignInFlow(ctx context.Context) (models.Identity, error) {
	model := newSignInModel()
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Identity{}, runErr
	}

	result, ok := finalModel.(signInModel)
	if !ok {
		return models.Identity{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Identity{}, ErrUserQuit
	}

	return result.identity, nil
}

func (t *TUI) MainLoop(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	if _, ok := finalModel.(mainLoopModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
