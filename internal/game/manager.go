package game

import (
	"log"

	"chosenoffset.com/mazeshooter/internal/audio"
	"chosenoffset.com/mazeshooter/internal/render"
	"chosenoffset.com/mazeshooter/internal/ui/menu"
)

// State identifies which screen owns the frame loop.
type State int

// Application states.
const (
	StateMenu State = iota
	StatePlaying
)

// Manager is the top-level state machine: it routes Update and Draw to the
// menu or the game and handles the transitions between them.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        State
	MainMenu     *menu.MainMenu
	Game         *Game
	InputMgr     render.InputManager
	Audio        *audio.Manager
}

// NewManager creates a manager starting on the menu.
func NewManager(mainMenu *menu.MainMenu, g *Game, input render.InputManager, snd *audio.Manager, width, height int) *Manager {
	return &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		State:        StateMenu,
		MainMenu:     mainMenu,
		Game:         g,
		InputMgr:     input,
		Audio:        snd,
	}
}

// Update advances whichever state is active. Only Playing drives the motion
// integrator; the menu is pure UI.
func (m *Manager) Update() error {
	switch m.State {
	case StateMenu:
		switch m.MainMenu.Update() {
		case menu.ActionNewGame:
			m.startNewGame()
		case menu.ActionExit:
			return render.Termination
		}
	case StatePlaying:
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			m.returnToMenu()
			return nil
		}
		return m.Game.Update()
	}
	return nil
}

// Draw renders the active state.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case StateMenu:
		m.MainMenu.Draw(screen)
	case StatePlaying:
		m.Game.Draw(screen)
	}
}

// Layout reports the fixed logical screen size; the framebuffer does not
// resize with the window.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}

// startNewGame resets the player to the fixed starting pose and enters
// gameplay.
func (m *Manager) startNewGame() {
	m.Game.Reset()
	m.State = StatePlaying
	if m.Audio != nil {
		m.Audio.PlayTrack(audio.TrackGame)
	}
	log.Println("Starting new game")
}

// returnToMenu leaves gameplay for the menu.
func (m *Manager) returnToMenu() {
	m.State = StateMenu
	m.MainMenu.Reset()
	if m.Audio != nil {
		m.Audio.PlayTrack(audio.TrackMenu)
	}
	log.Println("Returned to main menu")
}
