// Package menu implements the main menu screen.
package menu

import (
	"image/color"

	"chosenoffset.com/mazeshooter/internal/render"
)

// Action is what the menu asks the manager to do after an update.
type Action int

// Menu actions.
const (
	ActionNone Action = iota
	ActionNewGame
	ActionExit
)

// item indices, in display order.
const (
	itemNewGame = iota
	itemExit
	itemCount
)

var itemLabels = [itemCount]string{
	"New Game",
	"Exit",
}

// MainMenu represents the main menu screen.
type MainMenu struct {
	renderer     render.Renderer
	input        render.InputManager
	screenWidth  int
	screenHeight int
	selected     int
}

// NewMainMenu creates a new main menu.
func NewMainMenu(r render.Renderer, input render.InputManager, width, height int) *MainMenu {
	return &MainMenu{
		renderer:     r,
		input:        input,
		screenWidth:  width,
		screenHeight: height,
	}
}

// Reset moves the selection back to the first item. Called when the game
// returns to the menu.
func (m *MainMenu) Reset() {
	m.selected = itemNewGame
}

// Update handles menu navigation and returns the action to take.
func (m *MainMenu) Update() Action {
	if m.input.IsKeyJustPressed(render.KeyUp) {
		m.selected = (m.selected - 1 + itemCount) % itemCount
	}
	if m.input.IsKeyJustPressed(render.KeyDown) {
		m.selected = (m.selected + 1) % itemCount
	}

	if m.input.IsKeyJustPressed(render.KeySpace) || m.input.IsKeyJustPressed(render.KeyEnter) {
		switch m.selected {
		case itemNewGame:
			return ActionNewGame
		case itemExit:
			return ActionExit
		}
	}

	if m.input.IsKeyJustPressed(render.KeyEscape) {
		return ActionExit
	}

	return ActionNone
}

// Draw renders the menu to the screen.
func (m *MainMenu) Draw(screen render.Image) {
	screen.Fill(color.RGBA{20, 30, 50, 255})

	titleColor := color.RGBA{255, 0, 0, 255}
	normalColor := color.RGBA{255, 255, 255, 255}
	selectedColor := color.RGBA{255, 50, 50, 255}
	dimColor := color.RGBA{150, 150, 150, 255}

	centerX := m.screenWidth / 2

	// The backend draws text at the debug font's fixed size whatever scale
	// is passed, so centering must use the unscaled width.
	title := "MAZE SHOOTER"
	titleW, _ := m.renderer.MeasureText(title, 1.0)
	m.renderer.DrawText(screen, title, centerX-titleW/2, 150, titleColor, 3.0)

	for i := 0; i < itemCount; i++ {
		y := 300 + i*60
		clr := normalColor
		if i == m.selected {
			clr = selectedColor
			m.renderer.DrawText(screen, ">", centerX-90, y, clr, 1.5)
		}
		labelW, _ := m.renderer.MeasureText(itemLabels[i], 1.0)
		m.renderer.DrawText(screen, itemLabels[i], centerX-labelW/2, y, clr, 1.5)
	}

	instructions := "Use Arrow Keys to navigate, Space to select"
	instrW, _ := m.renderer.MeasureText(instructions, 1.0)
	m.renderer.DrawText(screen, instructions, centerX-instrW/2, m.screenHeight-100, dimColor, 1.0)
}

// SetSize updates the menu layout for a new screen size.
func (m *MainMenu) SetSize(width, height int) {
	m.screenWidth = width
	m.screenHeight = height
}
